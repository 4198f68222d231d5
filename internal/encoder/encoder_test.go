package encoder

import (
	"testing"
	"time"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/testutil"
)

func TestFit_SortedDeduplicated(t *testing.T) {
	enc := Fit("col", []string{"b", "a", "c", "a", "b"})

	testutil.AssertStrings(t, enc.Classes(), []string{"a", "b", "c"}, "classes")
	testutil.AssertEqual(t, enc.Len(), 3, "len")
	testutil.AssertEqual(t, enc.UnknownCode(), 3, "unknown code")
	testutil.AssertEqual(t, enc.Column(), "col", "column")
}

func TestEncode_CodesFollowSortedOrder(t *testing.T) {
	enc := Fit("col", []string{"zeta", "alpha", "mid"})

	tests := []struct {
		value string
		code  int
	}{
		{"alpha", 0},
		{"mid", 1},
		{"zeta", 2},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			code, err := enc.Encode(tt.value)
			testutil.AssertNoError(t, err, "encode")
			testutil.AssertEqual(t, code, tt.code, "code")
		})
	}
}

func TestEncode_InverseRoundTrip(t *testing.T) {
	values := []string{"example.com", "", "1.2.3.4", "example.com", "ñandú.org"}
	enc := Fit("Lexical_domain", values)

	for _, v := range values {
		code, err := enc.Encode(v)
		testutil.AssertNoError(t, err, "encode")
		back, err := enc.Inverse(code)
		testutil.AssertNoError(t, err, "inverse")
		testutil.AssertEqual(t, back, v, "round trip")
	}
}

func TestEncode_Unseen(t *testing.T) {
	enc := Fit("col", []string{"a", "b"})

	_, err := enc.Encode("c")
	testutil.AssertErrorIs(t, err, domain.ErrUnseenCategory, "unseen")
	testutil.AssertEqual(t, enc.EncodeOrReserve("c"), 2, "reserved code")
	testutil.AssertEqual(t, enc.EncodeOrReserve("b"), 1, "known code")
}

func TestInverse_OutOfRange(t *testing.T) {
	enc := Fit("col", []string{"a"})
	for _, code := range []int{-1, 1, 100} {
		_, err := enc.Inverse(code)
		testutil.AssertErrorIs(t, err, domain.ErrUnknownCode, "out of range")
	}
}

func TestTransform_Policies(t *testing.T) {
	enc := FitValues("col", []domain.Value{domain.StringValue("x"), domain.NullValue()})
	testutil.AssertStrings(t, enc.Classes(), []string{"", "x"}, "null learned as empty class")

	input := []domain.Value{domain.StringValue("x"), domain.NullValue(), domain.StringValue("new")}

	_, err := enc.Transform(input, domain.UnknownError)
	testutil.AssertErrorIs(t, err, domain.ErrUnseenCategory, "error policy")

	codes, err := enc.Transform(input, domain.UnknownReserve)
	testutil.AssertNoError(t, err, "reserve policy")
	testutil.AssertEqual(t, codes[0].Int, int64(1), "x")
	testutil.AssertEqual(t, codes[1].Int, int64(0), "null")
	testutil.AssertEqual(t, codes[2].Int, int64(2), "reserved")
	testutil.AssertEqual(t, codes[2].Kind, domain.KindInt, "int kind")
}

func TestArtifact_RoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	enc := Fit("Descriptive_fileExtension", []string{"exe", "html", "php"})

	a := enc.Artifact("run-1", at)
	testutil.AssertEqual(t, a.UnknownCode, 3, "unknown code")
	testutil.AssertEqual(t, a.FittedAt.Location(), time.UTC, "utc")

	back, err := FromArtifact(a)
	testutil.AssertNoError(t, err, "FromArtifact")
	testutil.AssertStrings(t, back.Classes(), enc.Classes(), "classes")
	testutil.AssertEqual(t, back.Column(), enc.Column(), "column")
}

func TestFromArtifact_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		artifact domain.EncoderArtifact
	}{
		{"no column", domain.EncoderArtifact{Classes: []string{"a"}}},
		{"unsorted", domain.EncoderArtifact{Column: "c", Classes: []string{"b", "a"}}},
		{"duplicate", domain.EncoderArtifact{Column: "c", Classes: []string{"a", "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArtifact(tt.artifact)
			testutil.AssertErrorIs(t, err, domain.ErrArtifactRead, "invalid artifact")
		})
	}
}

func TestTransform_FileExtensions(t *testing.T) {
	values := []domain.Value{
		domain.StringValue("exe"),
		domain.StringValue("bin"),
		domain.StringValue("bat"),
	}
	enc := FitValues("Descriptive_fileExtension", values)
	testutil.AssertStrings(t, enc.Classes(), []string{"bat", "bin", "exe"}, "classes")

	codes, err := enc.Transform(values, domain.UnknownError)
	testutil.AssertNoError(t, err, "transform")

	want := []int64{2, 1, 0}
	for i, c := range codes {
		testutil.AssertEqual(t, c.Int, want[i], values[i].Str)
	}
}
