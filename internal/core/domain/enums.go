// internal/core/domain/enums.go
package domain

// Kind is the declared scalar type of a table column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind name used in logs and artifacts.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Role tells the pipeline how a column got into the table.
type Role int

const (
	// RolePassthrough is an input column carried through unchanged.
	RolePassthrough Role = iota

	// RoleLabel is the class/target column. It is never encoded.
	RoleLabel

	// RoleFeature is a column produced by an extractor.
	RoleFeature
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePassthrough:
		return "passthrough"
	case RoleLabel:
		return "label"
	case RoleFeature:
		return "feature"
	default:
		return "unknown"
	}
}

// RunMode selects between fitting new encoders and applying stored ones.
type RunMode string

const (
	// RunModeFit extracts features, fits encoders and persists artifacts.
	RunModeFit RunMode = "fit"

	// RunModeApply extracts features and encodes them with stored artifacts.
	RunModeApply RunMode = "apply"
)

// IsValid reports whether the mode is known.
func (m RunMode) IsValid() bool {
	switch m {
	case RunModeFit, RunModeApply:
		return true
	default:
		return false
	}
}

// String returns the string form of the mode.
func (m RunMode) String() string {
	return string(m)
}

// UnknownPolicy decides what an encoder does with a value it never saw.
type UnknownPolicy string

const (
	// UnknownError fails the transform with ErrUnseenCategory.
	UnknownError UnknownPolicy = "error"

	// UnknownReserve maps unseen values to the reserved code len(classes).
	UnknownReserve UnknownPolicy = "reserve"
)

// IsValid reports whether the policy is known.
func (p UnknownPolicy) IsValid() bool {
	switch p {
	case UnknownError, UnknownReserve:
		return true
	default:
		return false
	}
}

// String returns the string form of the policy.
func (p UnknownPolicy) String() string {
	return string(p)
}

// NullPolicy decides which rows the null filter removes.
type NullPolicy string

const (
	// NullPolicyAny drops every row holding a null in any column.
	NullPolicyAny NullPolicy = "any"

	// NullPolicyRequired drops rows with a null in a non-optional column.
	// Nulls left in optional columns are encoded as the empty-string class.
	NullPolicyRequired NullPolicy = "required"
)

// IsValid reports whether the policy is known.
func (p NullPolicy) IsValid() bool {
	switch p {
	case NullPolicyAny, NullPolicyRequired:
		return true
	default:
		return false
	}
}

// String returns the string form of the policy.
func (p NullPolicy) String() string {
	return string(p)
}
