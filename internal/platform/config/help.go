// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
urlfeat - URL Feature Extraction

USAGE:
  urlfeat -i <urls.csv> [options]

  Reads a CSV with a URL column, derives lexical and descriptive features per
  URL, drops incomplete rows and label-encodes categorical columns.

IMPORTANT:
  Use double dash (--) for long flag names: --input, --chunk-size
  Use single dash (-) for short flags: -i, -c

CORE OPTIONS:
  -i, --input string         Input CSV file, - for stdin (required)
      --url-column string    URL column name (default: "URL")
      --label-column string  Label column, never encoded (default: "Classification")
  -m, --mode string          fit: learn and save encoders; apply: reuse them (default: fit)
  -w, --workers int          Chunks processed concurrently (default: 1)
      --scheduler string     Chunk order with workers > 1: fifo or weighted (default: fifo)
  -T, --timeout int          Timeout in seconds, 0=no timeout (default: 0)
  -f, --config string        YAML configuration file

FEATURE OPTIONS:
  -c, --chunk-size int       Rows per extraction chunk, must be > 0 (default: 1000)
      --normalize-descriptive
                             Add http:// before the descriptive pass too (default: false)
      --null-policy string   any: drop rows with any null
                             required: keep nulls in filename/fileExtension (default: any)

ARTIFACT OPTIONS:
  -a, --artifacts string     Artifacts directory (default: "models-checkpoints")
      --manifest string      Column manifest path (default: <artifacts>/model_columns.txt)
      --unknown string       Unseen categories in apply mode: error or reserve (default: error)

OUTPUT OPTIONS:
  -o, --out string           Output CSV file, - for stdout (default: -)
      --ui string            pretty, raw or quiet (default: pretty)
      --report               Write <artifacts>/reports/urlfeat_<run-id>.json (default: true)
      --top-domains int      Registrable domains listed in the report (default: 10)
      --log-level string     debug, info, warn or error (default: info)

INFO:
  -v, --version              Print version information and exit
  -h, --help                 Show this help message

EXAMPLES:
  Fit encoders on a labelled dataset:
    urlfeat -i urls.csv -o features.csv

  Apply saved encoders to new URLs, reserving a code for unseen values:
    urlfeat -i new.csv -o new_features.csv -m apply --unknown reserve

  Four workers over small chunks:
    urlfeat -i urls.csv -o features.csv -c 500 -w 4 --scheduler weighted

  Machine-readable progress:
    urlfeat -i urls.csv -o features.csv --ui raw

ENVIRONMENT VARIABLES:
  Most flags can be set via environment variables with URLFEAT_ prefix:

  URLFEAT_CONFIG=urlfeat.yaml       Configuration file
  URLFEAT_INPUT=urls.csv            Input file
  URLFEAT_MODE=apply                Run mode
  URLFEAT_WORKERS=4                 Workers
  URLFEAT_CHUNK_SIZE=500            Chunk size
  URLFEAT_NULL_POLICY=required      Null policy
  URLFEAT_ARTIFACTS_DIR=/path       Artifacts directory
  URLFEAT_UNKNOWN_POLICY=reserve    Unknown policy
  URLFEAT_OUTPUT=features.csv       Output file
  URLFEAT_UI=quiet                  UI mode
  URLFEAT_LOG_LEVEL=debug           Log level

  Precedence: defaults < config file < environment < flags.

OUTPUT:
  - Encoded feature table (CSV)
  - <artifacts>/model_columns.txt, one column name per line (fit mode)
  - <artifacts>/<column>_encoder.json per categorical column (fit mode)
  - Run report with row counts and a registrable-domain profile
`

// PrintHelp prints the help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("urlfeat %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", getGoVersion())
	os.Exit(0)
}

func getGoVersion() string {
	return runtime.Version()
}
