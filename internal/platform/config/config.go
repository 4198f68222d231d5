// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/platform/ui"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "URLFEAT_"

type Config struct {
	Core      Core      `yaml:"core" json:"core"`
	Features  Features  `yaml:"features" json:"features"`
	Artifacts Artifacts `yaml:"artifacts" json:"artifacts"`
	Output    Output    `yaml:"output" json:"output"`

	LogLevel string `yaml:"log_level" json:"log_level"`

	// Set from the command line only.
	ConfigFile   string `yaml:"-" json:"config_file,omitempty"`
	PrintVersion bool   `yaml:"-" json:"-"`
	PrintHelp    bool   `yaml:"-" json:"-"`
}

type Core struct {
	Input       string `yaml:"input" json:"input"`
	URLColumn   string `yaml:"url_column" json:"url_column"`
	LabelColumn string `yaml:"label_column" json:"label_column"`
	Mode        string `yaml:"mode" json:"mode"`
	Workers     int    `yaml:"workers" json:"workers"`
	Scheduler   string `yaml:"scheduler" json:"scheduler"`
	TimeoutS    int    `yaml:"timeout" json:"timeout"` // seconds, 0 = no timeout
}

type Features struct {
	ChunkSize            int    `yaml:"chunk_size" json:"chunk_size"`
	NormalizeDescriptive bool   `yaml:"normalize_descriptive" json:"normalize_descriptive"`
	NullPolicy           string `yaml:"null_policy" json:"null_policy"`
}

type Artifacts struct {
	Dir           string `yaml:"dir" json:"dir"`
	Manifest      string `yaml:"manifest" json:"manifest"` // empty = <dir>/model_columns.txt
	UnknownPolicy string `yaml:"unknown_policy" json:"unknown_policy"`
}

type Output struct {
	Path       string `yaml:"path" json:"path"` // "-" = stdout
	UIMode     string `yaml:"ui" json:"ui"`
	Report     bool   `yaml:"report" json:"report"`
	TopDomains int    `yaml:"top_domains" json:"top_domains"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Core: Core{
			URLColumn:   "URL",
			LabelColumn: "Classification",
			Mode:        string(domain.RunModeFit),
			Workers:     1,
			Scheduler:   "fifo",
			TimeoutS:    0,
		},
		Features: Features{
			ChunkSize:  1000,
			NullPolicy: string(domain.NullPolicyAny),
		},
		Artifacts: Artifacts{
			Dir:           "models-checkpoints",
			UnknownPolicy: string(domain.UnknownError),
		},
		Output: Output{
			Path:       "-",
			UIMode:     string(ui.UIModePretty),
			Report:     true,
			TopDomains: 10,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration from os.Args: defaults, then the YAML file
// named by --config, then URLFEAT_* variables, then flags.
// --help and --version print and exit.
func Load(version, commit, date string) (Config, error) {
	cfg, err := LoadArgs(os.Args[1:])
	if cfg.PrintHelp {
		PrintHelp()
	}
	if cfg.PrintVersion {
		PrintVersion(version, commit, date)
	}
	return cfg, err
}

// LoadArgs is Load over explicit arguments, without exiting.
func LoadArgs(args []string) (Config, error) {
	// First pass only locates the config file.
	pre := DefaultConfig()
	if _, err := parseFlags(&pre, args); err != nil {
		return pre, err
	}

	cfg := DefaultConfig()
	path := pre.ConfigFile
	if path == "" {
		path = getenv(EnvPrefix+"CONFIG", "")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}

	// Flags override file and ENV.
	rest, err := parseFlags(&cfg, args)
	if err != nil {
		return cfg, err
	}
	cfg.ConfigFile = path
	if cfg.Core.Input == "" && len(rest) > 0 {
		cfg.Core.Input = rest[0]
	}

	normalize(&cfg)
	if cfg.PrintHelp || cfg.PrintVersion {
		return cfg, nil
	}
	return cfg, cfg.Validate()
}

// loadFromFile reads a YAML file over cfg. Keys absent from the file keep
// their current value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config file: %w", domain.ErrInvalidConfig, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse config file %s: %w", domain.ErrInvalidConfig, path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := getenv(EnvPrefix+"INPUT", ""); v != "" {
		cfg.Core.Input = v
	}
	if v := getenv(EnvPrefix+"URL_COLUMN", ""); v != "" {
		cfg.Core.URLColumn = v
	}
	if v := getenv(EnvPrefix+"LABEL_COLUMN", ""); v != "" {
		cfg.Core.LabelColumn = v
	}
	if v := getenv(EnvPrefix+"MODE", ""); v != "" {
		cfg.Core.Mode = v
	}
	if err := envInt(EnvPrefix+"WORKERS", &cfg.Core.Workers); err != nil {
		return err
	}
	if v := getenv(EnvPrefix+"SCHEDULER", ""); v != "" {
		cfg.Core.Scheduler = v
	}
	if err := envInt(EnvPrefix+"TIMEOUT", &cfg.Core.TimeoutS); err != nil {
		return err
	}

	if err := envInt(EnvPrefix+"CHUNK_SIZE", &cfg.Features.ChunkSize); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"NORMALIZE_DESCRIPTIVE", &cfg.Features.NormalizeDescriptive); err != nil {
		return err
	}
	if v := getenv(EnvPrefix+"NULL_POLICY", ""); v != "" {
		cfg.Features.NullPolicy = v
	}

	if v := getenv(EnvPrefix+"ARTIFACTS_DIR", ""); v != "" {
		cfg.Artifacts.Dir = v
	}
	if v := getenv(EnvPrefix+"MANIFEST", ""); v != "" {
		cfg.Artifacts.Manifest = v
	}
	if v := getenv(EnvPrefix+"UNKNOWN_POLICY", ""); v != "" {
		cfg.Artifacts.UnknownPolicy = v
	}

	if v := getenv(EnvPrefix+"OUTPUT", ""); v != "" {
		cfg.Output.Path = v
	}
	if v := getenv(EnvPrefix+"UI", ""); v != "" {
		cfg.Output.UIMode = v
	}
	if err := envBool(EnvPrefix+"REPORT", &cfg.Output.Report); err != nil {
		return err
	}

	if v := getenv(EnvPrefix+"LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// envInt sets *dst from the environment variable key when it is set.
func envInt(key string, dst *int) error {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	n, err := parseInt(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}

// envBool sets *dst from the environment variable key when it is set.
func envBool(key string, dst *bool) error {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	b, err := parseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidConfig, key, v)
	}
	*dst = b
	return nil
}

// parseFlags binds flags to cfg and parses args. It returns the positional
// arguments.
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := pflag.NewFlagSet("urlfeat", pflag.ContinueOnError)
	fs.Usage = func() {}

	fs.StringVarP(&cfg.ConfigFile, "config", "f", cfg.ConfigFile, "YAML configuration file")

	// Core
	fs.StringVarP(&cfg.Core.Input, "input", "i", cfg.Core.Input, "Input CSV file (- for stdin)")
	fs.StringVar(&cfg.Core.URLColumn, "url-column", cfg.Core.URLColumn, "Name of the URL column")
	fs.StringVar(&cfg.Core.LabelColumn, "label-column", cfg.Core.LabelColumn, "Name of the label column")
	fs.StringVarP(&cfg.Core.Mode, "mode", "m", cfg.Core.Mode, "Run mode: fit or apply")
	fs.IntVarP(&cfg.Core.Workers, "workers", "w", cfg.Core.Workers, "Chunks processed concurrently")
	fs.StringVar(&cfg.Core.Scheduler, "scheduler", cfg.Core.Scheduler, "Chunk scheduler: fifo or weighted")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Timeout in seconds (0 = none)")

	// Features
	fs.IntVarP(&cfg.Features.ChunkSize, "chunk-size", "c", cfg.Features.ChunkSize, "Rows per extraction chunk")
	fs.BoolVar(&cfg.Features.NormalizeDescriptive, "normalize-descriptive", cfg.Features.NormalizeDescriptive,
		"Parse the normalized URL in the descriptive pass")
	fs.StringVar(&cfg.Features.NullPolicy, "null-policy", cfg.Features.NullPolicy, "Null filtering: any or required")

	// Artifacts
	fs.StringVarP(&cfg.Artifacts.Dir, "artifacts", "a", cfg.Artifacts.Dir, "Artifacts directory")
	fs.StringVar(&cfg.Artifacts.Manifest, "manifest", cfg.Artifacts.Manifest, "Column manifest path")
	fs.StringVar(&cfg.Artifacts.UnknownPolicy, "unknown", cfg.Artifacts.UnknownPolicy,
		"Unseen categories in apply mode: error or reserve")

	// Output
	fs.StringVarP(&cfg.Output.Path, "out", "o", cfg.Output.Path, "Output CSV file (- for stdout)")
	fs.StringVar(&cfg.Output.UIMode, "ui", cfg.Output.UIMode, "UI mode: pretty, raw or quiet")
	fs.BoolVar(&cfg.Output.Report, "report", cfg.Output.Report, "Write a JSON run report")
	fs.IntVar(&cfg.Output.TopDomains, "top-domains", cfg.Output.TopDomains, "Domains listed in the report")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	// Info
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")
	fs.BoolVarP(&cfg.PrintHelp, "help", "h", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return fs.Args(), nil
}

func normalize(c *Config) {
	c.Core.Input = strings.TrimSpace(c.Core.Input)
	c.Core.Mode = strings.ToLower(strings.TrimSpace(c.Core.Mode))
	c.Core.Scheduler = strings.ToLower(strings.TrimSpace(c.Core.Scheduler))
	c.Features.NullPolicy = strings.ToLower(strings.TrimSpace(c.Features.NullPolicy))
	c.Artifacts.UnknownPolicy = strings.ToLower(strings.TrimSpace(c.Artifacts.UnknownPolicy))
	c.Output.UIMode = strings.ToLower(strings.TrimSpace(c.Output.UIMode))

	if c.Core.Workers < 1 {
		c.Core.Workers = 1
	}
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	if c.Core.URLColumn == "" {
		c.Core.URLColumn = "URL"
	}
	if c.Core.Scheduler == "" {
		c.Core.Scheduler = "fifo"
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = "models-checkpoints"
	}
	if c.Output.Path == "" {
		c.Output.Path = "-"
	}
	if c.Output.TopDomains < 1 {
		c.Output.TopDomains = 10
	}
}

// Validate rejects values no run can use. Errors wrap domain.ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Features.ChunkSize <= 0 {
		return fmt.Errorf("%w: %w: %d", domain.ErrInvalidConfig, domain.ErrInvalidChunkSize, c.Features.ChunkSize)
	}
	if !domain.RunMode(c.Core.Mode).IsValid() {
		return fmt.Errorf("%w: mode %q (want fit or apply)", domain.ErrInvalidConfig, c.Core.Mode)
	}
	if !domain.NullPolicy(c.Features.NullPolicy).IsValid() {
		return fmt.Errorf("%w: null policy %q (want any or required)", domain.ErrInvalidConfig, c.Features.NullPolicy)
	}
	if !domain.UnknownPolicy(c.Artifacts.UnknownPolicy).IsValid() {
		return fmt.Errorf("%w: unknown policy %q (want error or reserve)", domain.ErrInvalidConfig, c.Artifacts.UnknownPolicy)
	}
	if !ui.UIMode(c.Output.UIMode).IsValid() {
		return fmt.Errorf("%w: ui mode %q (want pretty, raw or quiet)", domain.ErrInvalidConfig, c.Output.UIMode)
	}
	switch c.Core.Scheduler {
	case "fifo", "weighted":
	default:
		return fmt.Errorf("%w: scheduler %q (want fifo or weighted)", domain.ErrInvalidConfig, c.Core.Scheduler)
	}
	if c.Core.URLColumn == c.Core.LabelColumn {
		return fmt.Errorf("%w: url and label column are both %q", domain.ErrInvalidConfig, c.Core.URLColumn)
	}
	return nil
}

// ToJSON serializes the configuration (useful for debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Timeout returns the run timeout, 0 when disabled.
func (c Config) Timeout() time.Duration {
	if c.Core.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Core.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", v)
	}
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(v))
}
