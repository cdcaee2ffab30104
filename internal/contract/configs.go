package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitsum/gitsum/schema"
)

// Default values for configuration.
const (
	DefaultDirLevel     = 1
	DefaultYearlySalary = 50000.0
	DefaultRunsLimit    = 20
)

// Config holds the runtime configuration for a summary run.
// This struct is the final, validated config.
type Config struct {
	RepoPath string

	// Author selection. Emails and EmailContains are mutually exclusive;
	// when both are empty the repo's user.email is used.
	Emails        []string
	EmailContains string

	// Time window. At most one of these is non-zero.
	Days   int
	Weeks  int
	Months int
	Years  int

	// DivergedFrom excludes commits reachable from this ref.
	DivergedFrom string

	DirLevel     int
	YearlySalary float64
	PureCocomo   bool

	Output     schema.OutputMode
	OutputFile string
	UseColors  bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Emails        []string `mapstructure:"emails"`
	EmailContains string   `mapstructure:"email-contains"`

	Days   int `mapstructure:"days"`
	Weeks  int `mapstructure:"weeks"`
	Months int `mapstructure:"months"`
	Years  int `mapstructure:"years"`

	DivergedFrom string  `mapstructure:"diverged-from"`
	DirLevel     int     `mapstructure:"dir-level"`
	Salary       float64 `mapstructure:"salary"`
	Pure         bool    `mapstructure:"pure"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`

	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
}

// Since renders the configured window as a git --since argument, or ""
// when no window was requested.
func (c *Config) Since() string {
	switch {
	case c.Days > 0:
		return fmt.Sprintf("%d days ago", c.Days)
	case c.Weeks > 0:
		return fmt.Sprintf("%d weeks ago", c.Weeks)
	case c.Months > 0:
		return fmt.Sprintf("%d months ago", c.Months)
	case c.Years > 0:
		return fmt.Sprintf("%d years ago", c.Years)
	}
	return ""
}

// WindowDays returns the elapsed days implied by the window flags, or 0
// when no window was requested (the caller falls back to the commit span).
func (c *Config) WindowDays() int {
	switch {
	case c.Days > 0:
		return c.Days
	case c.Weeks > 0:
		return c.Weeks * 7
	case c.Months > 0:
		return c.Months * 30
	case c.Years > 0:
		return c.Years * 365
	}
	return 0
}

// Window returns the human-readable window label for this config.
func (c *Config) Window() string {
	return WindowLabel(c.Days, c.Weeks, c.Months, c.Years)
}

// AuthorFilter describes the author selection for run records.
func (c *Config) AuthorFilter() string {
	if c.EmailContains != "" {
		return "contains:" + c.EmailContains
	}
	if len(c.Emails) > 0 {
		return strings.Join(c.Emails, ",")
	}
	return "user.email"
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Emails != nil {
		clone.Emails = make([]string, len(c.Emails))
		copy(clone.Emails, c.Emails)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateAuthorInputs(cfg, input); err != nil {
		return err
	}
	if err := validateTimeWindow(cfg, input); err != nil {
		return err
	}
	if err := validateReportInputs(cfg, input); err != nil {
		return err
	}
	if err := validateStoreInputs(cfg, input); err != nil {
		return err
	}
	return resolveRepoPath(ctx, cfg, client, input)
}

// validateAuthorInputs enforces the emails / email-contains exclusivity.
func validateAuthorInputs(cfg *Config, input *ConfigRawInput) error {
	if len(input.Emails) > 0 && input.EmailContains != "" {
		return fmt.Errorf("--emails and --email-contains are mutually exclusive")
	}
	for _, e := range input.Emails {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("empty email in --emails")
		}
	}
	cfg.Emails = input.Emails
	cfg.EmailContains = strings.TrimSpace(input.EmailContains)
	return nil
}

// validateTimeWindow enforces that at most one window flag is set.
func validateTimeWindow(cfg *Config, input *ConfigRawInput) error {
	set := 0
	for _, v := range []int{input.Days, input.Weeks, input.Months, input.Years} {
		if v < 0 {
			return fmt.Errorf("time window values must be positive")
		}
		if v > 0 {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("--days, --weeks, --months and --years are mutually exclusive")
	}
	cfg.Days = input.Days
	cfg.Weeks = input.Weeks
	cfg.Months = input.Months
	cfg.Years = input.Years
	cfg.DivergedFrom = strings.TrimSpace(input.DivergedFrom)
	return nil
}

// validateReportInputs checks presentation settings.
func validateReportInputs(cfg *Config, input *ConfigRawInput) error {
	if input.DirLevel < 1 {
		return fmt.Errorf("--dir-level must be at least 1, got %d", input.DirLevel)
	}
	cfg.DirLevel = input.DirLevel

	if input.Salary <= 0 {
		return fmt.Errorf("--salary must be positive, got %v", input.Salary)
	}
	cfg.YearlySalary = input.Salary
	cfg.PureCocomo = input.Pure

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, json or csv", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors
	return nil
}

// validateStoreInputs checks the run store backend configuration.
func validateStoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use a postgres:// URL")
		}
	}
	return nil
}

// resolveRepoPath resolves the positional repo path to the repository root.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	path := input.RepoPathStr
	if path == "" {
		path = "."
	}
	out, err := client.Run(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return fmt.Errorf("'%s' is not inside a git repository: %w", path, err)
	}
	cfg.RepoPath = strings.TrimSpace(string(out))
	return nil
}
