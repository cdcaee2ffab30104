package schema

import "time"

// DatabaseBackend identifies which database engine backs the run store.
type DatabaseBackend string

// Supported run store backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends is the allow-list used during config validation.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// RunRecord is one persisted summary run.
type RunRecord struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	RepoPath     string    `json:"repo_path"`
	Window       string    `json:"window"`
	AuthorFilter string    `json:"author_filter"`
	CommitCount  int       `json:"commit_count"`
	TotalAdded   int       `json:"total_added"`
	TotalDeleted int       `json:"total_deleted"`
	EffortMonths float64   `json:"effort_months"`
	Cost         float64   `json:"cost"`
	DurationMs   int64     `json:"duration_ms"`
	ConfigJSON   string    `json:"config_json,omitempty"`
}

// RunStoreStatus describes the state of the run store for diagnostics.
type RunStoreStatus struct {
	Backend       DatabaseBackend `json:"backend"`
	Connected     bool            `json:"connected"`
	TotalRuns     int64           `json:"total_runs"`
	LastRunID     int64           `json:"last_run_id"`
	LastRunTime   time.Time       `json:"last_run_time"`
	OldestRunTime time.Time       `json:"oldest_run_time"`
}

// OutputMode selects the report format.
type OutputMode string

// Supported output formats.
const (
	TextOut OutputMode = "text"
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// ValidOutputModes is the allow-list used during config validation.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}
