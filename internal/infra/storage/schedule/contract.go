package schedule

import "github.com/malnis/cleansched/pkg/dbmetrics"

// Reuse the dbmetrics executor interface for database access so the
// repository works against *sql.DB and the instrumented wrapper alike.
type DBExecutor = dbmetrics.DBExecutor
