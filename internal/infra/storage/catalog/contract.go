package catalog

import "github.com/malnis/cleansched/pkg/dbmetrics"

// Reuse the dbmetrics executor interface for database access.
type DBExecutor = dbmetrics.DBExecutor
