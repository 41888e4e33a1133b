// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles query execution, mapping between domain entities and database
// rows via sqlx, and owns the SQL migrations that define the schema.
package postgres
