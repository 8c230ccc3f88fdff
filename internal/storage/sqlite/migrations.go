package sqlite

import "database/sql"

// schema holds one row per (profile, key) entry
const schema = `
CREATE TABLE IF NOT EXISTS entries (
    profile TEXT NOT NULL,
    key TEXT NOT NULL,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (profile, key)
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
