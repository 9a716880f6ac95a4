package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    username TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    weight REAL NOT NULL,
    height REAL NOT NULL,
    allergies TEXT NOT NULL,
    calories REAL NOT NULL,
    activity TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS calorie_entries (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    amount INTEGER NOT NULL,
    timestamp INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calorie_entries_username ON calorie_entries(username);
CREATE INDEX IF NOT EXISTS idx_calorie_entries_timestamp ON calorie_entries(timestamp);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
