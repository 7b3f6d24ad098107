package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. With DATABASE_URL set
// it connects to PostgreSQL, otherwise it opens a local SQLite file under
// the data directory.
func Connect() error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := sqlx.Connect("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	// Create data directory if it doesn't exist
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "vocabtrack.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			word TEXT PRIMARY KEY,
			meaning TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			last_review TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS answer_log (
			id %s,
			word TEXT NOT NULL,
			your_answer TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create answer_log table: %v", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS quiz_results (
			id %s,
			taken_at TEXT NOT NULL,
			question_count INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			wrong_words TEXT NOT NULL,
			words TEXT NOT NULL
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create quiz_results table: %v", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS checkins (
			id %s,
			user_name TEXT NOT NULL,
			checked_at TEXT NOT NULL,
			kind TEXT NOT NULL,
			words_learned TEXT NOT NULL
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create checkins table: %v", err)
	}

	return nil
}
