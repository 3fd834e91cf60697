package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"rando-scraper/models"
)

// Store persists hike records and run summaries between scrape runs.
type Store interface {
	Upsert(rec models.HikeRecord) error
	LoadAll() ([]models.HikeRecord, error)
	Count() (int, error)
	RecordRun(summary models.RunSummary) error
	Close() error
}

// SQLStore implements Store over database/sql: sqlite for the default
// single-file catalogue, postgres when a shared database is configured.
type SQLStore struct {
	conn *sql.DB
}

// Open opens the store for the given driver. "postgres" connects via
// environment variables; anything else opens the sqlite file at path.
func Open(driver, path string) (*SQLStore, error) {
	if driver == "postgres" {
		return OpenPostgres()
	}
	return OpenSQLite(path)
}

// OpenSQLite opens the sqlite database at path, creating the file and its
// directory as needed, and initializes the schema.
func OpenSQLite(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON`,
		`PRAGMA journal_mode = WAL`,
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	return newSQLStore(conn)
}

// OpenPostgres connects using DATABASE_URL when set, otherwise assembling
// the DSN from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME and
// DB_SSLMODE, and initializes the schema.
func OpenPostgres() (*SQLStore, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		host := getEnvOrDefault("DB_HOST", "localhost")
		port := getEnvOrDefault("DB_PORT", "5432")
		user := getEnvOrDefault("DB_USER", "rando")
		password := getEnvOrDefault("DB_PASSWORD", "")
		dbname := getEnvOrDefault("DB_NAME", "rando")
		sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return newSQLStore(conn)
}

func newSQLStore(conn *sql.DB) (*SQLStore, error) {
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLStore{conn: conn}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.conn.Close()
}

// initSchema creates the tables if they don't exist. The SQL sticks to the
// dialect both sqlite and postgres accept.
func (s *SQLStore) initSchema() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS hikes (
			url TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			map_url TEXT NOT NULL DEFAULT '',
			canton TEXT NOT NULL,
			type_parcours TEXT NOT NULL,
			km_range TEXT NOT NULL,
			duree_range TEXT NOT NULL,
			environnements TEXT NOT NULL,
			difficulte TEXT NOT NULL,
			denivele_range TEXT NOT NULL,
			saisons TEXT NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			montee_m INTEGER NOT NULL DEFAULT 0,
			descente_m INTEGER NOT NULL DEFAULT 0,
			temps_marche TEXT NOT NULL DEFAULT '',
			lieu_depart TEXT NOT NULL DEFAULT '',
			lieu_arrivee TEXT NOT NULL DEFAULT '',
			acces_tp TEXT NOT NULL DEFAULT '',
			retour_tp TEXT NOT NULL DEFAULT '',
			attrs TEXT NOT NULL DEFAULT '[]',
			scraped_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create hikes table: %w", err)
	}

	_, err = s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			started_at TIMESTAMP NOT NULL,
			finished_at TIMESTAMP NOT NULL,
			pages_visited INTEGER NOT NULL DEFAULT 0,
			urls_found INTEGER NOT NULL DEFAULT 0,
			stored INTEGER NOT NULL DEFAULT 0,
			skipped_parse INTEGER NOT NULL DEFAULT 0,
			skipped_transport INTEGER NOT NULL DEFAULT 0,
			skipped_robots INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}

	// The browse API filters on the dimension columns.
	for _, column := range []string{
		"canton", "type_parcours", "km_range", "duree_range", "difficulte", "denivele_range",
	} {
		stmt := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_hikes_%s ON hikes(%s)`, column, column)
		if _, err := s.conn.Exec(stmt); err != nil {
			log.Printf("Warning: Failed to create index on hikes.%s: %v\n", column, err)
		}
	}

	return nil
}
