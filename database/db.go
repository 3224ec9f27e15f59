package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"tripplanner/catalog"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Store keeps the destination catalog in Postgres or SQLite. Only catalog
// data lives here; traveler submissions are never written.
type Store struct {
	db     *sql.DB
	driver string
}

// ─── Init ─────────────────────────────────────────────────────────────────────

func Open(driver, dsn string) (*Store, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		// An in-memory database exists per connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// Retry connection up to 10 times (the DB container may still be starting)
	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database after retries: %w", err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping() error { return s.db.Ping() }

// ─── Migrations ───────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS destinations (
			id           TEXT PRIMARY KEY,
			position     INTEGER NOT NULL,
			name         TEXT NOT NULL,
			budget_level TEXT NOT NULL,
			payload      TEXT NOT NULL,
			updated_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_destinations_position
			ON destinations(position)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

// SeedCatalog replaces the stored catalog with c, keeping c's order.
func (s *Store) SeedCatalog(c *catalog.Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM destinations`); err != nil {
		return fmt.Errorf("clear destinations: %w", err)
	}

	for i, d := range c.All() {
		payload, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", d.ID, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO destinations (id, position, name, budget_level, payload)
			VALUES ($1, $2, $3, $4, $5)`,
			d.ID, i, d.Name, string(d.BudgetLevel), string(payload)); err != nil {
			return fmt.Errorf("insert %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCatalog reads the stored destinations back in catalog order.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	rows, err := s.db.Query(`SELECT id, payload FROM destinations ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query destinations: %w", err)
	}
	defer rows.Close()

	var destinations []catalog.Destination
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		var d catalog.Destination
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, fmt.Errorf("decode destination %s: %w", id, err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate destinations: %w", err)
	}

	return catalog.New(destinations), nil
}

func (s *Store) CountDestinations() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&n)
	return n, err
}
