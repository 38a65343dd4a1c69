package highscore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS highscores (
	rank  INTEGER PRIMARY KEY,
	name  TEXT    NOT NULL,
	score INTEGER NOT NULL
)`

// PostgresStore keeps the table in a highscores relation, one row per rank.
type PostgresStore struct {
	DB *sql.DB
}

// OpenPostgres connects with a lib/pq connection string and creates the table.
func OpenPostgres(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create highscores table: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

func (s *PostgresStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name, score FROM highscores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("query highscores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("scan highscore: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read highscores: %w", err)
	}
	if len(entries) == 0 {
		return Defaults(), nil
	}
	return entries, nil
}

// Save replaces the whole table in one transaction.
func (s *PostgresStore) Save(ctx context.Context, entries []Entry) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM highscores`); err != nil {
		return fmt.Errorf("clear highscores: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO highscores (rank, name, score) VALUES ($1, $2, $3)`,
			i, e.Name, e.Score); err != nil {
			return fmt.Errorf("insert highscore %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit highscores: %w", err)
	}
	return nil
}
