package highscore

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Options selects and configures a Store backend.
type Options struct {
	Backend       string // file, redis or postgres
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisKey      string
	DatabaseURL   string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// tableCloser flushes the table before the backend connection goes away.
type tableCloser struct {
	table   *Table
	backend io.Closer
}

func (c tableCloser) Close() error {
	c.table.Close()
	return c.backend.Close()
}

// Open builds the Store named by opts.Backend. The returned Closer releases the
// backend connection.
func Open(ctx context.Context, opts Options) (Store, io.Closer, error) {
	switch opts.Backend {
	case "", "file":
		return NewFileStore(opts.Path), nopCloser{}, nil
	case "redis":
		client, err := DialRedis(ctx, opts.RedisAddr, opts.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, opts.RedisKey), client, nil
	case "postgres":
		if opts.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("postgres backend needs DATABASE_URL")
		}
		store, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown highscore backend %q", opts.Backend)
	}
}

// OpenTable opens the configured backend and loads a Table from it. When the backend
// cannot be reached the failure is logged and the table falls back to a file store at
// opts.Path. The returned Closer saves the last submitted table and then closes the
// backend.
func OpenTable(ctx context.Context, opts Options) (*Table, io.Closer) {
	store, closer, err := Open(ctx, opts)
	if err != nil {
		log.Printf("[HIGHSCORE] Backend %q unavailable, using %s: %v", opts.Backend, opts.Path, err)
		store, closer = NewFileStore(opts.Path), nopCloser{}
	}
	table := NewTable(store)
	return table, tableCloser{table: table, backend: closer}
}
