package highscore

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store loads and saves the table.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

const storeTimeout = 2 * time.Second

// Table is the in-memory top-3 shared by every session. Persistence is best-effort:
// load and save failures are logged and the table keeps working from memory.
//
// Saves run on a background goroutine so that a slow backend never holds up the tick.
// Only the newest table waits to be saved; an older unsent one is replaced.
type Table struct {
	mu      sync.RWMutex
	store   Store
	entries []Entry

	pending   chan []Entry
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewTable loads the table from store, or starts from the defaults when store is nil
// or the load fails.
func NewTable(store Store) *Table {
	t := &Table{store: store, entries: Defaults()}
	if store == nil {
		return t
	}

	t.load()
	t.pending = make(chan []Entry, 1)
	t.done = make(chan struct{})
	t.wg.Add(1)
	go t.saveLoop()
	return t
}

func (t *Table) load() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entries, err := t.store.Load(ctx)
	if err != nil {
		log.Printf("[HIGHSCORE] Failed to load highscores, using defaults: %v", err)
		return
	}
	if len(entries) > 0 {
		t.entries = normalize(entries)
	}
}

func (t *Table) saveLoop() {
	defer t.wg.Done()
	for {
		select {
		case entries := <-t.pending:
			t.save(entries)
		case <-t.done:
			select {
			case entries := <-t.pending:
				t.save(entries)
			default:
			}
			return
		}
	}
}

func (t *Table) save(entries []Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := t.store.Save(ctx, entries); err != nil {
		log.Printf("[HIGHSCORE] Failed to save highscores: %v", err)
	}
}

// queue hands entries to the save goroutine without waiting. A table still waiting
// in the slot is dropped in favour of the newer one.
func (t *Table) queue(entries []Entry) {
	for {
		select {
		case t.pending <- entries:
			return
		default:
		}
		select {
		case <-t.pending:
		default:
		}
	}
}

// Close saves the last queued table and stops the save goroutine. Submit must not be
// called afterwards.
func (t *Table) Close() error {
	if t.store == nil {
		return nil
	}
	t.closeOnce.Do(func() {
		close(t.done)
		t.wg.Wait()
	})
	return nil
}

// Entries returns a copy of the current table.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Submit merges a finished game into the table and queues it for saving. It never
// waits for the store.
func (t *Table) Submit(name string, score int) []Entry {
	t.mu.Lock()
	t.entries = Insert(t.entries, Entry{Name: name, Score: score}, Limit)
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	t.mu.Unlock()

	log.Printf("[HIGHSCORE] %s scored %d", name, score)

	if t.store != nil {
		t.queue(entries)
	}
	return entries
}
