package highscore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/highscore"
)

type memoryStore struct {
	entries []highscore.Entry
	loadErr error
	saveErr error
	saves   int
}

func (s *memoryStore) Load(ctx context.Context) ([]highscore.Entry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.entries, nil
}

func (s *memoryStore) Save(ctx context.Context, entries []highscore.Entry) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.entries = entries
	return nil
}

// gatedStore blocks every Save until gate is closed.
type gatedStore struct {
	gate    chan struct{}
	started chan struct{}
	saved   [][]highscore.Entry
}

func newGatedStore() *gatedStore {
	return &gatedStore{gate: make(chan struct{}), started: make(chan struct{}, 8)}
}

func (s *gatedStore) Load(ctx context.Context) ([]highscore.Entry, error) {
	return nil, nil
}

func (s *gatedStore) Save(ctx context.Context, entries []highscore.Entry) error {
	s.started <- struct{}{}
	<-s.gate
	s.saved = append(s.saved, entries)
	return nil
}

func TestTable(t *testing.T) {
	t.Run("nil store starts from defaults", func(t *testing.T) {
		table := highscore.NewTable(nil)
		assert.Equal(t, highscore.Defaults(), table.Entries())

		table.Submit("ABC", 100)
		assert.Equal(t, "ABC", table.Entries()[0].Name)
	})

	t.Run("load failure falls back to defaults", func(t *testing.T) {
		table := highscore.NewTable(&memoryStore{loadErr: errors.New("disk gone")})
		assert.Equal(t, highscore.Defaults(), table.Entries())
	})

	t.Run("loaded entries are sorted and truncated", func(t *testing.T) {
		store := &memoryStore{entries: []highscore.Entry{
			{Name: "LOW", Score: 1},
			{Name: "TOP", Score: 900},
			{Name: "MID", Score: 50},
			{Name: "OUT", Score: 0},
		}}
		table := highscore.NewTable(store)
		assert.Equal(t, []highscore.Entry{
			{Name: "TOP", Score: 900},
			{Name: "MID", Score: 50},
			{Name: "LOW", Score: 1},
		}, table.Entries())
	})

	t.Run("submit saves the merged table", func(t *testing.T) {
		store := &memoryStore{}
		table := highscore.NewTable(store)

		got := table.Submit("JOE", 300)
		require.NoError(t, table.Close())
		require.Equal(t, 1, store.saves)
		assert.Equal(t, got, store.entries)
		assert.Equal(t, highscore.Entry{Name: "JOE", Score: 300}, store.entries[0])
		assert.Len(t, store.entries, highscore.Limit)
	})

	t.Run("save failure keeps the table in memory", func(t *testing.T) {
		store := &memoryStore{saveErr: errors.New("read-only")}
		table := highscore.NewTable(store)

		table.Submit("AMY", 40)
		require.NoError(t, table.Close())
		assert.Equal(t, 1, store.saves)
		assert.Equal(t, highscore.Entry{Name: "AMY", Score: 40}, table.Entries()[0])
	})

	t.Run("submit does not wait for a stuck store", func(t *testing.T) {
		store := newGatedStore()
		table := highscore.NewTable(store)
		defer table.Close()
		defer close(store.gate)

		start := time.Now()
		got := table.Submit("SLO", 10)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
		assert.Equal(t, "SLO", got[0].Name)
		assert.Equal(t, "SLO", table.Entries()[0].Name)
	})

	t.Run("newest table replaces an unsent one", func(t *testing.T) {
		store := newGatedStore()
		table := highscore.NewTable(store)

		table.Submit("AAA", 10)
		<-store.started
		table.Submit("BBB", 20)
		table.Submit("CCC", 30)
		close(store.gate)
		require.NoError(t, table.Close())

		require.Len(t, store.saved, 2)
		assert.Equal(t, "AAA", store.saved[0][0].Name)
		assert.Equal(t, []highscore.Entry{
			{Name: "CCC", Score: 30},
			{Name: "BBB", Score: 20},
			{Name: "AAA", Score: 10},
		}, store.saved[1])
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		table := highscore.NewTable(nil)
		entries := table.Entries()
		entries[0].Name = "XXX"
		assert.Equal(t, "---", table.Entries()[0].Name)
	})
}
