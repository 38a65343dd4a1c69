package highscore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/highscore"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields defaults", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "none.json"))
		entries, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, highscore.Defaults(), entries)
	})

	t.Run("save creates directories and round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "highscore.json")
		store := highscore.NewFileStore(path)
		want := []highscore.Entry{
			{Name: "ABC", Score: 1200},
			{Name: "DEF", Score: 300},
			{Name: "---", Score: 0},
		}

		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reads the scores document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.json")
		doc := `{"scores":[{"name":"ABC","score":120},{"name":"XYZ","score":40}]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		entries, err := highscore.NewFileStore(path).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []highscore.Entry{
			{Name: "ABC", Score: 120},
			{Name: "XYZ", Score: 40},
		}, entries)
	})

	t.Run("corrupt file is an error and the table keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := highscore.NewFileStore(path)
		_, err := store.Load(ctx)
		assert.Error(t, err)
		assert.Equal(t, highscore.Defaults(), highscore.NewTable(store).Entries())
	})

	t.Run("empty path uses the default location", func(t *testing.T) {
		assert.Equal(t, highscore.DefaultPath, highscore.NewFileStore("").Path)
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("file backend", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hs.json")
		store, closer, err := highscore.Open(ctx, highscore.Options{Backend: "file", Path: path})
		require.NoError(t, err)
		defer closer.Close()
		assert.IsType(t, &highscore.FileStore{}, store)
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, _, err := highscore.Open(ctx, highscore.Options{Backend: "postgres"})
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, _, err := highscore.Open(ctx, highscore.Options{Backend: "floppy"})
		assert.ErrorContains(t, err, "floppy")
	})

	t.Run("table falls back to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hs.json")
		table, closer := highscore.OpenTable(ctx, highscore.Options{Backend: "floppy", Path: path})

		table.Submit("ABC", 500)
		require.NoError(t, closer.Close())
		_, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, "ABC", table.Entries()[0].Name)
	})
}
