// Package highscore keeps the shared top-3 table and persists it through a Store.
package highscore

import "sort"

// Limit is the number of entries kept in the table.
const Limit = 3

// Entry is one line of the table.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Defaults returns the placeholder table used when nothing could be loaded.
func Defaults() []Entry {
	out := make([]Entry, Limit)
	for i := range out {
		out[i] = Entry{Name: "---", Score: 0}
	}
	return out
}

// Insert returns a new slice with e merged into entries, sorted by descending score
// and truncated to limit. Equal scores keep their insertion order.
func Insert(entries []Entry, e Entry, limit int) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, Limit)
	for _, e := range entries {
		out = Insert(out, e, Limit)
	}
	return out
}
