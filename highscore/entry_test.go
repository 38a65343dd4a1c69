package highscore_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/dotris/highscore"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		entries []highscore.Entry
		add     highscore.Entry
		want    []highscore.Entry
	}{
		{
			name:    "into defaults",
			entries: highscore.Defaults(),
			add:     highscore.Entry{Name: "ABC", Score: 120},
			want: []highscore.Entry{
				{Name: "ABC", Score: 120},
				{Name: "---", Score: 0},
				{Name: "---", Score: 0},
			},
		},
		{
			name: "too low to place",
			entries: []highscore.Entry{
				{Name: "AAA", Score: 300},
				{Name: "BBB", Score: 200},
				{Name: "CCC", Score: 100},
			},
			add: highscore.Entry{Name: "DDD", Score: 50},
			want: []highscore.Entry{
				{Name: "AAA", Score: 300},
				{Name: "BBB", Score: 200},
				{Name: "CCC", Score: 100},
			},
		},
		{
			name: "ties keep insertion order",
			entries: []highscore.Entry{
				{Name: "AAA", Score: 300},
				{Name: "BBB", Score: 200},
				{Name: "CCC", Score: 100},
			},
			add: highscore.Entry{Name: "DDD", Score: 200},
			want: []highscore.Entry{
				{Name: "AAA", Score: 300},
				{Name: "BBB", Score: 200},
				{Name: "DDD", Score: 200},
			},
		},
		{
			name:    "from empty",
			entries: nil,
			add:     highscore.Entry{Name: "ZZZ", Score: 40},
			want:    []highscore.Entry{{Name: "ZZZ", Score: 40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, highscore.Insert(tt.entries, tt.add, highscore.Limit))
		})
	}
}

func TestInsertNeverExceedsLimit(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	entries := highscore.Defaults()
	for i := range 200 {
		entries = highscore.Insert(entries, highscore.Entry{
			Name:  fmt.Sprintf("%03d", i%1000),
			Score: rng.IntN(5000),
		}, highscore.Limit)

		assert.LessOrEqual(t, len(entries), highscore.Limit)
		for j := 1; j < len(entries); j++ {
			assert.GreaterOrEqual(t, entries[j-1].Score, entries[j].Score)
		}
	}
}

func TestInsertDoesNotAlias(t *testing.T) {
	entries := []highscore.Entry{{Name: "AAA", Score: 10}}
	out := highscore.Insert(entries, highscore.Entry{Name: "BBB", Score: 20}, highscore.Limit)
	out[0].Name = "XXX"
	assert.Equal(t, "AAA", entries[0].Name)
}
