package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/engine"
)

type countingSystem struct {
	order *[]string
	name  string
	count int
	ticks []uint64
}

func (s *countingSystem) Execute(frame *engine.UpdateFrame) {
	s.count++
	s.ticks = append(s.ticks, frame.Tick)
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var order []string
		scheduler := engine.NewScheduler()
		scheduler.Register(&countingSystem{order: &order, name: "input"})
		scheduler.Register(&countingSystem{order: &order, name: "sessions"})
		scheduler.Register(&countingSystem{order: &order, name: "render"})

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		assert.Equal(t, []string{"input", "sessions", "render", "input", "sessions", "render"}, order)
		assert.Equal(t, uint64(2), scheduler.Tick())
	})

	t.Run("frames carry the tick number and delta", func(t *testing.T) {
		var dts []float64
		scheduler := engine.NewScheduler()
		scheduler.Register(engine.SystemFunc(func(frame *engine.UpdateFrame) {
			dts = append(dts, frame.DeltaTime)
		}))
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, []float64{0.5, 0.25}, dts)
		assert.Equal(t, []uint64{1, 2}, counter.ticks)
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		var order []string
		scheduler := engine.NewScheduler()
		scheduler.Register(engine.SystemFunc(func(frame *engine.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
		}))
		scheduler.Register(&countingSystem{order: &order, name: "later"})

		scheduler.Once(1.0)
		assert.Equal(t, []string{"later", "deferred"}, order)

		scheduler.Once(1.0)
		assert.Equal(t, []string{"later", "deferred", "later", "deferred"}, order)
	})

	t.Run("run stops when the context is cancelled", func(t *testing.T) {
		scheduler := engine.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, 5*time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not stop")
		}
		assert.Greater(t, counter.count, 0)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := engine.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(engine.SystemFunc(func(*engine.UpdateFrame) {}))

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(1.0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
}
