package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent rounds", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 2, "shortest-path")
		c.SetCandidates(48)

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					c.AddRound()
				}
				c.AddTargetReached()
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 400, m.Rounds, "Every round should be counted")
		require.Equal(t, 4, m.TargetReached)
		require.Equal(t, 48, m.Candidates)
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 2, m.Depth)
		require.Equal(t, "shortest-path", m.Score)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, "manhattan")
		c.AddRound()
		c.Start(1, 1, "manhattan")

		require.Zero(t, c.Complete().Rounds, "Counters should reset for each search")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8, 3, "euclidean")
		c.AddRound()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
