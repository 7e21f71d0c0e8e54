package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
)

// randomChainStore builds a chain of n edges (1..n) joined by InsideUp
// shortcuts with random costs, every one of them forward-walkable from edge
// 1 straight through to edge n. Grounded on the teacher's randomized
// priority-queue/R-tree stress tests (pkg/contractor/priority_queue_test.go,
// pkg/datastructure/rtree_test.go), which generate random structures with
// golang.org/x/exp/rand and check an invariant holds across many trials.
func randomChainStore(rng *rand.Rand, n int) ([]graphstore.Shortcut, float64) {
	shortcuts := make([]graphstore.Shortcut, 0, n-1)
	var total float64
	for i := 1; i < n; i++ {
		cost := float64(rng.Intn(20) + 1)
		total += cost
		shortcuts = append(shortcuts, graphstore.Shortcut{
			From:   graphstore.EdgeID(i),
			To:     graphstore.EdgeID(i + 1),
			Cost:   cost,
			Inside: graphstore.InsideUp,
		})
	}
	return shortcuts, total
}

func TestClassicMatchesHandComputedDistanceOnRandomChains(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(30) + 2
		shortcuts, sumCosts := randomChainStore(rng, n)

		meta := make(map[graphstore.EdgeID]graphstore.EdgeMeta, n)
		targetCost := float64(rng.Intn(10) + 1)
		for i := 1; i <= n; i++ {
			cost := 0.0
			if graphstore.EdgeID(i) == graphstore.EdgeID(n) {
				cost = targetCost
			}
			meta[graphstore.EdgeID(i)] = graphstore.EdgeMeta{Cost: cost}
		}

		store := graphstore.NewStore(shortcuts, meta)
		result := Classic(store, 1, graphstore.EdgeID(n))

		require.True(t, result.Reachable, "trial %d: n=%d", trial, n)
		assert.InDelta(t, sumCosts+targetCost, result.Distance, 1e-9, "trial %d: n=%d", trial, n)
		assert.Equal(t, graphstore.EdgeID(1), result.Path[0])
		assert.Equal(t, graphstore.EdgeID(n), result.Path[len(result.Path)-1])
	}
}

func TestMultiAgreesWithClassicOnRandomChains(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(20) + 2
		shortcuts, _ := randomChainStore(rng, n)

		meta := make(map[graphstore.EdgeID]graphstore.EdgeMeta, n)
		for i := 1; i <= n; i++ {
			meta[graphstore.EdgeID(i)] = graphstore.EdgeMeta{Cost: float64(rng.Intn(5))}
		}

		store := graphstore.NewStore(shortcuts, meta)
		source, target := graphstore.EdgeID(1), graphstore.EdgeID(n)

		classicResult := Classic(store, source, target)
		multiResult := Multi(store,
			[]Endpoint{{Edge: source, Cost: 0}},
			[]Endpoint{{Edge: target, Cost: 0}},
		)

		assert.Equal(t, classicResult.Reachable, multiResult.Reachable, "trial %d", trial)
		assert.InDelta(t, classicResult.Distance, multiResult.Distance, 1e-9, "trial %d", trial)
	}
}
