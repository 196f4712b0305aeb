package selection

import (
	"math/rand"
	"testing"

	"auction-storefront/internal/models"

	"github.com/stretchr/testify/require"
)

func dataset() []models.Auction {
	return []models.Auction{
		{ID: 1, Closed: false},
		{ID: 2, Closed: true},
		{ID: 3, Closed: false},
	}
}

func TestSet_SelectRestrictedToOpen(t *testing.T) {
	s := New(dataset())

	require.True(t, s.Select(1))
	require.False(t, s.Select(2), "closed auctions are not selectable")
	require.False(t, s.Select(99), "unknown auctions are not selectable")
	require.Equal(t, []int64{1}, s.IDs())

	require.True(t, s.Toggle(3))
	require.False(t, s.Toggle(1))
	require.Equal(t, []int64{3}, s.IDs())

	s.Clear()
	require.Zero(t, s.Len())
}

func TestSet_SelectAll(t *testing.T) {
	s := New(dataset())
	s.Select(3)

	added := s.SelectAll(dataset())
	require.Equal(t, 1, added)
	require.Equal(t, []int64{1, 3}, s.IDs())
}

func TestSet_Prune(t *testing.T) {
	s := New(dataset())
	s.Select(1)
	s.Select(3)

	// auction 1 was closed elsewhere and auction 3 disappeared
	s.Prune([]models.Auction{{ID: 1, Closed: true}, {ID: 4}})
	require.Empty(t, s.IDs())
	require.True(t, s.Select(4))
	require.False(t, s.Select(1))
}

// After any refresh the set holds only ids that are open in the new dataset
func TestSet_PruneProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		before := randomDataset(rng)
		s := New(before)
		for _, a := range before {
			if rng.Intn(2) == 0 {
				s.Select(a.ID)
			}
		}

		after := randomDataset(rng)
		s.Prune(after)

		open := make(map[int64]bool)
		for _, a := range after {
			open[a.ID] = !a.Closed
		}
		for _, id := range s.IDs() {
			require.True(t, open[id], "id %d must be open in the refreshed dataset", id)
		}
	}
}

func randomDataset(rng *rand.Rand) []models.Auction {
	out := make([]models.Auction, 0, 20)
	for id := int64(1); id <= 20; id++ {
		if rng.Intn(3) == 0 {
			continue
		}
		out = append(out, models.Auction{ID: id, Closed: rng.Intn(2) == 0})
	}
	return out
}
