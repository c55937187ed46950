package brewing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feybrew/cauldron/internal/domain"
)

func testPool() domain.ElementPool {
	return domain.ElementPool{
		domain.ElementFire:  2,
		domain.ElementWater: 1,
		domain.ElementEarth: 1,
	}
}

func TestPairing_AddPair(t *testing.T) {
	tests := []struct {
		name        string
		pairs       [][2]domain.Element
		expectErr   error
		expectPairs int
	}{
		{
			name:        "Distinct elements",
			pairs:       [][2]domain.Element{{domain.ElementFire, domain.ElementWater}},
			expectPairs: 1,
		},
		{
			name:        "Same element with two occurrences",
			pairs:       [][2]domain.Element{{domain.ElementFire, domain.ElementFire}},
			expectPairs: 1,
		},
		{
			name:      "Same element with one occurrence",
			pairs:     [][2]domain.Element{{domain.ElementWater, domain.ElementWater}},
			expectErr: domain.ErrElementUnavailable,
		},
		{
			name:      "Element absent from pool",
			pairs:     [][2]domain.Element{{domain.ElementAir, domain.ElementFire}},
			expectErr: domain.ErrElementUnavailable,
		},
		{
			name: "Second pair exhausts an element",
			pairs: [][2]domain.Element{
				{domain.ElementFire, domain.ElementWater},
				{domain.ElementFire, domain.ElementWater},
			},
			expectErr:   domain.ErrElementUnavailable,
			expectPairs: 1,
		},
		{
			name: "Full consumption of the pool",
			pairs: [][2]domain.Element{
				{domain.ElementFire, domain.ElementFire},
				{domain.ElementWater, domain.ElementEarth},
			},
			expectPairs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairing := NewPairing(testPool())

			var lastErr error
			for _, pair := range tt.pairs {
				lastErr = pairing.AddPair(pair[0], pair[1])
				if lastErr != nil {
					break
				}
			}

			if tt.expectErr != nil {
				assert.ErrorIs(t, lastErr, tt.expectErr)
			} else {
				assert.NoError(t, lastErr)
			}
			assert.Len(t, pairing.Pairs(), tt.expectPairs)
		})
	}
}

func TestPairing_PairOrderIndependence(t *testing.T) {
	pairing := NewPairing(testPool())
	require.NoError(t, pairing.AddPair(domain.ElementWater, domain.ElementFire))

	pair := pairing.Pairs()[0]
	assert.True(t, pair.Matches(domain.ElementFire, domain.ElementWater))
	assert.True(t, pair.Matches(domain.ElementWater, domain.ElementFire))

	reversed := domain.ElementPair{First: domain.ElementFire, Second: domain.ElementWater}
	assert.Equal(t, reversed.Key(), pair.Key())
}

func TestPairing_RemovePair(t *testing.T) {
	pairing := NewPairing(testPool())
	require.NoError(t, pairing.AddPair(domain.ElementFire, domain.ElementWater))
	require.NoError(t, pairing.AddPair(domain.ElementFire, domain.ElementEarth))

	// Removing frees both elements for re-pairing
	require.NoError(t, pairing.RemovePair(0))
	assert.Len(t, pairing.Pairs(), 1)
	assert.Equal(t, 1, pairing.RemainingCount(domain.ElementFire))
	assert.Equal(t, 1, pairing.RemainingCount(domain.ElementWater))

	require.NoError(t, pairing.AddPair(domain.ElementFire, domain.ElementWater))

	err := pairing.RemovePair(5)
	assert.ErrorIs(t, err, domain.ErrPairNotFound)
	err = pairing.RemovePair(-1)
	assert.ErrorIs(t, err, domain.ErrPairNotFound)
}

func TestPairing_Remaining(t *testing.T) {
	pairing := NewPairing(testPool())
	require.NoError(t, pairing.AddPair(domain.ElementFire, domain.ElementWater))

	collect := func() map[domain.Element]int {
		out := make(map[domain.Element]int)
		for e, n := range pairing.Remaining() {
			out[e] = n
		}
		return out
	}

	// Water is fully consumed and must be omitted entirely
	expected := map[domain.Element]int{
		domain.ElementFire:  1,
		domain.ElementEarth: 1,
	}
	assert.Equal(t, expected, collect())

	// The sequence is restartable; a second full walk sees the same snapshot
	assert.Equal(t, expected, collect())

	// Early break must not corrupt later walks
	for range pairing.Remaining() {
		break
	}
	assert.Equal(t, expected, collect())
}

func TestPairing_RemainingCountNeverNegative(t *testing.T) {
	pairing := NewPairing(testPool())
	require.NoError(t, pairing.AddPair(domain.ElementWater, domain.ElementEarth))

	assert.Equal(t, 0, pairing.RemainingCount(domain.ElementWater))
	assert.Equal(t, 0, pairing.RemainingCount(domain.ElementAir))
	assert.Equal(t, 2, pairing.RemainingCount(domain.ElementFire))
}

func TestPairing_PoolIsolation(t *testing.T) {
	pool := testPool()
	pairing := NewPairing(pool)
	require.NoError(t, pairing.AddPair(domain.ElementFire, domain.ElementWater))

	// The caller's pool is untouched; pairing works on its own copy
	assert.Equal(t, 2, pool[domain.ElementFire])
	assert.Equal(t, 1, pool[domain.ElementWater])
}
