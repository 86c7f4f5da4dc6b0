package jump

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Jump
		want int
	}{
		{"longer distance wins", Jump{Distance: 130.5, Points: 100}, Jump{Distance: 128, Points: 140}, 1},
		{"shorter distance loses", Jump{Distance: 120}, Jump{Distance: 120.5}, -1},
		{"equal distance falls back to points", Jump{Distance: 125, Points: 131.2}, Jump{Distance: 125, Points: 130}, 1},
		{"equal distance and points", Jump{Distance: 125, Points: 130}, Jump{Distance: 125, Points: 130}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(&tt.a, &tt.b))
			assert.Equal(t, -tt.want, Compare(&tt.b, &tt.a), "Compare should be antisymmetric")
			assert.Equal(t, tt.want > 0, Better(&tt.a, &tt.b))
		})
	}
}

func TestCompare_IsTotalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	jumps := make([]Jump, 40)
	for i := range jumps {
		// Coarse values so that ties on distance and points actually happen.
		jumps[i] = Jump{Distance: float64(rng.Intn(5)) * 0.5, Points: float64(rng.Intn(3))}
	}

	for i := range jumps {
		a := &jumps[i]
		assert.Equal(t, 0, Compare(a, a), "Compare should be reflexive")
		for j := range jumps {
			b := &jumps[j]
			assert.Equal(t, -Compare(a, b), Compare(b, a))
			for k := range jumps {
				c := &jumps[k]
				if Compare(a, b) >= 0 && Compare(b, c) >= 0 {
					assert.GreaterOrEqual(t, Compare(a, c), 0, "Compare should be transitive")
				}
			}
		}
	}
}

func TestIsSimulated(t *testing.T) {
	assert.True(t, (&Jump{Player: "CPU 3"}).IsSimulated())
	assert.True(t, (&Jump{Player: "CPU"}).IsSimulated())
	assert.False(t, (&Jump{Player: "Alice"}).IsSimulated())
	assert.False(t, (&Jump{Player: "cpu fan"}).IsSimulated())
}

func TestValidReplayCode(t *testing.T) {
	assert.True(t, ValidReplayCode("replay000001"))
	assert.False(t, ValidReplayCode("replay00001"))
	assert.False(t, ValidReplayCode("replay0000001"))
	assert.False(t, ValidReplayCode(""))
}
