package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)

		var mag float64
		for _, val := range v {
			mag += float64(val) * float64(val)
		}
		assert.InDelta(t, 1.0, math.Sqrt(mag), 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}

func TestDotProduct(t *testing.T) {
	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.Equal(t, float32(0), dotProduct([]float32{1, 0}, []float32{0, 1}))
	})

	t.Run("identical unit vectors", func(t *testing.T) {
		assert.InDelta(t, 1.0, dotProduct([]float32{0.6, 0.8}, []float32{0.6, 0.8}), 1e-6)
	})

	t.Run("mismatched lengths use shorter", func(t *testing.T) {
		assert.Equal(t, float32(2), dotProduct([]float32{1, 1, 1}, []float32{2}))
	})
}
