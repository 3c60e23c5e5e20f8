package vec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{V3(1, 0, 0), V3(1, 0, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v x %v", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cross(tt.b))
		})
	}
}

func TestNormalize(t *testing.T) {
	n := V3(3, 4, 0).Normalize()
	assert.True(t, n.Within(V3(0.6, 0.8, 0), 1e-6))
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-6)

	assert.True(t, V3(0, 0, 0).Normalize().Zero())
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(0), V3(1, 0, 0).Dot(V3(0, 1, 0)))
	assert.Equal(t, float32(32), V3(1, 2, 3).Dot(V3(4, 5, 6)))
}

func TestScaleAddSubtract(t *testing.T) {
	v := V3(1, -2, 3)
	assert.Equal(t, V3(2, -4, 6), v.Scale(2))
	assert.Equal(t, V3(2, 0, 4), v.Add(V3(1, 2, 1)))
	assert.Equal(t, V3(0, -4, 2), v.Subtract(V3(1, 2, 1)))
}
