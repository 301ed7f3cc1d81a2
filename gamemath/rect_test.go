package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touch_right_edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"left_of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -20, W: 5, H: 5}, false},
		{"sliver", Rect{X: 9.999, Y: 9.999, W: 1, H: 1}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(base, c.other))
			assert.Equal(t, c.want, Overlaps(c.other, base), "overlap must be symmetric")
		})
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(100, 50, 20, 10)
	assert.Equal(t, Rect{X: 90, Y: 45, W: 20, H: 10}, r)
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 55.0, r.Bottom())
}

func TestOutsideVertical(t *testing.T) {
	assert.False(t, OutsideVertical(Rect{Y: 0, H: 10}, 0, 720))
	assert.False(t, OutsideVertical(Rect{Y: 710, H: 10}, 0, 720))
	assert.True(t, OutsideVertical(Rect{Y: -0.5, H: 10}, 0, 720))
	assert.True(t, OutsideVertical(Rect{Y: 710.5, H: 10}, 0, 720))
}
