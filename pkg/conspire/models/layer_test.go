package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayer_Bindings(t *testing.T) {
	t.Run("Should start with every channel absent", func(t *testing.T) {
		l := NewLayer()
		for _, c := range []Channel{ChannelX, ChannelY, ChannelColor, ChannelSize} {
			_, ok := l.Get(c)
			assert.False(t, ok, "channel %s", c)
		}
		_, ok := l.GetName()
		assert.False(t, ok)
	})

	t.Run("Should return an updated copy and leave the receiver unchanged", func(t *testing.T) {
		base := NewLayer().X(Floats{1, 2})
		next := base.Y(Floats{3, 4})

		_, ok := base.GetY()
		assert.False(t, ok)
		y, ok := next.GetY()
		assert.True(t, ok)
		assert.Equal(t, []float64{3, 4}, y.Floats())
	})

	t.Run("Should keep the last write for a channel", func(t *testing.T) {
		l := NewLayer().X(Floats{1}).X(Strings{"a", "b"})
		x, ok := l.GetX()
		assert.True(t, ok)
		assert.Equal(t, KindCategorical, x.Kind())
		assert.Equal(t, []string{"a", "b"}, x.Strings())
	})

	t.Run("Should treat an empty binding as absent", func(t *testing.T) {
		l := NewLayer().Color(Ints{}).Size(nil)
		_, ok := l.GetColor()
		assert.False(t, ok)
		_, ok = l.GetSize()
		assert.False(t, ok)
	})

	t.Run("Should not alias caller data", func(t *testing.T) {
		data := Floats{1, 2, 3}
		l := NewLayer().X(data)
		data[0] = 100
		x, _ := l.GetX()
		assert.Equal(t, []float64{1, 2, 3}, x.Floats())
	})

	t.Run("Should report the name", func(t *testing.T) {
		name, ok := NewLayer().Name("cats").GetName()
		assert.True(t, ok)
		assert.Equal(t, "cats", name)
	})
}

func TestMatrixLayer_Bindings(t *testing.T) {
	l := NewMatrixLayer().Z(Grid[int]{{1, 2}, {3, 4}}).Name("heat")

	z, ok := l.GetZ()
	assert.True(t, ok)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, z.Rows())
	_, ok = l.GetColor()
	assert.False(t, ok)
	name, _ := l.GetName()
	assert.Equal(t, "heat", name)
}
