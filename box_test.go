package facet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeterogeneousScene(t *testing.T) {
	scene := []Box[Drawable]{
		Erase[Drawable](Circle{Radius: 1}),
		Erase[Drawable](Triangle{}),
	}

	var drawn []string
	for _, box := range scene {
		drawn = append(drawn, box.Facet().Draw())
	}

	require.Equal(t, []string{"circle radius=1", "triangle"}, drawn)
}

func TestBoxOwnsItsValue(t *testing.T) {
	circle := Circle{Radius: 3}

	box := Erase[Drawable](circle)

	// mutating the original must not show through the box
	circle.Radius = 99

	require.Equal(t, "circle radius=3", box.Facet().Draw())
	require.Zero(t, circle.rendered, "the box must render its own copy")

	boxed := box.Value().(*Circle)
	require.Equal(t, 1, boxed.rendered)
}

func TestEraseUnresolvable(t *testing.T) {
	require.Panics(t, func() { Erase[SideEffects](Triangle{}) })
}
