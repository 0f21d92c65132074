package facet

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsupportedCast(t *testing.T) {
	op := Init(&AddOp{})

	view, err := TryAs[Drawable](op)
	require.ErrorIs(t, err, ErrUnsupported)
	require.False(t, view.Valid())

	var unsupported *UnsupportedFacetError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, reflect.TypeFor[AddOp](), unsupported.Entity)
	require.Equal(t, reflect.TypeFor[Drawable](), unsupported.Facet)

	require.Panics(t, func() { MustAs[Drawable](op) })

	t.Run("not an entity", func(t *testing.T) {
		_, err := TryAs[Drawable]("just a string")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnsupported)
	})

	t.Run("entity without init", func(t *testing.T) {
		_, err := TryAs[SideEffects](&AddOp{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnsupported)
	})

	t.Run("supported facet still works", func(t *testing.T) {
		view, err := TryAs[SideEffects](op)
		require.NoError(t, err)
		require.True(t, view.Valid())
		require.False(t, view.Facet().HasSideEffect())
	})
}

func TestUnboundAccess(t *testing.T) {
	t.Run("zero view", func(t *testing.T) {
		var view View[Drawable]

		require.False(t, view.Valid())
		require.Nil(t, view.Entity())
		require.Panics(t, func() { view.Facet() })
	})

	t.Run("trait before init", func(t *testing.T) {
		op := &AddOp{}

		require.False(t, op.SideFx.Bound())
		require.Panics(t, func() { op.SideFx.Facet() })
		require.Panics(t, func() { op.SideFx.View() })
	})
}
