package schema

import (
	"testing"

	"github.com/erraggy/hydraschema/schemaerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Lifecycle(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.Has("Book"))

	_, err := ctx.Lookup("Book")
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrUnknownReference)

	ctx.Register("Book")
	assert.True(t, ctx.Has("Book"))
	assert.False(t, ctx.Built("Book"))

	_, err = ctx.Lookup("Book")
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrUnresolvedReference)

	book := Object().Set("@type", Literal("Book"))
	ctx.Set("Book", book)
	assert.True(t, ctx.Built("Book"))

	got, err := ctx.Lookup("Book")
	require.NoError(t, err)
	assert.Same(t, book, got)
}

func TestContext_SetOverwrites(t *testing.T) {
	ctx := NewContext()
	first := Object()
	second := Object()

	ctx.Set("Book", first)
	ctx.Set("Book", second)

	got, err := ctx.Lookup("Book")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Equal(t, 1, ctx.Len())
}

func TestContext_RegisterClearsSchema(t *testing.T) {
	ctx := NewContext()
	ctx.Set("Book", Object())
	ctx.Register("Book")
	assert.False(t, ctx.Built("Book"))
}

func TestContext_TitlesOrder(t *testing.T) {
	ctx := NewContext()
	ctx.Register("Book")
	ctx.Register("Author")
	ctx.Register("Book")
	ctx.Set("Review", Object())

	assert.Equal(t, []string{"Book", "Author", "Review"}, ctx.Titles())
}

func TestContext_Nil(t *testing.T) {
	var ctx *Context
	assert.False(t, ctx.Has("Book"))
	assert.False(t, ctx.Built("Book"))
	assert.Nil(t, ctx.Titles())
	assert.Zero(t, ctx.Len())

	_, err := ctx.Lookup("Book")
	assert.ErrorIs(t, err, schemaerrors.ErrUnknownReference)
}
