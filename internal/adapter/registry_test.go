package adapter

import (
	"testing"

	"MobyExport/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	atari = model.Platform{ID: 1, Name: "Atari"}
	pc    = model.Platform{ID: 2, Name: "PC"}
	dos   = model.Platform{ID: 3, Name: "DOS"}
)

func testRegistry() *PlatformRegistry {
	return NewPlatformRegistry([]model.Platform{atari, pc, dos})
}

func TestResolve_All(t *testing.T) {
	r := testRegistry()

	for _, selector := range []string{"all", "ALL", "All", " all "} {
		sel := r.Resolve(selector)
		assert.Equal(t, []model.Platform{atari, pc, dos}, sel.Platforms, selector)
		assert.Empty(t, sel.Skipped, selector)
	}
}

func TestResolve_ByID(t *testing.T) {
	sel := testRegistry().Resolve("3,1")

	assert.Equal(t, []model.Platform{dos, atari}, sel.Platforms)
	assert.Empty(t, sel.Skipped)
}

func TestResolve_ByNameAnyCase(t *testing.T) {
	sel := testRegistry().Resolve("pc,Dos,aTaRi")

	assert.Equal(t, []model.Platform{pc, dos, atari}, sel.Platforms)
	assert.Empty(t, sel.Skipped)
}

func TestResolve_MixedWithUnknown(t *testing.T) {
	r := NewPlatformRegistry([]model.Platform{atari, pc})

	sel := r.Resolve("atari,PC,9")

	assert.Equal(t, []model.Platform{atari, pc}, sel.Platforms)
	require.Len(t, sel.Skipped, 1)
	assert.Equal(t, "9", sel.Skipped[0].Token)
	assert.True(t, sel.Skipped[0].IsID)
	assert.Equal(t, "ID", sel.Skipped[0].Kind())
}

func TestResolve_UnknownNameDoesNotAbort(t *testing.T) {
	sel := testRegistry().Resolve("Amiga,PC,Neo Geo,1")

	assert.Equal(t, []model.Platform{pc, atari}, sel.Platforms)
	require.Len(t, sel.Skipped, 2)
	assert.Equal(t, "Amiga", sel.Skipped[0].Token)
	assert.Equal(t, "name", sel.Skipped[0].Kind())
	assert.Equal(t, "Neo Geo", sel.Skipped[1].Token)
	assert.EqualError(t, sel.Skipped[1], "unrecognized platform name: Neo Geo")
}

func TestResolve_DuplicatesKept(t *testing.T) {
	sel := testRegistry().Resolve("PC,2,pc")

	assert.Equal(t, []model.Platform{pc, pc, pc}, sel.Platforms)
}

func TestResolve_WhitespaceAndEmptyTokens(t *testing.T) {
	sel := testRegistry().Resolve(" PC , ,3,")

	assert.Equal(t, []model.Platform{pc, dos}, sel.Platforms)
	assert.Empty(t, sel.Skipped)
}

func TestResolve_NumericNameIsTreatedAsID(t *testing.T) {
	r := NewPlatformRegistry([]model.Platform{{ID: 10, Name: "3DO"}, {ID: 11, Name: "64"}})

	sel := r.Resolve("3DO,64")

	assert.Equal(t, []model.Platform{{ID: 10, Name: "3DO"}}, sel.Platforms)
	require.Len(t, sel.Skipped, 1)
	assert.True(t, sel.Skipped[0].IsID)
}

func TestRegistry_Lookups(t *testing.T) {
	r := testRegistry()

	p, ok := r.ByID(2)
	require.True(t, ok)
	assert.Equal(t, pc, p)

	_, ok = r.ByID(99)
	assert.False(t, ok)

	p, ok = r.ByName("dOs")
	require.True(t, ok)
	assert.Equal(t, dos, p)

	assert.Equal(t, 3, r.Len())
}

func TestRegistry_IsImmutable(t *testing.T) {
	source := []model.Platform{atari, pc}
	r := NewPlatformRegistry(source)

	source[0] = dos
	all := r.All()
	all[1] = dos

	assert.Equal(t, []model.Platform{atari, pc}, r.All())
}

func TestRegistry_DuplicateEntriesKeepFirst(t *testing.T) {
	r := NewPlatformRegistry([]model.Platform{{ID: 1, Name: "Arcade"}, {ID: 2, Name: "arcade"}})

	p, ok := r.ByName("ARCADE")
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 2, r.Len())
}
