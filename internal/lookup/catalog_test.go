package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog(
		[]Caste{{ID: 1, Caste: "Devar"}, {ID: 2, Caste: "Naidu"}},
		[]Koottam{{ID: 1, CasteID: 1, Subcaste: "Maravar"}},
		[]Rasi{{ID: 1, Rasi: "Mesham"}},
		[]Star{{ID: 1, RasiID: 1, Star: "Aswini"}},
		[]Dhosam{{ID: 1, Dhosam: "Chevvai"}},
		[]Education{{ID: 1, Education: "B.E."}},
		[]Profession{{ID: 1, Profession: "Engineer"}},
	)
}

func TestResolveRef(t *testing.T) {
	c := testCatalog()

	t.Run("known id resolves", func(t *testing.T) {
		got := ResolveRef("2", c.HasCaste)
		require.NotNil(t, got)
		assert.Equal(t, uint(2), *got)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		got := ResolveRef(" 1 ", c.HasCaste)
		require.NotNil(t, got)
		assert.Equal(t, uint(1), *got)
	})

	t.Run("empty means no selection", func(t *testing.T) {
		assert.Nil(t, ResolveRef("", c.HasCaste))
	})

	t.Run("non numeric means no selection", func(t *testing.T) {
		assert.Nil(t, ResolveRef("Devar", c.HasCaste))
		assert.Nil(t, ResolveRef("-1", c.HasCaste))
		assert.Nil(t, ResolveRef("1.5", c.HasCaste))
	})

	t.Run("missing row means no selection", func(t *testing.T) {
		assert.Nil(t, ResolveRef("42", c.HasCaste))
	})
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog()

	assert.True(t, c.HasCaste(1))
	assert.False(t, c.HasCaste(99))
	assert.True(t, c.HasKoottam(1))
	assert.True(t, c.HasRasi(1))
	assert.True(t, c.HasStar(1))
	assert.True(t, c.HasDhosam(1))
	assert.True(t, c.HasEducation(1))
	assert.True(t, c.HasProfession(1))
	assert.False(t, c.HasProfession(2))
}

func TestCatalogOptionsPreserveOrder(t *testing.T) {
	c := testCatalog()
	opts := c.Options()

	require.Len(t, opts.Castes, 2)
	assert.Equal(t, "Devar", opts.Castes[0].Caste)
	assert.Equal(t, "Naidu", opts.Castes[1].Caste)
	assert.Len(t, opts.Rasis, 1)
	assert.Len(t, opts.Stars, 1)
}
