package catalog_test

import (
	"testing"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()

	require.NoError(t, err)
	assert.Equal(t, 8, c.Size())

	product, ok := c.ByID("arena-leggings")
	require.True(t, ok)
	assert.Equal(t, "ARENA LEGGINGS", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(225)))
	assert.True(t, product.HasSize("3XL"))
	assert.False(t, product.HasSize("S"))
}

func TestLoadCoercesStringPrices(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	// authored as "185" and "299" in the catalog source
	zara, ok := c.ByID("zara-anglefit")
	require.True(t, ok)
	assert.True(t, zara.Price.Equal(decimal.NewFromInt(185)))

	sofy, ok := c.ByID("sofy-maternity-nighty")
	require.True(t, ok)
	assert.True(t, sofy.Price.Equal(decimal.NewFromInt(299)))
}

func TestFilter(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	t.Run("All Passthrough", func(t *testing.T) {
		assert.Len(t, c.Filter("All", ""), 8)
		assert.Len(t, c.Filter("", ""), 8)
	})

	t.Run("By Category", func(t *testing.T) {
		assert.Len(t, c.Filter("Leggings", ""), 5)
		assert.Len(t, c.Filter("Pants", ""), 1)
		assert.Len(t, c.Filter("Nightwear", ""), 2)
		assert.Empty(t, c.Filter("Sarees", ""))
	})

	t.Run("By Substring", func(t *testing.T) {
		matches := c.Filter("All", "zara")
		require.Len(t, matches, 1)
		assert.Equal(t, "zara-anglefit", matches[0].ID)
	})

	t.Run("Category And Substring", func(t *testing.T) {
		assert.Len(t, c.Filter("Leggings", "LEGGINGS"), 4)
		assert.Empty(t, c.Filter("Pants", "zara"))
	})
}

func TestCategories(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"All", "Leggings", "Pants", "Nightwear"}, c.Categories())
}
