package repository_test

import (
	"testing"

	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(productID, size string) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Size:      size,
		UnitPrice: decimal.NewFromInt(225),
	}
}

func TestCartStoreUpsert(t *testing.T) {

	t.Run("New Line Starts At Quantity One", func(t *testing.T) {
		store := repository.NewCartStore()

		store.Upsert(cartLine("arena-leggings", "M"))

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Same Key Increments, Different Size Is A New Line", func(t *testing.T) {
		store := repository.NewCartStore()

		store.Upsert(cartLine("arena-leggings", "M"))
		store.Upsert(cartLine("arena-leggings", "M"))
		store.Upsert(cartLine("arena-leggings", "L"))

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("Insertion Order Is Preserved", func(t *testing.T) {
		store := repository.NewCartStore()

		store.Upsert(cartLine("shimmer-leggings", "L"))
		store.Upsert(cartLine("arena-leggings", "M"))

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "shimmer-leggings", items[0].ProductID)
		assert.Equal(t, "arena-leggings", items[1].ProductID)
	})
}

func TestCartStoreAdjust(t *testing.T) {

	store := repository.NewCartStore()
	store.Upsert(cartLine("arena-leggings", "M"))

	t.Run("Positive Delta", func(t *testing.T) {
		store.Adjust("arena-leggings", "M", 2)

		assert.Equal(t, 3, store.Items()[0].Quantity)
	})

	t.Run("Clamped At One", func(t *testing.T) {
		store.Adjust("arena-leggings", "M", -10)

		assert.Equal(t, 1, store.Items()[0].Quantity)
	})

	t.Run("Missing Line Is A No-Op", func(t *testing.T) {
		store.Adjust("arena-leggings", "XL", 5)

		assert.Equal(t, 1, store.Len())
	})
}

func TestCartStoreRemoveAndClear(t *testing.T) {

	store := repository.NewCartStore()
	store.Upsert(cartLine("arena-leggings", "M"))
	store.Upsert(cartLine("arena-leggings", "L"))

	t.Run("Remove Matches On Product And Size", func(t *testing.T) {
		store.Remove("arena-leggings", "M")

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "L", items[0].Size)
	})

	t.Run("Remove Missing Line Is A No-Op", func(t *testing.T) {
		store.Remove("shimmer-leggings", "L")

		assert.Equal(t, 1, store.Len())
	})

	t.Run("Clear Empties The Cart", func(t *testing.T) {
		store.Clear()

		assert.Zero(t, store.Len())
	})
}

func TestCartStoreItemsIsACopy(t *testing.T) {

	store := repository.NewCartStore()
	store.Upsert(cartLine("arena-leggings", "M"))

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Items()[0].Quantity)
}
