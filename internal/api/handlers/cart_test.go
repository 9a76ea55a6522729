package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glamzz/glamzz-store/internal/api/handlers"
	"github.com/glamzz/glamzz-store/internal/catalog"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/testutils"
	"github.com/glamzz/glamzz-store/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCartTest -> wires a handler against a fresh in-memory cart
func setupCartTest(t *testing.T) (*handlers.CartHandler, *repository.CartStore) {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	store := repository.NewCartStore()

	return handlers.NewCartHandler(service.NewCartService(store, cat)), store
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return &resp
}

func TestAddItemHandler(t *testing.T) {

	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		cartHandler, store := setupCartTest(t)

		body := []byte(`{"product_id": "arena-leggings", "size": "M"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/carts/items", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Failure - Missing Size", func(t *testing.T) {
		// Arrange
		cartHandler, store := setupCartTest(t)

		body := []byte(`{"product_id": "arena-leggings"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/carts/items", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Zero(t, store.Len())
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		cartHandler, _ := setupCartTest(t)

		body := []byte(`{"product_id": "velvet-saree", "size": "M"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/carts/items", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decodeResponse(t, recorder)
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, "Product not found")
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		// Arrange
		cartHandler, _ := setupCartTest(t)

		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/carts/items", bytes.NewBufferString("{not json"), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetCartHandler(t *testing.T) {

	t.Run("Success - Empty Cart", func(t *testing.T) {
		// Arrange
		cartHandler, _ := setupCartTest(t)

		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/carts", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, decodeResponse(t, recorder).Success)
	})
}

func TestRemoveItemHandler(t *testing.T) {

	t.Run("Success - Line Removed", func(t *testing.T) {
		// Arrange
		cartHandler, store := setupCartTest(t)

		addBody := []byte(`{"product_id": "arena-leggings", "size": "M"}`)
		addReq := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/carts/items", bytes.NewBuffer(addBody), nil)
		addReq.Header.Set("Content-Type", "application/json")
		cartHandler.AddItem()(httptest.NewRecorder(), addReq)
		require.Equal(t, 1, store.Len())

		body := []byte(`{"product_id": "arena-leggings", "size": "M"}`)
		req := testutils.CreateTestRequestWithoutContext("DELETE", "/api/v1/carts/items", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Zero(t, store.Len())
	})
}
