package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glamzz/glamzz-store/internal/api/handlers"
	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupOrderTest -> wires a handler against fresh in-memory state with a
// logged-in session user
func setupOrderTest(t *testing.T) *handlers.OrderHandler {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	repos := repository.New()
	repos.Session.Set(&models.User{Name: "Priya", Email: "priya@example.com"})

	orderService := service.NewOrderService(repos.Orders, repos.Cart, repos.Session, cat, &service.SequentialOrderIDGenerator{}, nil)

	return handlers.NewOrderHandler(orderService)
}

func TestBuyNowHandler(t *testing.T) {

	t.Run("Success - Order Placed", func(t *testing.T) {
		// Arrange
		orderHandler := setupOrderTest(t)

		body := []byte(`{"product_id": "arena-leggings", "size": "M", "payment_method": "UPI", "name": "Priya", "phone": "9876543210", "address": "12 MG Road, Bengaluru"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/orders/buy-now", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.BuyNow()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.True(t, decodeResponse(t, recorder).Success)
	})

	t.Run("Failure - Phone With Non-Digit Characters", func(t *testing.T) {
		// Arrange
		orderHandler := setupOrderTest(t)

		body := []byte(`{"product_id": "arena-leggings", "size": "M", "payment_method": "COD", "name": "Priya", "phone": "abc-def-ghi", "address": "12 MG Road, Bengaluru"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/orders/buy-now", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.BuyNow()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.False(t, decodeResponse(t, recorder).Success)
	})

	t.Run("Failure - Phone Too Short", func(t *testing.T) {
		// Arrange
		orderHandler := setupOrderTest(t)

		body := []byte(`{"product_id": "arena-leggings", "size": "M", "payment_method": "COD", "name": "Priya", "phone": "98765", "address": "12 MG Road, Bengaluru"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/orders/buy-now", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.BuyNow()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Unknown Payment Method", func(t *testing.T) {
		// Arrange
		orderHandler := setupOrderTest(t)

		body := []byte(`{"product_id": "arena-leggings", "size": "M", "payment_method": "CARD", "name": "Priya", "phone": "9876543210", "address": "12 MG Road, Bengaluru"}`)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/orders/buy-now", bytes.NewBuffer(body), nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.BuyNow()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
