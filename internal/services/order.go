package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/metrics"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/glamzz/glamzz-store/pkg/sendgrid"
	"github.com/shopspring/decimal"
)

// Two distinct pricing policies coexist: the cart checkout deducts a flat
// ₹100 per distinct line, while the single-item buy-now path adds a flat ₹50
// for cash on delivery and gives no discount. They are deliberately not
// unified.
const (
	perLineDiscount = 100
	codSurcharge    = 50
)

type OrderService struct {
	orders  *repository.OrderStore
	cart    *repository.CartStore
	session *repository.SessionStore
	catalog *catalog.Catalog
	idGen   OrderIDGenerator
	email   sendgrid.EmailService
}

func NewOrderService(orders *repository.OrderStore, cart *repository.CartStore, session *repository.SessionStore, catalog *catalog.Catalog, idGen OrderIDGenerator, email sendgrid.EmailService) *OrderService {
	return &OrderService{
		orders:  orders,
		cart:    cart,
		session: session,
		catalog: catalog,
		idGen:   idGen,
		email:   email,
	}
}

func orderDate() string {
	return time.Now().Format("02/01/2006")
}

func snapshotItems(items []models.CartItem) []models.OrderItem {

	out := make([]models.OrderItem, 0, len(items))

	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return out
}

// Checkout materializes the cart into a new order and clears the cart. The
// discount is ₹100 per distinct line, not per unit. Requires a session user
// and a non-empty cart; neither failure mutates any state.
func (s *OrderService) Checkout(ctx context.Context) (*models.Order, error) {

	user := s.session.Get()
	if user == nil {
		return nil, errors.UnauthorizedError("Please login to place an order")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart")
	}

	total := CartTotal(items)
	discount := decimal.NewFromInt(int64(len(items)) * perLineDiscount)
	finalTotal := total.Sub(discount)

	order := models.Order{
		ID:     s.idGen.NewOrderID(),
		Date:   orderDate(),
		Items:  snapshotItems(items),
		Total:  finalTotal,
		Status: models.OrderStatusProcessing,
	}

	s.orders.Prepend(order)
	s.cart.Clear()
	metrics.OrderPlaced("checkout")

	s.sendConfirmation(ctx, user, &order)

	return &order, nil
}

// BuyNow is the independent single-item path from the product detail view. It
// carries its own delivery details, never touches the cart, and starts the
// order at "Shipped".
func (s *OrderService) BuyNow(ctx context.Context, req *models.BuyNowRequest) (*models.Order, error) {

	user := s.session.Get()
	if user == nil {
		return nil, errors.UnauthorizedError("Please login to place an order")
	}

	product, ok := s.catalog.ByID(req.ProductID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	if !product.HasSize(req.Size) {
		return nil, errors.ValidationError("Please select a size first")
	}

	total := product.Price
	if req.PaymentMethod == models.PaymentMethodCOD {
		total = total.Add(decimal.NewFromInt(codSurcharge))
	}

	order := models.Order{
		ID:   s.idGen.NewOrderID(),
		Date: orderDate(),
		Items: []models.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			Size:      req.Size,
			Quantity:  1,
			UnitPrice: product.Price,
		}},
		Total:  total,
		Status: models.OrderStatusShipped,
	}

	s.orders.Prepend(order)
	metrics.OrderPlaced("buy_now")

	// Delivery details entered at buy-now become the session user's saved
	// contact details.
	s.session.Update(func(u *models.User) {
		u.Name = req.Name
		u.Phone = req.Phone
		u.Address = req.Address
	})

	s.sendConfirmation(ctx, s.session.Get(), &order)

	return &order, nil
}

func (s *OrderService) ListOrders() []models.Order {
	return s.orders.List()
}

func (s *OrderService) GetOrder(id string) (*models.Order, error) {

	order, ok := s.orders.Get(id)
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	return order, nil
}

// AdvanceStatus moves the order one step along Processing → Shipped → Out for
// Delivery → Delivered. Nothing calls this automatically.
func (s *OrderService) AdvanceStatus(id string) (*models.Order, error) {

	order, ok := s.orders.Get(id)
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	s.orders.UpdateStatus(id, order.Status.Next())

	order, _ = s.orders.Get(id)

	return order, nil
}

// sendConfirmation is best-effort: a failed or unconfigured email never fails
// the order.
func (s *OrderService) sendConfirmation(ctx context.Context, user *models.User, order *models.Order) {

	if s.email == nil || user == nil || user.Email == "" {
		return
	}

	msg := &sendgrid.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("Order Confirmed - %s", order.ID),
		Content: fmt.Sprintf("Hi %s,\n\nYour order %s has been placed successfully. Total: ₹%s.\nYou can track its progress from the Orders page.\n\nGLAMZZ Fashion Hub", user.Name, order.ID, order.Total.StringFixed(2)),
	}

	if err := s.email.Send(ctx, msg); err != nil {
		slog.Warn("Failed to send order confirmation email",
			slog.String("orderId", order.ID),
			slog.String("error", err.Error()))
	}
}
