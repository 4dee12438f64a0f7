package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/notifier"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

// OrderService implements order placement and admin order management.
type OrderService struct {
	repo       repository.OrderRepository
	catalog    repository.ProductRepository
	dispatcher *notifier.Dispatcher
	logger     *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, catalog repository.ProductRepository, dispatcher *notifier.Dispatcher, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:       repo,
		catalog:    catalog,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateOrderInput holds the checkout payload. Older storefront builds send
// the address under "customer" instead of "shippingAddress".
type CreateOrderInput struct {
	Items           []domain.OrderItem     `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Customer        domain.ShippingAddress `json:"customer"`
	Total           float64                `json:"total"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// CreateOrder validates the checkout payload, enriches line items from the
// catalog, persists the order and fires the order notifications. Notification
// failures never affect the result.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.InvalidInput("Items are required")
	}

	address := input.ShippingAddress
	if len(address) == 0 {
		address = input.Customer
	}
	if len(address) == 0 {
		return nil, apperrors.InvalidInput("Shipping address is required")
	}

	if input.Total == 0 {
		return nil, apperrors.InvalidInput("Total is required")
	}
	if input.PaymentMethod == "" {
		return nil, apperrors.InvalidInput("Payment method is required")
	}

	items := s.enrichItems(ctx, input.Items)

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.New().String(),
		Items:           items,
		ShippingAddress: address,
		Total:           input.Total,
		PaymentMethod:   input.PaymentMethod,
		Status:          domain.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, apperrors.Internal("Error creating order", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.Float64("total", order.Total),
		slog.Int("items", len(order.Items)),
	)

	s.dispatcher.Dispatch(ctx, order)

	return order, nil
}

// enrichItems fills in missing product titles and images from the catalog.
// Lookups run concurrently, one per item needing data; failures are logged and
// leave the fields empty rather than failing the order.
func (s *OrderService) enrichItems(ctx context.Context, items []domain.OrderItem) []domain.OrderItem {
	enriched := make([]domain.OrderItem, len(items))
	copy(enriched, items)

	var wg sync.WaitGroup
	for i := range enriched {
		item := &enriched[i]
		if item.ProductTitle != nil && item.ProductImage != nil {
			continue
		}
		if item.Product == nil || *item.Product == "" {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			product, err := s.catalog.GetByID(ctx, *item.Product)
			if err != nil {
				s.logger.WarnContext(ctx, "could not enrich order item",
					slog.String("product_id", *item.Product),
					slog.String("error", err.Error()),
				)
				return
			}

			if item.ProductTitle == nil && product.Title != "" {
				title := product.Title
				item.ProductTitle = &title
			}
			if item.ProductImage == nil {
				if img := product.FirstImage(); img != "" {
					item.ProductImage = &img
				}
			}
		}()
	}
	wg.Wait()

	return enriched
}

// GetOrder retrieves an order by its ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// ListOrders returns a paginated list of orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, int, error) {
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

// UpdateOrderStatus sets an order to a new status. Any valid status may be set
// from any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	if status == "" {
		return nil, apperrors.InvalidInput("Status is required")
	}
	if !domain.IsValidStatus(status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("status", status),
	)

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order after status update: %w", err)
	}
	return order, nil
}

// DeleteOrder permanently removes an order and its items.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", id))
	return nil
}
