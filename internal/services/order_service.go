package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"flowerstore/internal/models"
	"flowerstore/internal/repositories"
	"flowerstore/pkg/rabbitmq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService handles business logic for orders. Caller-supplied totals,
// dates and statuses are trusted; no cross-checks against products or
// addresses are performed.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder persists the order header and its items atomically and
// publishes an order.created event.
func (s *OrderService) CreateOrder(order *models.Order) (*models.Order, error) {
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"event_id":    uuid.New().String(),
		"order_id":    order.OrderID,
		"user_id":     order.UserID,
		"status":      order.Status,
		"total_price": order.TotalPrice,
	})
	return order, nil
}

// GetAllOrders retrieves every order with its items.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves one user's orders with their items.
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrdersByUserAndStatus retrieves one user's orders filtered by status.
func (s *OrderService) GetOrdersByUserAndStatus(userID uint, status string) ([]models.Order, error) {
	return s.orderRepo.GetByUserIDAndStatus(userID, status)
}

// UpdateOrderStatus sets the order's status and returns the refreshed order
// with its items. Status is an open string; any value is accepted.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"event_id": uuid.New().String(),
		"order_id": order.OrderID,
		"status":   order.Status,
	})
	return order, nil
}

// publishEvent sends an order event to the message broker. Publication
// failures are logged, never surfaced: the order itself is already durable.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
