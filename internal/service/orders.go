package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
	"workshop-service/internal/utils"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// maxIDAttempts bounds the retry loop when a generated id collides with an
// existing order. The 6-digit space makes collisions rare but possible.
const maxIDAttempts = 50

type OrderService struct {
	orderRepo *repository.OrderRepository
}

func NewOrderService(orderRepo *repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

type CreateOrderInput struct {
	OperationType string
	Owner         model.Owner
	Motorcycle    model.Motorcycle
	Checklist     map[string]bool
	ClientReport  string
	Observations  string
	WorkHours     float64
	EstimatedCost float64
	PhotoVehicle  string
	PhotoChassis  string
}

// Create builds a Pending order from the intake form and persists it. The
// id is generated here and retried until unused, so every order in the
// collection has a unique id.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	id, err := s.uniqueID()
	if err != nil {
		return nil, err
	}

	order, err := model.NewOrder(model.NewOrderParams{
		ID:            id,
		EntryDate:     time.Now(),
		OperationType: model.OperationType(input.OperationType),
		Owner:         input.Owner,
		Motorcycle:    input.Motorcycle,
		Checklist:     input.Checklist,
		ClientReport:  input.ClientReport,
		Observations:  input.Observations,
		WorkHours:     input.WorkHours,
		EstimatedCost: input.EstimatedCost,
		PhotoVehicle:  input.PhotoVehicle,
		PhotoChassis:  input.PhotoChassis,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.orderRepo.Create(ctx, *order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := utils.GenerateOrderID()
		if !s.orderRepo.Exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate an unused order id", ErrConflict)
}

func (s *OrderService) Get(id string) (*model.Order, error) {
	order, ok := s.orderRepo.GetByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns the filtered collection sorted by entry date, newest first.
func (s *OrderService) List(filter repository.ListFilter) []model.Order {
	orders := repository.FilterOrders(s.orderRepo.List(), filter)
	repository.SortByEntryDateDesc(orders)
	return orders
}

// Update replaces the stored order with the given full value. Unknown ids
// are rejected here even though the repository treats them as a no-op;
// API callers get a clear not-found instead of silence.
func (s *OrderService) Update(ctx context.Context, order model.Order) (*model.Order, error) {
	if !order.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, order.Status)
	}
	if order.WorkHours < 0 || order.EstimatedCost < 0 {
		return nil, fmt.Errorf("%w: work hours and estimated cost must be non-negative", ErrInvalidInput)
	}
	if !s.orderRepo.Exists(order.ID) {
		return nil, ErrNotFound
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// ChangeStatus sets the status of an order, applying the completion latch
// through the repository.
func (s *OrderService) ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	return s.Update(ctx, *order)
}

// AdvanceStatus moves an order one step along the lifecycle:
// Pending -> InProgress -> Completed. Advancing a completed order fails.
func (s *OrderService) AdvanceStatus(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var next model.OrderStatus
	switch order.Status {
	case model.StatusPending:
		next = model.StatusInProgress
	case model.StatusInProgress:
		next = model.StatusCompleted
	default:
		return nil, fmt.Errorf("%w: order %s is already completed", ErrConflict, id)
	}
	return s.ChangeStatus(ctx, id, next)
}

// Delete removes an order permanently. Unknown ids are a no-op, making the
// operation idempotent. The explicit user confirmation this requires is
// enforced at the HTTP layer.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// AppendProgressUpdate adds a photo-plus-note entry to the order's repair
// log and commits the containing order.
func (s *OrderService) AppendProgressUpdate(ctx context.Context, id, photo, note string) (*model.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := order.AppendUpdate(photo, note); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Update(ctx, *order)
}

func (s *OrderService) RemoveProgressUpdate(ctx context.Context, id string, index int) (*model.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveUpdate(index); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Update(ctx, *order)
}

func (s *OrderService) EditProgressNote(ctx context.Context, id string, index int, note string) (*model.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := order.EditUpdateNote(index, note); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Update(ctx, *order)
}

// Stats are the dashboard aggregates: counts by status and operation type,
// estimated revenue and booked hours.
type Stats struct {
	Total            int            `json:"total"`
	Pending          int            `json:"pending"`
	InProgress       int            `json:"in_progress"`
	Completed        int            `json:"completed"`
	ByOperationType  map[string]int `json:"by_operation_type"`
	EstimatedRevenue float64        `json:"estimated_revenue"`
	TotalWorkHours   float64        `json:"total_work_hours"`
}

func (s *OrderService) Stats() Stats {
	stats := Stats{ByOperationType: map[string]int{}}
	for _, o := range s.orderRepo.List() {
		stats.Total++
		switch o.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
		stats.ByOperationType[string(o.OperationType)]++
		stats.EstimatedRevenue += o.EstimatedCost
		stats.TotalWorkHours += o.WorkHours
	}
	return stats
}
