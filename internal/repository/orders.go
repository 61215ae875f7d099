package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"workshop-service/internal/model"
	"workshop-service/internal/store"
)

// OrderRepository mediates every collection mutation, keeping the in-memory
// working set and the record store consistent. A mutation is committed only
// once the store write succeeds; on write failure the in-memory state is
// rolled back and the error returned.
type OrderRepository struct {
	mu     sync.RWMutex
	store  store.RecordStore
	orders []model.Order
}

// NewOrderRepository wraps the given store around an already loaded
// collection. Loading (and the corrupt-store fallback) is the composition
// root's concern.
func NewOrderRepository(recordStore store.RecordStore, orders []model.Order) *OrderRepository {
	working := make([]model.Order, len(orders))
	for i, o := range orders {
		working[i] = o.Clone()
	}
	return &OrderRepository{store: recordStore, orders: working}
}

// List returns a deep-copied snapshot in insertion order. Callers apply
// their own sort and filter.
func (r *OrderRepository) List() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		snapshot[i] = o.Clone()
	}
	return snapshot
}

func (r *OrderRepository) GetByID(id string) (*model.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			clone := o.Clone()
			return &clone, true
		}
	}
	return nil, false
}

// Exists reports whether an order with the given id is in the collection.
func (r *OrderRepository) Exists(id string) bool {
	_, ok := r.GetByID(id)
	return ok
}

func (r *OrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// Create appends the order and persists the collection. The caller is
// responsible for handing in a Pending order with an unused id.
func (r *OrderRepository) Create(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order.Clone())
	if err := r.store.Save(ctx, r.orders); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return err
	}
	return nil
}

// Update replaces the stored order whose id matches with the argument's
// full value. A miss is a silent no-op: callers only update orders they
// obtained from List. Before persisting, the completion date is stamped
// when the order enters Completed without one; it is a one-way latch and
// is never cleared or overwritten here.
func (r *OrderRepository) Update(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != order.ID {
			continue
		}

		incoming := order.Clone()
		if incoming.Status == model.StatusCompleted && incoming.CompletionDate == nil {
			now := time.Now()
			incoming.CompletionDate = &now
		}

		previous := r.orders[i]
		r.orders[i] = incoming
		if err := r.store.Save(ctx, r.orders); err != nil {
			r.orders[i] = previous
			return err
		}
		return nil
	}
	return nil
}

// Delete removes the order with the given id, preserving the relative
// order of the remaining entries. A miss is a silent no-op, which makes
// the operation idempotent. Destructive and irreversible: the caller must
// have obtained explicit user confirmation.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}

		removed := r.orders[i]
		r.orders = append(r.orders[:i], r.orders[i+1:]...)
		if err := r.store.Save(ctx, r.orders); err != nil {
			r.orders = append(r.orders[:i], append([]model.Order{removed}, r.orders[i:]...)...)
			return err
		}
		return nil
	}
	return nil
}

// ListFilter narrows a collection snapshot. Search matches
// case-insensitively over order id, plate and owner name.
type ListFilter struct {
	Status *model.OrderStatus
	Search string
}

func FilterOrders(orders []model.Order, filter ListFilter) []model.Order {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if search != "" {
			matches := strings.Contains(strings.ToLower(o.ID), search) ||
				strings.Contains(strings.ToLower(o.Motorcycle.Plate), search) ||
				strings.Contains(strings.ToLower(o.Owner.Name), search)
			if !matches {
				continue
			}
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// SortByEntryDateDesc orders a snapshot newest-first, the default listing
// order of the management screen.
func SortByEntryDateDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].EntryDate.After(orders[j].EntryDate)
	})
}
