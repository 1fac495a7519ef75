// Package cart holds the shopper's cart and keeps it in sync with storage.
package cart

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Listener receives a snapshot after every cart change.
type Listener func(entity.Cart)

// Store is the single owner of the cart. Every mutation is written through
// to persistence and then broadcast to listeners.
type Store struct {
	// writeMu orders mutations with their write-through; mu guards state.
	writeMu     sync.Mutex
	mu          sync.Mutex
	items       []entity.LineItem
	persistence *Persistence
	logger      *slog.Logger

	listeners map[int]Listener
	nextID    int
}

// NewStore creates an empty store. Call Initialize to load persisted items.
func NewStore(persistence *Persistence, logger *slog.Logger) *Store {
	return &Store{
		items:       []entity.LineItem{},
		persistence: persistence,
		logger:      logger,
		listeners:   make(map[int]Listener),
	}
}

// Initialize replaces the in-memory cart with the persisted one.
func (s *Store) Initialize(ctx context.Context) {
	items := s.persistence.Read(ctx)

	s.mu.Lock()
	s.items = items
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("cart loaded", slog.Int("lines", len(items)))
	s.notify(snapshot)
}

// Add puts one unit of product in the cart.
func (s *Store) Add(ctx context.Context, product entity.Product) {
	s.mutate(ctx, func(items []entity.LineItem) []entity.LineItem {
		if i := indexOf(items, product.ID); i >= 0 {
			items[i].Quantity++

			return items
		}

		return append(items, entity.LineItem{Product: product, Quantity: 1})
	})
}

// Remove deletes the line for productID, if present.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mutate(ctx, func(items []entity.LineItem) []entity.LineItem {
		return slices.DeleteFunc(items, func(item entity.LineItem) bool {
			return item.Product.ID == productID
		})
	})
}

// SetQuantity sets the quantity of an existing line. Quantities below 1
// and unknown products leave the cart untouched.
func (s *Store) SetQuantity(ctx context.Context, productID, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mutate(ctx, func(items []entity.LineItem) []entity.LineItem {
		if i := indexOf(items, productID); i >= 0 {
			items[i].Quantity = quantity
		}

		return items
	})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mutate(ctx, func([]entity.LineItem) []entity.LineItem {
		return []entity.LineItem{}
	})
}

// Snapshot returns a copy of the current cart.
func (s *Store) Snapshot() entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate applies fn and persists the result before the next mutation may
// start, so the stored slot always matches the latest in-memory cart.
func (s *Store) mutate(ctx context.Context, fn func([]entity.LineItem) []entity.LineItem) {
	s.writeMu.Lock()
	s.mu.Lock()
	s.items = fn(s.items)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistence.Write(ctx, snapshot.Items)
	s.writeMu.Unlock()

	s.notify(snapshot)
}

// notify runs outside the lock so listeners may call back into the store.
func (s *Store) notify(snapshot entity.Cart) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() entity.Cart {
	return entity.Cart{Items: slices.Clone(s.items)}
}

func indexOf(items []entity.LineItem, productID int) int {
	return slices.IndexFunc(items, func(item entity.LineItem) bool {
		return item.Product.ID == productID
	})
}
