package cart

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/client/storage"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// SlotKey is the storage slot holding the serialized cart.
const SlotKey = "cart"

// Storage is the slot store the cart persists to.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Persistence reads and writes the cart's line items.
type Persistence struct {
	storage Storage
	logger  *slog.Logger
}

// NewPersistence creates the cart persistence over storage.
func NewPersistence(storage Storage, logger *slog.Logger) *Persistence {
	return &Persistence{storage: storage, logger: logger}
}

// Read returns the stored line items. Absent, unreadable or corrupt data
// yields an empty cart; lines with quantity < 1 or a repeated product id
// are dropped.
func (p *Persistence) Read(ctx context.Context) []entity.LineItem {
	data, err := p.storage.Read(ctx, SlotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("failed to read stored cart", slog.Any("error", err))
		}

		return []entity.LineItem{}
	}

	var stored []entity.LineItem
	if err := json.Unmarshal(data, &stored); err != nil {
		p.logger.Warn("stored cart is corrupt, starting empty", slog.Any("error", err))

		return []entity.LineItem{}
	}

	items := make([]entity.LineItem, 0, len(stored))
	seen := make(map[int]struct{}, len(stored))
	for _, item := range stored {
		if item.Quantity < 1 {
			continue
		}
		if _, dup := seen[item.Product.ID]; dup {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		items = append(items, item)
	}

	return items
}

// Write stores items. Failures are logged and otherwise ignored so the
// in-memory cart keeps working without durable storage.
func (p *Persistence) Write(ctx context.Context, items []entity.LineItem) {
	if items == nil {
		items = []entity.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		p.logger.Error("failed to encode cart", slog.Any("error", err))

		return
	}

	if err := p.storage.Write(ctx, SlotKey, data); err != nil {
		p.logger.Warn("failed to persist cart", slog.Any("error", err))
	}
}
