// Package cartstate implements the session cart and variant selection
// engines. Both hold their state in memory, guard it with a mutex so
// mutations stay strictly ordered, and write every change through to a
// storage.KV as a best-effort durable snapshot.
package cartstate

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/example/loomwear/internal/storage"
)

const cartItemsKey = "cart:items"

// Item is one cart line. Name and price are display snapshots taken at
// add time; color and size are optional and empty means absent.
type Item struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type itemKey struct {
	productID   int
	name        string
	color, size string
}

// key is the identity of a cart line. Two items merge only when productId,
// name, color and size all match; an absent color or size matches only
// another absent one.
func (i Item) key() itemKey {
	return itemKey{productID: i.ProductID, name: i.Name, color: i.Color, size: i.Size}
}

// Totals is derived from the current lines on every read, never cached.
type Totals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// PersistStatus reports the durable half of a mutation. The in-memory
// update always succeeds; Persisted is false only when the snapshot write
// failed, in which case the state will not survive a restart.
type PersistStatus struct {
	Persisted bool
	Err       error
}

// CartStore holds the cart lines. One instance exists per process,
// constructed at startup and handed to whoever needs it.
type CartStore struct {
	mu    sync.Mutex
	kv    storage.KV
	log   zerolog.Logger
	items []Item
}

// NewCartStore restores the cart from storage. Absent or unreadable data
// silently yields an empty cart.
func NewCartStore(kv storage.KV, log zerolog.Logger) *CartStore {
	s := &CartStore{kv: kv, log: log.With().Str("component", "cart").Logger()}
	s.restore()
	return s
}

func (s *CartStore) restore() {
	data, err := s.kv.Get(context.Background(), cartItemsKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.log.Warn().Err(err).Msg("cart state unreadable, starting empty")
		}
		return
	}

	var loaded []Item
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.Warn().Err(err).Msg("cart state corrupt, starting empty")
		return
	}
	for _, item := range loaded {
		if item.Quantity < 1 {
			continue
		}
		s.items = append(s.items, item)
	}
}

// Add merges the item into the cart. A line with the same identity key
// keeps its position and gains the added quantity; otherwise the item is
// appended. A quantity below 1 counts as 1.
func (s *CartStore) Add(item Item) PersistStatus {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.key()
	for i := range s.items {
		if s.items[i].key() == key {
			// The existing line keeps its snapshot fields; only the
			// quantity grows.
			s.items[i].Quantity += item.Quantity
			return s.persist()
		}
	}
	s.items = append(s.items, item)
	return s.persist()
}

// Remove drops every line with the given product id, regardless of color
// or size. The contract is deliberately coarser than Add's identity key:
// one remove clears all variants of a product.
func (s *CartStore) Remove(productID int) PersistStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist()
}

// Clear empties the cart unconditionally.
func (s *CartStore) Clear() PersistStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

// Items returns a copy of the current lines in insertion order.
func (s *CartStore) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Totals recomputes count and amount from the current lines.
func (s *CartStore) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := Totals{Amount: decimal.Zero}
	for _, item := range s.items {
		totals.Count += item.Quantity
		totals.Amount = totals.Amount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return totals
}

// persist writes the full line list while the mutation lock is held, so
// the snapshot for mutation n is on disk before mutation n+1 starts.
// Callers hold s.mu.
func (s *CartStore) persist() PersistStatus {
	data, err := json.Marshal(s.items)
	if err == nil {
		err = s.kv.Set(context.Background(), cartItemsKey, data)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("cart state write failed, in-memory state kept")
		return PersistStatus{Persisted: false, Err: err}
	}
	return PersistStatus{Persisted: true}
}
