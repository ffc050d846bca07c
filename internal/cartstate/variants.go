package cartstate

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/example/loomwear/internal/storage"
)

const (
	selectedColorKey = "variant:color"
	selectedSizeKey  = "variant:size"
)

// VariantStore tracks the chosen color and size for the session. An empty
// string means the dimension has no selection yet.
type VariantStore struct {
	mu    sync.Mutex
	kv    storage.KV
	log   zerolog.Logger
	color string
	size  string
}

// NewVariantStore restores the last persisted selection, if any.
func NewVariantStore(kv storage.KV, log zerolog.Logger) *VariantStore {
	s := &VariantStore{kv: kv, log: log.With().Str("component", "variants").Logger()}
	s.color = s.restore(selectedColorKey)
	s.size = s.restore(selectedSizeKey)
	return s
}

func (s *VariantStore) restore(key string) string {
	data, err := s.kv.Get(context.Background(), key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.log.Warn().Err(err).Str("key", key).Msg("selection unreadable, left unset")
		}
		return ""
	}
	return string(data)
}

// ApplyDefaults adopts the first catalog color/size for dimensions that
// are still unset. Restored or user-chosen values always win, so calling
// this after a late catalog fetch is a no-op for set dimensions. Defaults
// are not written through; only explicit choices persist.
func (s *VariantStore) ApplyDefaults(colors, sizes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.color == "" && len(colors) > 0 {
		s.color = colors[0]
	}
	if s.size == "" && len(sizes) > 0 {
		s.size = sizes[0]
	}
}

// SetColor overwrites the selection and writes it through. The in-memory
// update stands even when the write fails.
func (s *VariantStore) SetColor(value string) PersistStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.color = value
	return s.persist(selectedColorKey, value)
}

// SetSize overwrites the selection and writes it through.
func (s *VariantStore) SetSize(value string) PersistStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.size = value
	return s.persist(selectedSizeKey, value)
}

// Selection returns the current color and size.
func (s *VariantStore) Selection() (color, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color, s.size
}

// Callers hold s.mu.
func (s *VariantStore) persist(key, value string) PersistStatus {
	if err := s.kv.Set(context.Background(), key, []byte(value)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("selection write failed, in-memory value kept")
		return PersistStatus{Persisted: false, Err: err}
	}
	return PersistStatus{Persisted: true}
}
