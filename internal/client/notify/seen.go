package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/logging"
)

// Seen is the durable set of notification ids already shown to the user.
// It only grows; ids drop out of view when Derive stops producing them.
type Seen struct {
	mu    sync.Mutex
	ids   []string
	index map[string]struct{}

	kv  storage.Store
	log logging.Logger
}

func NewSeen(kv storage.Store, log logging.Logger) *Seen {
	return &Seen{kv: kv, log: log, index: map[string]struct{}{}}
}

// Load reads the persisted set. A missing or malformed value yields an
// empty set; non-string members are skipped.
func (s *Seen) Load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, storage.KeySeenNotifications)
	if err != nil {
		return fmt.Errorf("load seen notifications: %w", err)
	}

	var ids []string
	if raw != nil {
		var decoded []any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			s.log.Warn(ctx, "discarding unreadable seen notifications", "err", err)
		}
		for _, v := range decoded {
			if id, ok := v.(string); ok {
				ids = append(ids, id)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.index = map[string]struct{}{}
	s.addLocked(ids)
	return nil
}

// Has reports whether id has been seen.
func (s *Seen) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[id]
	return ok
}

// UnseenCount is the number of items whose id is not in the set.
func (s *Seen) UnseenCount(items []Item) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range items {
		if _, ok := s.index[it.ID]; !ok {
			n++
		}
	}
	return n
}

// MarkSeen unions the ids of items into the set and persists it. The
// in-memory set is updated even if the write fails.
func (s *Seen) MarkSeen(ctx context.Context, items []Item) error {
	s.mu.Lock()
	s.addLocked(IDs(items))
	snapshot := append([]string(nil), s.ids...)
	s.mu.Unlock()

	if snapshot == nil {
		snapshot = []string{}
	}
	if err := storage.SetJSON(ctx, s.kv, storage.KeySeenNotifications, snapshot); err != nil {
		return fmt.Errorf("persist seen notifications: %w", err)
	}
	return nil
}

func (s *Seen) addLocked(ids []string) {
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}
