package state

import (
	"sync"
	"time"
)

// Registry хранит состояния сессий в памяти процесса
type Registry struct {
	mu          sync.Mutex
	stores      map[string]*Store
	subscribers []Subscriber
}

// NewRegistry - subscribers подключаются к каждому новому состоянию
func NewRegistry(subscribers ...Subscriber) *Registry {
	return &Registry{
		stores:      make(map[string]*Store),
		subscribers: subscribers,
	}
}

// Get возвращает состояние сессии, создавая его со значениями по умолчанию
func (r *Registry) Get(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[id]
	if !ok {
		s = NewStore()
		for _, fn := range r.subscribers {
			s.Subscribe(fn)
		}
		r.stores[id] = s
	}
	return s
}

// Delete удаляет состояние сессии
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.stores, id)
	r.mu.Unlock()
}

// Sweep удаляет сессии, к которым не обращались дольше ttl, и возвращает их число
func (r *Registry) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.stores {
		if s.LastAccess().Before(cutoff) {
			delete(r.stores, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
