package state

import (
	"sync"
	"time"

	"github.com/lovelyplace-web/internal/domain"
)

// DefaultSeason - сезон черновика по умолчанию
const DefaultSeason = "été"

// Draft - черновые поля создания места, используемые модалкой расширенного фильтра
type Draft struct {
	Address    string `json:"address"`
	PriceRange string `json:"priceRange"`
	Season     string `json:"season"`
	Cuisine    string `json:"cuisine"`
}

// Snapshot - копия состояния сессии; изменение снимка не влияет на Store
type Snapshot struct {
	Items               []domain.Venue       `json:"items"`
	Loading             bool                 `json:"loading"`
	Loaded              bool                 `json:"loaded"`
	SelectedVenue       *domain.Venue        `json:"selectedVenue"`
	AdminLogin          bool                 `json:"adminLogin"`
	Category            domain.Category      `json:"category"`
	Filters             *domain.FilterBundle `json:"filterParams"`
	ActiveQuickFilterID int                  `json:"activeQuickFilterId,omitempty"`
	OpenPopupID         string               `json:"openPopupId,omitempty"`
	SearchQuery         string               `json:"searchQuery,omitempty"`
	Draft               Draft                `json:"draft"`
}

// Clone возвращает глубокую копию снимка
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Items != nil {
		out.Items = make([]domain.Venue, len(s.Items))
		for i, v := range s.Items {
			out.Items[i] = v.Clone()
		}
	}
	if s.SelectedVenue != nil {
		v := s.SelectedVenue.Clone()
		out.SelectedVenue = &v
	}
	out.Filters = s.Filters.Clone()
	return out
}

// Subscriber получает снимок после каждого изменения
type Subscriber func(Snapshot)

// Store - состояние одной сессии браузера. Безопасен для конкурентного доступа:
// запросы одной сессии могут выполняться параллельно.
type Store struct {
	mu          sync.Mutex
	state       Snapshot
	generation  uint64
	lastAccess  time.Time
	subscribers []Subscriber
	now         func() time.Time
}

// NewStore создает состояние по умолчанию: категория drink, без фильтров,
// без выбранного места, администратор не вошел
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.state = defaultState()
	s.lastAccess = s.now()
	return s
}

func defaultState() Snapshot {
	return Snapshot{
		Items:    []domain.Venue{},
		Category: domain.DefaultCategory,
		Draft:    Draft{Season: DefaultSeason},
	}
}

// Subscribe регистрирует подписчика. Подписчик вызывается вне блокировки.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot возвращает копию текущего состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = s.now()
	return s.state.Clone()
}

// LastAccess - время последнего обращения к состоянию
func (s *Store) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// Touch отмечает обращение без изменения состояния
func (s *Store) Touch() {
	s.mu.Lock()
	s.lastAccess = s.now()
	s.mu.Unlock()
}

// Apply атомарно изменяет состояние и уведомляет подписчиков
func (s *Store) Apply(fn func(*Snapshot)) Snapshot {
	s.mu.Lock()
	fn(&s.state)
	s.lastAccess = s.now()
	snap := s.state.Clone()
	subs := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
	return snap
}

func (s *Store) SetItems(items []domain.Venue) {
	s.Apply(func(st *Snapshot) {
		st.Items = items
		st.Loaded = true
	})
}

func (s *Store) SetLoading(loading bool) {
	s.Apply(func(st *Snapshot) { st.Loading = loading })
}

func (s *Store) SetSelectedVenue(v *domain.Venue) {
	s.Apply(func(st *Snapshot) { st.SelectedVenue = v })
}

func (s *Store) SetAdminLogin(admin bool) {
	s.Apply(func(st *Snapshot) { st.AdminLogin = admin })
}

func (s *Store) SetCategory(c domain.Category) {
	s.Apply(func(st *Snapshot) { st.Category = c })
}

func (s *Store) SetFilters(b *domain.FilterBundle) {
	s.Apply(func(st *Snapshot) { st.Filters = b.Clone() })
}

func (s *Store) SetDraft(d Draft) {
	s.Apply(func(st *Snapshot) { st.Draft = d })
}

func (s *Store) SetOpenPopup(id string) {
	s.Apply(func(st *Snapshot) { st.OpenPopupID = id })
}

func (s *Store) AdminLogin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AdminLogin
}

// BeginFetch выдает новое поколение запроса и включает флаг загрузки.
// Ответы с устаревшим поколением отбрасываются CommitItems.
func (s *Store) BeginFetch() uint64 {
	var gen uint64
	s.Apply(func(st *Snapshot) {
		s.generation++
		gen = s.generation
		st.Loading = true
	})
	return gen
}

// CommitItems записывает результат, только если gen - последнее выданное поколение
func (s *Store) CommitItems(gen uint64, items []domain.Venue) bool {
	applied := false
	s.mu.Lock()
	current := gen == s.generation
	s.mu.Unlock()
	if !current {
		return false
	}

	s.Apply(func(st *Snapshot) {
		if gen != s.generation {
			return
		}
		if items == nil {
			items = []domain.Venue{}
		}
		st.Items = items
		st.Loaded = true
		st.OpenPopupID = ""
		applied = true
	})
	return applied
}

// FinishFetch снимает флаг загрузки, если gen все еще последнее поколение.
// Вызывается и при успехе, и при ошибке.
func (s *Store) FinishFetch(gen uint64) {
	s.mu.Lock()
	current := gen == s.generation
	s.mu.Unlock()
	if !current {
		return
	}
	s.Apply(func(st *Snapshot) {
		if gen == s.generation {
			st.Loading = false
		}
	})
}

// Generation - последнее выданное поколение
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// UpdateSelectedVenue применяет fn к выбранному месту, если его id совпадает.
// Возвращает обновленное место или nil, если выбрано другое место.
func (s *Store) UpdateSelectedVenue(id string, fn func(domain.Venue) domain.Venue) *domain.Venue {
	var out *domain.Venue
	s.Apply(func(st *Snapshot) {
		if st.SelectedVenue == nil || st.SelectedVenue.ID != id {
			return
		}
		updated := fn(*st.SelectedVenue)
		st.SelectedVenue = &updated
		v := updated.Clone()
		out = &v
	})
	return out
}
