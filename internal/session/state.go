// Package session holds the per-device application state: who is signed in,
// which overlays are open, what is being ordered and in which language.
// Every mutator runs to completion under the state's mutex.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/metrics"
	"github.com/Skotchmaster/rockstar_shop/internal/models"
	"github.com/Skotchmaster/rockstar_shop/internal/notify"
	"github.com/Skotchmaster/rockstar_shop/internal/repo"
)

const (
	ThemeOld = "old"
	ThemeNew = "new"
)

// Deps wires a State. Latency is the simulated network delay applied to
// register, login, purchase and key redemption.
type Deps struct {
	DeviceID      string
	Store         *repo.RecordStore
	Notifications *notify.Queue
	Events        events.Publisher
	Metrics       *metrics.Metrics
	Latency       time.Duration
	Now           func() time.Time
}

type Overlays struct {
	Auth           bool `json:"auth"`
	Support        bool `json:"support"`
	Order          bool `json:"order"`
	Profile        bool `json:"profile"`
	ProductDetails bool `json:"productDetails"`
	MobileNav      bool `json:"mobileNav"`
}

// Origin is the screen point a details overlay animates from.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type State struct {
	mu sync.Mutex

	deviceID string
	store    *repo.RecordStore
	queue    *notify.Queue
	events   events.Publisher
	metrics  *metrics.Metrics
	latency  time.Duration
	now      func() time.Time
	done     chan struct{}
	closed   bool

	user             *models.User
	lang             i18n.Language
	theme            string
	savedEmail       string
	overlays         Overlays
	selectedProduct  *catalog.Product
	selectedPurchase *models.PurchasedProduct
	detailsOrigin    *Origin
}

// New restores the device's session pointer and preferences from storage.
func New(ctx context.Context, d Deps) (*State, error) {
	s := &State{
		deviceID: d.DeviceID,
		store:    d.Store,
		queue:    d.Notifications,
		events:   d.Events,
		metrics:  d.Metrics,
		latency:  d.Latency,
		now:      d.Now,
		done:     make(chan struct{}),
		lang:     i18n.Default,
		theme:    ThemeNew,
	}
	if s.queue == nil {
		s.queue = notify.NewQueue()
	}
	if s.events == nil {
		s.events = events.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}

	user, err := s.store.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	s.user = user

	raw, err := s.store.Language(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore language: %w", err)
	}
	if lang, ok := i18n.ParseLanguage(raw); ok {
		s.lang = lang
	}

	theme, err := s.store.Theme(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore theme: %w", err)
	}
	if theme == ThemeOld || theme == ThemeNew {
		s.theme = theme
	}

	if s.savedEmail, err = s.store.SavedEmail(ctx); err != nil {
		return nil, fmt.Errorf("restore saved email: %w", err)
	}
	return s, nil
}

func (s *State) DeviceID() string { return s.deviceID }

func (s *State) logger(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx).With("component", "session", "device", s.deviceID)
}

func (s *State) clock() time.Time { return s.now().UTC() }

// wait models a pending network call. It returns early when ctx is done or
// the state is closed.
func (s *State) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrClosed
	}
}

// Close stops pending notification timers and aborts in-flight delays.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	s.queue.Close()
}

// CurrentUser returns a copy of the signed-in user without the password hash.
func (s *State) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return publicUser(s.user)
}

func publicUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	out := u.Clone()
	out.Password = ""
	return &out
}

func (s *State) Notifications() []notify.Notification { return s.queue.List() }

// DismissNotification removes id ahead of its timer.
func (s *State) DismissNotification(id string) bool { return s.queue.Remove(id) }

func (s *State) Overlays() Overlays {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlays
}

func (s *State) SelectedProduct() *catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedProduct == nil {
		return nil
	}
	p := *s.selectedProduct
	return &p
}

func (s *State) SelectedPurchase() *models.PurchasedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedPurchase == nil {
		return nil
	}
	p := s.selectedPurchase.Clone()
	return &p
}

func (s *State) DetailsOrigin() *Origin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detailsOrigin == nil {
		return nil
	}
	o := *s.detailsOrigin
	return &o
}

func (s *State) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *State) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SavedEmail is the last email used to sign in, for form prefill.
func (s *State) SavedEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedEmail
}

// T resolves key in the current language, falling back to the key itself.
func (s *State) T(key string) string {
	return i18n.Lookup(s.Language(), key)
}

type Snapshot struct {
	CurrentUser      *models.User             `json:"currentUser"`
	Language         i18n.Language            `json:"language"`
	Theme            string                   `json:"theme"`
	SavedEmail       string                   `json:"savedEmail,omitempty"`
	Overlays         Overlays                 `json:"overlays"`
	SelectedProduct  *catalog.Product         `json:"selectedProduct,omitempty"`
	SelectedPurchase *models.PurchasedProduct `json:"selectedPurchase,omitempty"`
	DetailsOrigin    *Origin                  `json:"detailsOrigin,omitempty"`
	Notifications    []notify.Notification    `json:"notifications"`
}

// Snapshot reads everything the presentation layer renders in one pass.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		CurrentUser: publicUser(s.user),
		Language:    s.lang,
		Theme:       s.theme,
		SavedEmail:  s.savedEmail,
		Overlays:    s.overlays,
	}
	if s.selectedProduct != nil {
		p := *s.selectedProduct
		snap.SelectedProduct = &p
	}
	if s.selectedPurchase != nil {
		p := s.selectedPurchase.Clone()
		snap.SelectedPurchase = &p
	}
	if s.detailsOrigin != nil {
		o := *s.detailsOrigin
		snap.DetailsOrigin = &o
	}
	s.mu.Unlock()

	snap.Notifications = s.queue.List()
	return snap
}
