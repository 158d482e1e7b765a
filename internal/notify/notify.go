package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/keygen"
)

type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Info    Type = "info"
)

const (
	DefaultDuration  = 4 * time.Second
	PurchaseDuration = 8 * time.Second
)

type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	AccessKey string
	Duration  time.Duration
	CreatedAt time.Time
}

func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string    `json:"id"`
		Type      Type      `json:"type"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		AccessKey string    `json:"accessKey,omitempty"`
		Duration  int64     `json:"duration"`
		CreatedAt time.Time `json:"createdAt"`
	}{n.ID, n.Type, n.Title, n.Message, n.AccessKey, n.Duration.Milliseconds(), n.CreatedAt})
}

type Option func(*Notification)

func WithAccessKey(key string) Option {
	return func(n *Notification) { n.AccessKey = key }
}

func WithDuration(d time.Duration) Option {
	return func(n *Notification) {
		if d > 0 {
			n.Duration = d
		}
	}
}

// Queue holds active notifications oldest first. Each entry is removed by its
// own one-shot timer or by an explicit Remove, whichever comes first.
type Queue struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	closed bool
	seq    atomic.Uint64

	// scale shrinks every timer; tests use it to avoid real 4s waits.
	scale  float64
	onPush func(Notification)
}

type QueueOption func(*Queue)

// WithTimeScale multiplies every expiry deadline by f.
func WithTimeScale(f float64) QueueOption {
	return func(q *Queue) {
		if f > 0 {
			q.scale = f
		}
	}
}

// OnPush registers a hook called after every Add.
func OnPush(fn func(Notification)) QueueOption {
	return func(q *Queue) { q.onPush = fn }
}

func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		timers: make(map[string]*time.Timer),
		scale:  1,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) nextID(now time.Time) string {
	return fmt.Sprintf("%d-%d", now.UnixNano(), q.seq.Add(1))
}

func (q *Queue) Add(t Type, title, message string, opts ...Option) Notification {
	now := time.Now().UTC()
	n := Notification{
		ID:        q.nextID(now),
		Type:      t,
		Title:     title,
		Message:   message,
		Duration:  DefaultDuration,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(&n)
	}

	q.mu.Lock()
	q.items = append(q.items, n)
	if !q.closed {
		id := n.ID
		deadline := time.Duration(float64(n.Duration) * q.scale)
		q.timers[id] = time.AfterFunc(deadline, func() { q.expire(id) })
	}
	q.mu.Unlock()

	if q.onPush != nil {
		q.onPush(n)
	}
	return n
}

func (q *Queue) expire(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.timers, id)
	q.removeLocked(id)
}

// Remove dismisses id before its timer fires. Unknown ids are a no-op.
func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	return q.removeLocked(id)
}

func (q *Queue) removeLocked(id string) bool {
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops pending timers. Entries already queued stay readable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.closed = true
}

func (q *Queue) LoginSuccess(lang i18n.Language) Notification {
	return q.Add(Success, i18n.T(lang, i18n.NotifyLoginTitle), i18n.T(lang, i18n.NotifyLoginMessage))
}

func (q *Queue) RegisterSuccess(lang i18n.Language) Notification {
	return q.Add(Success, i18n.T(lang, i18n.NotifyRegisterTitle), i18n.T(lang, i18n.NotifyRegisterMessage))
}

func (q *Queue) LogoutSuccess(lang i18n.Language) Notification {
	return q.Add(Success, i18n.T(lang, i18n.NotifyLogoutTitle), i18n.T(lang, i18n.NotifyLogoutMessage))
}

func (q *Queue) Error(title, message string) Notification {
	return q.Add(Error, title, message)
}

// Errors lists every message in one notification, one per line.
func (q *Queue) Errors(title string, messages []string) Notification {
	return q.Add(Error, title, strings.Join(messages, "\n"))
}

// PurchaseSuccess issues a fresh access key, shows it for PurchaseDuration and
// hands it back so the caller can store the same key on the purchase record.
func (q *Queue) PurchaseSuccess(lang i18n.Language, productTitle string) string {
	key := keygen.Generate()
	q.PurchaseIssued(lang, productTitle, key)
	return key
}

// PurchaseIssued shows an already stored key for PurchaseDuration.
func (q *Queue) PurchaseIssued(lang i18n.Language, productTitle, key string) {
	q.Add(Success,
		i18n.T(lang, i18n.NotifyPurchaseTitle),
		fmt.Sprintf(i18n.T(lang, i18n.NotifyPurchaseMessage), productTitle),
		WithAccessKey(key),
		WithDuration(PurchaseDuration),
	)
}
