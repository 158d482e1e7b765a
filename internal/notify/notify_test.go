package notify

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/keygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_AddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	a := q.Add(Info, "a", "first")
	b := q.Add(Error, "b", "second")
	c := q.Add(Success, "c", "third")

	list := q.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, DefaultDuration, a.Duration)
}

func TestQueue_IDsUnique(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		n := q.Add(Info, "t", "m")
		require.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestQueue_RemoveUnknownIsNoop(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	q.Add(Info, "t", "m")
	assert.False(t, q.Remove("nope"))
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ExplicitDismiss(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	a := q.Add(Info, "a", "m")
	b := q.Add(Info, "b", "m")
	assert.True(t, q.Remove(a.ID))

	list := q.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestQueue_AutoExpiry(t *testing.T) {
	t.Parallel()
	q := NewQueue(WithTimeScale(0.005))
	defer q.Close()

	q.Add(Info, "short", "m")
	q.Add(Success, "long", "m", WithDuration(PurchaseDuration))

	// 4s * 0.005 = 20ms, 8s * 0.005 = 40ms
	assert.Eventually(t, func() bool { return q.Len() == 1 }, time.Second, 2*time.Millisecond)
	assert.Equal(t, "long", q.List()[0].Title)
	assert.Eventually(t, func() bool { return q.Len() == 0 }, time.Second, 2*time.Millisecond)
}

func TestQueue_CloseStopsTimers(t *testing.T) {
	t.Parallel()
	q := NewQueue(WithTimeScale(0.005))

	q.Add(Info, "t", "m")
	q.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_OnPushHook(t *testing.T) {
	t.Parallel()
	var (
		mu    sync.Mutex
		kinds []Type
	)
	q := NewQueue(OnPush(func(n Notification) {
		mu.Lock()
		kinds = append(kinds, n.Type)
		mu.Unlock()
	}))
	defer q.Close()

	q.LoginSuccess(i18n.EN)
	q.Error("x", "y")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Type{Success, Error}, kinds)
}

func TestQueue_PurchaseSuccess(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	key := q.PurchaseSuccess(i18n.EN, "Rockstar Beta")
	assert.True(t, keygen.ValidateFormat(key))

	list := q.List()
	require.Len(t, list, 1)
	n := list[0]
	assert.Equal(t, Success, n.Type)
	assert.Equal(t, key, n.AccessKey)
	assert.Equal(t, PurchaseDuration, n.Duration)
	assert.Contains(t, n.Message, "Rockstar Beta")
}

func TestQueue_ErrorsJoinsMessages(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	defer q.Close()

	n := q.Errors("bad", []string{"one", "two"})
	assert.Equal(t, Error, n.Type)
	assert.Equal(t, 2, len(strings.Split(n.Message, "\n")))
}

func TestNotification_JSONDurationInMillis(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(Notification{ID: "1", Type: Info, Duration: DefaultDuration})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(4000), got["duration"])
	_, hasKey := got["accessKey"]
	assert.False(t, hasKey)
}
