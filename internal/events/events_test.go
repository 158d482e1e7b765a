package events

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	topic, key string
	event      any
	err        error
}

func (r *recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.topic, r.key, r.event = topic, key, event
	return r.err
}

func TestEmit_StampsEvent(t *testing.T) {
	t.Parallel()
	rec := &recorder{}

	Emit(context.Background(), rec, TopicUser, "dev-1", UserRegistered, map[string]any{"userID": "u1"})

	assert.Equal(t, TopicUser, rec.topic)
	assert.Equal(t, "dev-1", rec.key)
	ev, ok := rec.event.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, UserRegistered, ev["event"])
	assert.Equal(t, "u1", ev["userID"])
	assert.NotEmpty(t, ev["at"])
}

func TestEmit_FailureIsLogged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "debug"))

	Emit(ctx, &recorder{err: errors.New("broker down")}, TopicOrder, "k", ProductPurchased, nil)

	assert.Contains(t, buf.String(), "event_publish_failed")
	assert.Contains(t, buf.String(), "broker down")
}

func TestEmit_NilAndNopPublishers(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, TopicUser, "k", UserLoggedOut, nil)
		Emit(context.Background(), Nop{}, TopicUser, "k", UserLoggedOut, nil)
	})
}
