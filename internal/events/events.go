// Package events publishes storefront domain events. Delivery is best
// effort: a failed publish is logged and never fails the user action.
package events

import (
	"context"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/logging"
)

const (
	TopicUser    = "user_events"
	TopicOrder   = "order_events"
	TopicSupport = "support_events"
)

const (
	UserRegistered   = "user_registered"
	UserLoggedIn     = "user_logged_in"
	UserLoggedOut    = "user_logged_out"
	ProductPurchased = "product_purchased"
	KeyRedeemed      = "key_redeemed"
	SupportSubmitted = "support_submitted"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }

// Emit stamps event with its name and time and publishes it on topic.
func Emit(ctx context.Context, p Publisher, topic, key, name string, event map[string]any) {
	if p == nil {
		return
	}
	if event == nil {
		event = make(map[string]any, 2)
	}
	event["event"] = name
	event["at"] = time.Now().UTC().Format(time.RFC3339)

	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed",
			"topic", topic,
			"event", name,
			logging.Err(err),
		)
	}
}
