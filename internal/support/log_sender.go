package support

import (
	"context"

	"github.com/Skotchmaster/rockstar_shop/internal/logging"
)

// LogSender records the message in the log instead of delivering it.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, f Form) error {
	logging.FromContext(ctx).Info("support_message",
		"name", f.Name,
		"email", f.Email,
		"length", len(f.Message),
	)
	return nil
}
