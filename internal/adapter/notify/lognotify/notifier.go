package lognotify

import (
	"context"

	"animochi/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Notifier is the log-backed stand-in for the outbound notification channel.
// The real UI refresh transport lives outside this core; here the contract is
// only that delivery is fire-and-forget.
type Notifier struct{}

func (Notifier) Notify(_ context.Context, n ports.Notification) {
	hlog.Infof("notify %s user=%s payload=%v", n.Kind, n.UserID, n.Payload)
}
