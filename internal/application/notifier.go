package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/pkg/notify"
)

// Publisher puts a JSON message on the notification queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

const publishTimeout = 3 * time.Second

// publish hands msg to pub if there is one. Failures are logged and
// swallowed so a broker outage never fails the write that caused them.
func publish(pub Publisher, logger *logrus.Logger, msg notify.Message) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := pub.PublishJSON(ctx, msg); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"kind":    msg.Kind,
			"post_id": msg.PostID,
		}).Warn("notification publish failed")
	}
}
