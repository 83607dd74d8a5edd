package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/config"
	"github.com/oksasatya/gudimart-store/pkg/helpers"
	"github.com/oksasatya/gudimart-store/pkg/notify"
)

const prefetch = 16

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if !cfg.NotifyEnabled {
		log.Println("NOTIFY_ENABLED=false; notify worker disabled")
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env, cfg.LogLevel)

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue, prefetch)
	if err != nil {
		logger.WithError(err).Fatal("connect to rabbitmq")
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries()
	if err != nil {
		logger.WithError(err).Fatal("start consuming")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for d := range msgs {
			if err := handle(logger, d.Body); err != nil {
				logger.WithError(err).WithField("message_id", d.MessageId).Warn("dropping notification")
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}()

	logger.Infof("notify worker listening on queue=%s", cfg.RabbitMQNotifyQueue)
	<-stop
	logger.Info("shutting down...")
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// handle logs one content notification. Malformed bodies are rejected so
// the broker does not redeliver them forever.
func handle(logger logrus.FieldLogger, body []byte) error {
	var msg notify.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return errors.Wrap(err, "decode notification")
	}
	entry := logger.WithFields(logrus.Fields{
		"kind":     msg.Kind,
		"event_id": msg.EventID,
		"post_id":  msg.PostID,
		"actor_id": msg.ActorID,
		"status":   msg.Status,
		"at":       msg.At,
	})
	switch msg.Kind {
	case notify.PostStatusChanged:
		entry.WithField("prev_status", msg.PrevStatus).Infof("post %q moved to %s", msg.Title, msg.Status)
	case notify.ApprovalRecorded:
		entry.WithField("approval_id", msg.ApprovalID).Infof("post %q %s by reviewer", msg.Title, msg.Status)
	default:
		return errors.Errorf("unknown notification kind %q", msg.Kind)
	}
	return nil
}
