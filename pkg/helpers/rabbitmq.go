package helpers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpQueue is a connection and channel with one durable queue declared on
// it. Publisher and consumer both start from here so they agree on the
// queue's shape.
type amqpQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	name string
}

func dialQueue(url, queue string) (*amqpQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "amqp channel")
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrapf(err, "declare queue %s", queue)
	}
	return &amqpQueue{conn: conn, ch: ch, name: queue}, nil
}

func (q *amqpQueue) close() {
	_ = q.ch.Close()
	_ = q.conn.Close()
}

// RabbitPublisher sends JSON messages to a durable queue through the
// default exchange. A channel is not safe for concurrent publishes, so
// PublishJSON serializes them.
type RabbitPublisher struct {
	mu sync.Mutex
	q  *amqpQueue
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	q, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{q: q}, nil
}

func (p *RabbitPublisher) Close() {
	if p != nil && p.q != nil {
		p.q.close()
	}
}

func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode message")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.q.ch.PublishWithContext(ctx, "", p.q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
	return errors.Wrapf(err, "publish to %s", p.q.name)
}

// RabbitConsumer reads a durable queue with manual acks.
type RabbitConsumer struct {
	q *amqpQueue
}

// NewRabbitConsumer limits unacked deliveries in flight to prefetch.
func NewRabbitConsumer(url, queue string, prefetch int) (*RabbitConsumer, error) {
	q, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	if err := q.ch.Qos(prefetch, 0, false); err != nil {
		q.close()
		return nil, errors.Wrap(err, "amqp qos")
	}
	return &RabbitConsumer{q: q}, nil
}

// Deliveries starts consuming. The channel closes when the connection does.
func (c *RabbitConsumer) Deliveries() (<-chan amqp.Delivery, error) {
	msgs, err := c.q.ch.Consume(c.q.name, "", false, false, false, false, nil)
	return msgs, errors.Wrapf(err, "consume %s", c.q.name)
}

func (c *RabbitConsumer) Close() {
	if c != nil && c.q != nil {
		c.q.close()
	}
}
