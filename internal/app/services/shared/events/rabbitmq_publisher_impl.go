package events

import (
	"context"
	"sync"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewRabbitMQPublisher opens a channel and declares the durable mutation queue.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.MutationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:        ch,
		queueName: queueName,
		log:       logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishMutation(ctx context.Context, event contracts.MutationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("rabbitMQPublisher.PublishMutation published event",
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String("kind", event.Kind),
	)
	return nil
}
