// Package events publica eventos de domínio em um broker AMQP (RabbitMQ).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/pkg/logger"
)

const routingKeyStatusChanged = "payables.installment.status_changed"

var _ payables.EventPublisher = (*AMQPPublisher)(nil)

// AMQPPublisher implementa payables.EventPublisher sobre RabbitMQ. Falha de
// publicação é logada e descartada: o caminho crítico da transição nunca
// depende do broker.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	log      *logger.Logger
}

// NewAMQPPublisher conecta ao broker e declara o exchange (topic, durável).
func NewAMQPPublisher(url, exchange string, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange, log: log}, nil
}

// PublishStatusChanged publica o evento de transição de parcela.
func (p *AMQPPublisher) PublishStatusChanged(ctx context.Context, event payables.StatusChangedEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Str("payable_id", event.PayableID).
			Msg("serializar evento de transição")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKeyStatusChanged,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error().Err(err).
			Str("payable_id", event.PayableID).
			Int("installment", event.InstallmentNumber).
			Msg("publicar evento de transição")
		return
	}

	p.log.Debug().
		Str("payable_id", event.PayableID).
		Int("installment", event.InstallmentNumber).
		Str("from", string(event.From)).
		Str("to", string(event.To)).
		Msg("evento de transição publicado")
}

// Close encerra canal e conexão.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher implementação nula para ambientes sem broker configurado.
type NoopPublisher struct{}

// PublishStatusChanged descarta o evento.
func (NoopPublisher) PublishStatusChanged(context.Context, payables.StatusChangedEvent) {}
