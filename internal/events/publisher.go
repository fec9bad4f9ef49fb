// Package events публикует события об участниках в RabbitMQ.
// Сейчас публикуется одно событие — member.registered, на которое
// может подписаться, например, рассылка приветственных писем.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// RoutingKeyRegistered — ключ маршрутизации события регистрации.
const RoutingKeyRegistered = "member.registered"

// MemberRegistered — тело события регистрации. Платёжные данные, кроме email, не передаются.
type MemberRegistered struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Tier      int    `json:"tier"`
	TierLabel string `json:"tier_label"`
	Email     string `json:"email"`
}

// NewMemberRegistered собирает событие из участника.
func NewMemberRegistered(u models.User) MemberRegistered {
	return MemberRegistered{
		Name:      u.Name,
		Username:  u.Username,
		Tier:      int(u.SubscriptionType),
		TierLabel: u.SubscriptionType.Label(),
		Email:     u.Billing.Email,
	}
}

// Channel — часть *amqp.Channel, нужная издателю.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события в direct-exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
}

// Connect подключается к RabbitMQ, повторяя попытку retries раз с паузой delay.
func Connect(ctx context.Context, url string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "events.Connect"
	var conn *amqp.Connection
	var err error

	attempts := max(retries, 1)
	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// NewPublisher открывает канал и объявляет exchange.
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	const op = "events.NewPublisher"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// PublishRegistered публикует событие member.registered.
func (p *Publisher) PublishRegistered(_ context.Context, u models.User) error {
	return publishMessage(p.ch, p.exchange, RoutingKeyRegistered, NewMemberRegistered(u))
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	const op = "events.Close"
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

func publishMessage(ch Channel, exchange, routingKey string, message any) error {
	const op = "events.publishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
