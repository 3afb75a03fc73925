package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pos/src/notifications/domain/port"
)

const lowStockQueue = "inventory.low_stock"

// RabbitMQNotifier publica alertas de stock bajo en una cola durable
// Los consumidores (panel de administración, reposición) quedan fuera de
// este servicio
type RabbitMQNotifier struct {
	conn *amqp.Connection
	chn  *amqp.Channel
}

// NewRabbitMQNotifier abre la conexión, el canal y declara la cola durable
func NewRabbitMQNotifier(url string) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening channel: %w", err)
	}

	_, err = chn.QueueDeclare(
		lowStockQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		chn.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring queue: %w", err)
	}

	return &RabbitMQNotifier{conn: conn, chn: chn}, nil
}

// Close cierra canal y conexión
func (n *RabbitMQNotifier) Close() error {
	if err := n.chn.Close(); err != nil {
		return err
	}
	return n.conn.Close()
}

// lowStockMessage payload publicado en la cola
type lowStockMessage struct {
	Products   []port.LowStockProduct `json:"products"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NotifyLowStock publica el mensaje persistente con los productos en zona
// de reposición
func (n *RabbitMQNotifier) NotifyLowStock(ctx context.Context, products []port.LowStockProduct) error {
	body, err := json.Marshal(lowStockMessage{
		Products:   products,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling notification: %w", err)
	}

	err = n.chn.PublishWithContext(
		ctx,
		"",            // exchange
		lowStockQueue, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("error publishing notification: %w", err)
	}

	return nil
}

// NoopNotifier implementación nula para cuando RabbitMQ no está configurado
type NoopNotifier struct{}

// NewNoopNotifier crea el notificador nulo
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// NotifyLowStock no hace nada
func (n *NoopNotifier) NotifyLowStock(ctx context.Context, products []port.LowStockProduct) error {
	return nil
}
