package queue

import (
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/channel-gateway/internal/model"
)

const (
	DefaultExchange   = "gateway-exchange"
	DefaultQueue      = "gateway-ingest"
	DefaultRoutingKey = "ingest"
)

// Kind tells the consumer what to do with an envelope.
type Kind string

const (
	KindIngest    Kind = "ingest"
	KindReprocess Kind = "reprocess"
)

// Envelope is the unit carried over the broker.
type Envelope struct {
	Kind    Kind          `json:"kind"`
	Message model.Message `json:"message"`
}

// Topology names the exchange, queue and routing key.
type Topology struct {
	Exchange   string
	Queue      string
	RoutingKey string
}

func (t Topology) withDefaults() Topology {
	if t.Exchange == "" {
		t.Exchange = DefaultExchange
	}

	if t.Queue == "" {
		t.Queue = DefaultQueue
	}

	if t.RoutingKey == "" {
		t.RoutingKey = DefaultRoutingKey
	}

	return t
}

// MessageQueue carries normalized message records from event sources to workers.
type MessageQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewMessageQueue declares the exchange, the ingest queue and its dead-letter
// queue on ch and binds them.
func NewMessageQueue(ch *rabbitmq.Channel, t Topology) (*MessageQueue, error) {
	t = t.withDefaults()

	exchange := rabbitmq.NewExchange(t.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq := t.Queue + "-dlq"
	if _, err := qm.DeclareQueue(dlq, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(t.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": dlq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare ingest queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, t.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the ingest queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &MessageQueue{Publisher: pub, Consumer: cons, routingKey: t.RoutingKey}, nil
}

// Publish sends env to the ingest queue.
func (q *MessageQueue) Publish(env Envelope, strategy retry.Strategy) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes envelopes into out until the consumer stops.
// Undecodable deliveries are logged and skipped.
func (q *MessageQueue) Consume(out chan<- Envelope, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			env, err := Decode(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to decode envelope")
				continue
			}

			out <- env
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// Decode parses a delivery body. A bare message record without an envelope
// is accepted as an ingest.
func Decode(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}

	if env.Kind == "" && env.Message.ChannelID == "" {
		var msg model.Message
		if err := json.Unmarshal(body, &msg); err != nil {
			return Envelope{}, fmt.Errorf("unmarshal message: %w", err)
		}

		env = Envelope{Kind: KindIngest, Message: msg}
	}

	switch env.Kind {
	case "":
		env.Kind = KindIngest
	case KindIngest, KindReprocess:
	default:
		return Envelope{}, fmt.Errorf("unknown envelope kind %q", env.Kind)
	}

	return env, nil
}
