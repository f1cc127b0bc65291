package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Lisbooa16/fut-analise/internal/logger"
)

const queueKey = "fut-analise:events"

const (
	TypeMovement      = "movement"
	TypeBetRegistered = "bet_registered"
	TypeBetSettled    = "bet_settled"
)

// Event is pushed to a redis list for the dashboard/notifier side of the
// system. Amounts travel as strings to keep decimal precision.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BankrollID int       `json:"bankroll_id"`
	BetID      int       `json:"bet_id,omitempty"`
	Direction  string    `json:"direction,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Result     string    `json:"result,omitempty"`
	Note       string    `json:"note,omitempty"`
	Created    time.Time `json:"created"`
}

type Publisher struct {
	redis *redis.Client
}

func New(redisAddr string) *Publisher {
	return &Publisher{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
	}
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client *redis.Client) *Publisher {
	return &Publisher{redis: client}
}

// Publish queues an event. Publishing is best-effort: callers log the
// returned error but never roll back ledger state because of it.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Created.IsZero() {
		event.Created = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("Failed to marshal event: %v", err)
		return err
	}

	if err := p.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue %s event: %v", event.Type, err)
		return err
	}

	logger.Debug("Event queued", "type", event.Type, "bankroll_id", event.BankrollID)
	return nil
}

func (p *Publisher) Close() error {
	return p.redis.Close()
}
