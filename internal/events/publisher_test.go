package events

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"

	"github.com/Lisbooa16/fut-analise/internal/logger"
)

func TestPublish_QueuesSerializedEvent(t *testing.T) {
	logger.Init()

	client, mock := redismock.NewClientMock()
	p := NewWithClient(client)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := Event{
		ID:         "evt-1",
		Type:       TypeBetSettled,
		BankrollID: 1,
		BetID:      7,
		Result:     "GREEN",
		Amount:     "10.00",
		Created:    created,
	}

	mock.ExpectLPush(queueKey, `{"id":"evt-1","type":"bet_settled","bankroll_id":1,"bet_id":7,"amount":"10.00","result":"GREEN","created":"2025-03-01T12:00:00Z"}`).
		SetVal(1)

	err := p.Publish(context.Background(), event)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_FillsIDAndTimestamp(t *testing.T) {
	logger.Init()

	client, mock := redismock.NewClientMock()
	p := NewWithClient(client)

	mock.Regexp().ExpectLPush(queueKey, `.+"type":"movement".+`).SetVal(1)

	err := p.Publish(context.Background(), Event{Type: TypeMovement, BankrollID: 2})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
