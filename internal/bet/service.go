package bet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Lisbooa16/fut-analise/internal/events"
	"github.com/Lisbooa16/fut-analise/internal/metrics"
)

var (
	ErrInvalidStake = errors.New("stake must be greater than zero")
	ErrInvalidOdd   = errors.New("odd must be greater than one")
)

type Service interface {
	PlaceBet(ctx context.Context, bankrollID int, matchRef, market string, odd, stake decimal.Decimal) (*Bet, error)
	SettleBet(ctx context.Context, betID int, isWinner bool) (*Bet, error)
	GetBet(ctx context.Context, betID int) (*Bet, error)
	GetBets(ctx context.Context, bankrollID int, result Result, limit, offset int) ([]Bet, error)
	GetTotals(ctx context.Context, bankrollID int) (*Totals, error)
}

type service struct {
	repo      Repository
	publisher *events.Publisher
}

func NewService(repo Repository, publisher *events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *service) PlaceBet(ctx context.Context, bankrollID int, matchRef, market string, odd, stake decimal.Decimal) (*Bet, error) {
	if !stake.IsPositive() {
		return nil, ErrInvalidStake
	}

	if odd.LessThanOrEqual(decimal.NewFromInt(1)) {
		return nil, ErrInvalidOdd
	}

	b := &Bet{
		BankrollID: bankrollID,
		MatchRef:   matchRef,
		Market:     market,
		Odd:        odd,
		Stake:      stake,
	}

	created, err := s.repo.Register(ctx, b)
	if err != nil {
		return nil, err
	}

	metrics.RecordBetRegistered()
	metrics.RecordMovement("DECREASE")
	s.publish(ctx, events.Event{
		Type:       events.TypeBetRegistered,
		BankrollID: created.BankrollID,
		BetID:      created.ID,
		Amount:     created.Stake.String(),
		Note:       created.Market,
	})

	return created, nil
}

func (s *service) SettleBet(ctx context.Context, betID int, isWinner bool) (*Bet, error) {
	settled, err := s.repo.Settle(ctx, betID, isWinner)
	if err != nil {
		if errors.Is(err, ErrAlreadySettled) {
			metrics.RecordRejectedSettlement()
		}
		return nil, err
	}

	metrics.RecordSettlement(string(settled.Result))
	if settled.Result == ResultGreen {
		// The credit movement written alongside the result flip.
		metrics.RecordMovement("INCREASE")
	}

	event := events.Event{
		Type:       events.TypeBetSettled,
		BankrollID: settled.BankrollID,
		BetID:      settled.ID,
		Result:     string(settled.Result),
	}
	if settled.Result == ResultGreen {
		event.Amount = settled.PotentialProfit.String()
	}
	s.publish(ctx, event)

	return settled, nil
}

func (s *service) GetBet(ctx context.Context, betID int) (*Bet, error) {
	return s.repo.GetBetByID(ctx, betID)
}

func (s *service) GetBets(ctx context.Context, bankrollID int, result Result, limit, offset int) ([]Bet, error) {
	return s.repo.GetBets(ctx, bankrollID, result, limit, offset)
}

func (s *service) GetTotals(ctx context.Context, bankrollID int) (*Totals, error) {
	return s.repo.GetTotals(ctx, bankrollID)
}

func (s *service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, event)
}
