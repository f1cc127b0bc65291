package bet

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Register(ctx context.Context, b *Bet) (*Bet, error)
	Settle(ctx context.Context, betID int, isWinner bool) (*Bet, error)
	GetBetByID(ctx context.Context, id int) (*Bet, error)
	GetBets(ctx context.Context, bankrollID int, result Result, limit, offset int) ([]Bet, error)
	GetTotals(ctx context.Context, bankrollID int) (*Totals, error)
	GetAverageGreenProfit(ctx context.Context, bankrollID int) (decimal.Decimal, error)
}
