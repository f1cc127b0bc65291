package bankroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateBankroll(ctx context.Context, name string, initialBalance decimal.Decimal) (*Bankroll, error)
	GetBankroll(ctx context.Context, id int) (*Bankroll, error)
	ApplyMovement(ctx context.Context, bankrollID int, amount decimal.Decimal, direction Direction, note string) (*Movement, error)
	Deposit(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error)
	Withdraw(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error)
	GetMovements(ctx context.Context, bankrollID int, limit, offset int) ([]Movement, error)
}
