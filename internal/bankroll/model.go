package bankroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a balance movement.
type Direction string

const (
	DirectionIncrease Direction = "INCREASE"
	DirectionDecrease Direction = "DECREASE"
)

// Bankroll is the money pool bets are staked against. Balance only ever
// changes through ApplyMovement; InitialBalance is fixed at creation and
// used as the break-even reference.
type Bankroll struct {
	ID             int             `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Balance        decimal.Decimal `db:"balance" json:"balance"`
	InitialBalance decimal.Decimal `db:"initial_balance" json:"initial_balance"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Movement is one immutable entry in the bankroll audit trail. Rows are
// never updated or deleted.
type Movement struct {
	ID         int             `db:"id" json:"id"`
	BankrollID int             `db:"bankroll_id" json:"bankroll_id"`
	Direction  Direction       `db:"direction" json:"direction"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Note       string          `db:"note" json:"note"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
