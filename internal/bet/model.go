package bet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the bet lifecycle state. PENDING is the only non-terminal
// state; a settled bet never transitions again.
type Result string

const (
	ResultPending Result = "PENDING"
	ResultGreen   Result = "GREEN"
	ResultRed     Result = "RED"
)

type Bet struct {
	ID              int             `db:"id" json:"id"`
	BankrollID      int             `db:"bankroll_id" json:"bankroll_id"`
	MatchRef        string          `db:"match_ref" json:"match_ref"`
	Market          string          `db:"market" json:"market"`
	Odd             decimal.Decimal `db:"odd" json:"odd"`
	Stake           decimal.Decimal `db:"stake" json:"stake"`
	PotentialProfit decimal.Decimal `db:"potential_profit" json:"potential_profit"`
	Result          Result          `db:"result" json:"result"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// NetProfit is the amount credited to the bankroll when the bet wins:
// stake * odd minus the stake that was already debited at registration.
func (b *Bet) NetProfit() decimal.Decimal {
	return b.Stake.Mul(b.Odd).Sub(b.Stake)
}

// Totals aggregates settled bets for a bankroll: profit recovered from
// green bets and stake lost to red ones.
type Totals struct {
	TotalGreenProfit decimal.Decimal `db:"total_green_profit" json:"total_green_profit"`
	TotalRedStake    decimal.Decimal `db:"total_red_stake" json:"total_red_stake"`
}
