package bet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Lisbooa16/fut-analise/internal/bankroll"
)

var (
	ErrBetNotFound    = errors.New("bet not found")
	ErrAlreadySettled = errors.New("bet has already been settled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Register debits the stake and persists the bet in one transaction. If
// the bankroll has insufficient balance the whole registration rolls
// back: no movement row, no orphan bet.
func (r *repository) Register(ctx context.Context, b *Bet) (*Bet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	note := fmt.Sprintf("Bet on %s (%s)", b.MatchRef, b.Market)
	if _, err := bankroll.ApplyMovementTx(ctx, tx, b.BankrollID, b.Stake, bankroll.DirectionDecrease, note); err != nil {
		return nil, err
	}

	var created Bet
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO bets (bankroll_id, match_ref, market, odd, stake, potential_profit, result)
		 VALUES ($1, $2, $3, $4, $5, $6, 'PENDING')
		 RETURNING id, bankroll_id, match_ref, market, odd, stake, potential_profit, result, created_at`,
		b.BankrollID, b.MatchRef, b.Market, b.Odd, b.Stake, b.NetProfit(),
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

// Settle resolves the bet exactly once. The bet row is locked and its
// result re-read under the lock, so a concurrent or repeated settlement
// sees a non-PENDING result and fails with ErrAlreadySettled instead of
// crediting the bankroll twice. The result flip commits together with
// the credit movement.
func (r *repository) Settle(ctx context.Context, betID int, isWinner bool) (*Bet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var b Bet
	err = tx.QueryRowxContext(ctx,
		`SELECT id, bankroll_id, match_ref, market, odd, stake, potential_profit, result, created_at
		 FROM bets
		 WHERE id = $1
		 FOR UPDATE`,
		betID,
	).StructScan(&b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, err
	}

	if b.Result != ResultPending {
		return nil, ErrAlreadySettled
	}

	newResult := ResultRed
	if isWinner {
		newResult = ResultGreen

		profit := b.PotentialProfit
		if !profit.IsPositive() {
			profit = b.NetProfit()
		}

		note := fmt.Sprintf("Green: %s (%s)", b.MatchRef, b.Market)
		if _, err := bankroll.ApplyMovementTx(ctx, tx, b.BankrollID, profit, bankroll.DirectionIncrease, note); err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bets SET result = $1 WHERE id = $2`,
		newResult, b.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.Result = newResult
	return &b, nil
}

func (r *repository) GetBetByID(ctx context.Context, id int) (*Bet, error) {
	var b Bet
	err := r.db.GetContext(ctx, &b,
		`SELECT id, bankroll_id, match_ref, market, odd, stake, potential_profit, result, created_at
		 FROM bets
		 WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBets(ctx context.Context, bankrollID int, result Result, limit, offset int) ([]Bet, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, bankroll_id, match_ref, market, odd, stake, potential_profit, result, created_at
		FROM bets
		WHERE bankroll_id = $1
	`
	args := []interface{}{bankrollID}

	if result != "" {
		query += ` AND result = $2`
		args = append(args, result)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var bets []Bet
	err := r.db.SelectContext(ctx, &bets, query, args...)
	if err != nil {
		return nil, err
	}

	return bets, nil
}

// GetAverageGreenProfit averages the credited profit over every green
// bet of the bankroll. Zero means no greens yet.
func (r *repository) GetAverageGreenProfit(ctx context.Context, bankrollID int) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.db.GetContext(ctx, &avg, `
		SELECT COALESCE(AVG(potential_profit), 0)
		FROM bets
		WHERE bankroll_id = $1 AND result = 'GREEN'
	`, bankrollID)
	if err != nil {
		return decimal.Zero, err
	}

	return avg, nil
}

func (r *repository) GetTotals(ctx context.Context, bankrollID int) (*Totals, error) {
	var t Totals
	err := r.db.GetContext(ctx, &t, `
		SELECT
			COALESCE(SUM(potential_profit) FILTER (WHERE result = 'GREEN'), 0) AS total_green_profit,
			COALESCE(SUM(stake) FILTER (WHERE result = 'RED'), 0) AS total_red_stake
		FROM bets
		WHERE bankroll_id = $1
	`, bankrollID)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
