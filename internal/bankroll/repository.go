package bankroll

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Lisbooa16/fut-analise/internal/db"
)

var (
	ErrInvalidAmount     = errors.New("movement amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient bankroll balance")
	ErrBankrollNotFound  = errors.New("bankroll not found")
	ErrUnsavedBankroll   = errors.New("bankroll must be saved before registering movements")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBankroll(ctx context.Context, name string, initialBalance decimal.Decimal) (*Bankroll, error) {
	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var b Bankroll
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO bankrolls (name, balance, initial_balance)
		 VALUES ($1, $2, $2)
		 RETURNING id, name, balance, initial_balance, created_at, updated_at`,
		name, initialBalance,
	).StructScan(&b)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBankroll(ctx context.Context, id int) (*Bankroll, error) {
	var b Bankroll
	err := r.db.GetContext(ctx, &b,
		`SELECT id, name, balance, initial_balance, created_at, updated_at
		 FROM bankrolls
		 WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBankrollNotFound
		}
		return nil, err
	}

	return &b, nil
}

// ApplyMovement changes the balance and appends the matching audit row in
// one transaction. The balance is re-read under a row lock, never taken
// from a caller's snapshot, so two concurrent withdrawals cannot both pass
// the funds check.
func (r *repository) ApplyMovement(ctx context.Context, bankrollID int, amount decimal.Decimal, direction Direction, note string) (*Movement, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	movement, err := ApplyMovementTx(ctx, tx, bankrollID, amount, direction, note)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return movement, nil
}

// ApplyMovementTx is the movement core for callers that already hold a
// transaction (bet registration and settlement debit/credit the bankroll
// inside their own transaction scope). Both the balance update and the
// movement insert happen on tx; nothing is written if any step fails.
func ApplyMovementTx(ctx context.Context, tx *sqlx.Tx, bankrollID int, amount decimal.Decimal, direction Direction, note string) (*Movement, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if bankrollID == 0 {
		return nil, ErrUnsavedBankroll
	}

	var b Bankroll
	err := tx.QueryRowxContext(ctx,
		`SELECT id, name, balance, initial_balance, created_at, updated_at
		 FROM bankrolls
		 WHERE id = $1
		 FOR UPDATE`,
		bankrollID,
	).StructScan(&b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBankrollNotFound
		}
		return nil, err
	}

	if direction == DirectionDecrease && b.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	newBalance := b.Balance.Add(amount)
	if direction == DirectionDecrease {
		newBalance = b.Balance.Sub(amount)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bankrolls
		 SET balance = $1, updated_at = NOW()
		 WHERE id = $2`,
		newBalance, b.ID,
	)
	if err != nil {
		return nil, err
	}

	var m Movement
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO bankroll_movements (bankroll_id, direction, amount, note)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, bankroll_id, direction, amount, note, created_at`,
		b.ID, direction, amount, note,
	).StructScan(&m)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Deposit(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error) {
	return r.ApplyMovement(ctx, bankrollID, amount, DirectionIncrease, note)
}

func (r *repository) Withdraw(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error) {
	return r.ApplyMovement(ctx, bankrollID, amount, DirectionDecrease, note)
}

func (r *repository) GetMovements(ctx context.Context, bankrollID int, limit, offset int) ([]Movement, error) {
	if limit <= 0 {
		limit = 50
	}

	// An unknown bankroll and an empty history look the same in the
	// movements table; tell them apart so the API can 404.
	exists, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM bankrolls WHERE id = $1)`, bankrollID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBankrollNotFound
	}

	var movements []Movement
	err = r.db.SelectContext(ctx, &movements, `
		SELECT id, bankroll_id, direction, amount, note, created_at
		FROM bankroll_movements
		WHERE bankroll_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, bankrollID, limit, offset)
	if err != nil {
		return nil, err
	}

	return movements, nil
}
