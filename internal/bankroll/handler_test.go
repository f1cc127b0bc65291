package bankroll

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBankrollRepo struct{ mock.Mock }

func (m *MockBankrollRepo) CreateBankroll(ctx context.Context, name string, initialBalance decimal.Decimal) (*Bankroll, error) {
	args := m.Called(ctx, name, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bankroll), args.Error(1)
}

func (m *MockBankrollRepo) GetBankroll(ctx context.Context, id int) (*Bankroll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bankroll), args.Error(1)
}

func (m *MockBankrollRepo) ApplyMovement(ctx context.Context, bankrollID int, amount decimal.Decimal, direction Direction, note string) (*Movement, error) {
	args := m.Called(ctx, bankrollID, amount, direction, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Movement), args.Error(1)
}

func (m *MockBankrollRepo) Deposit(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error) {
	args := m.Called(ctx, bankrollID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Movement), args.Error(1)
}

func (m *MockBankrollRepo) Withdraw(ctx context.Context, bankrollID int, amount decimal.Decimal, note string) (*Movement, error) {
	args := m.Called(ctx, bankrollID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Movement), args.Error(1)
}

func (m *MockBankrollRepo) GetMovements(ctx context.Context, bankrollID int, limit, offset int) ([]Movement, error) {
	args := m.Called(ctx, bankrollID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Movement), args.Error(1)
}

func setupHandlerTest(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{repo: repo}

	router := gin.New()
	router.POST("/bankrolls", h.CreateBankroll)
	router.GET("/bankrolls/:bankrollID", h.GetBankroll)
	router.POST("/bankrolls/:bankrollID/deposit", h.Deposit)
	router.POST("/bankrolls/:bankrollID/withdraw", h.Withdraw)
	router.GET("/bankrolls/:bankrollID/movements", h.ListMovements)
	return router
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBankrollHandler(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	created := &Bankroll{
		ID:             1,
		Name:           "Main Bankroll",
		Balance:        decimal.NewFromInt(100),
		InitialBalance: decimal.NewFromInt(100),
	}
	repo.On("CreateBankroll", mock.Anything, "Main Bankroll", mock.Anything).Return(created, nil)

	w := performRequest(router, "POST", "/bankrolls", gin.H{
		"name":            "Main Bankroll",
		"initial_balance": "100.00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Bankroll
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(100)))
}

func TestCreateBankrollHandler_MissingFields(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	w := performRequest(router, "POST", "/bankrolls", gin.H{"name": "No balance"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "CreateBankroll")
}

func TestCreateBankrollHandler_CommaDecimal(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	created := &Bankroll{ID: 2, Name: "BRL", Balance: decimal.RequireFromString("150.50"), InitialBalance: decimal.RequireFromString("150.50")}
	repo.On("CreateBankroll", mock.Anything, "BRL", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("150.50"))
	})).Return(created, nil)

	w := performRequest(router, "POST", "/bankrolls", gin.H{
		"name":            "BRL",
		"initial_balance": "150,50",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestGetBankrollHandler_NotFound(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	repo.On("GetBankroll", mock.Anything, 99).Return(nil, ErrBankrollNotFound)

	w := performRequest(router, "GET", "/bankrolls/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBankrollHandler_InvalidID(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	w := performRequest(router, "GET", "/bankrolls/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositHandler(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	movement := &Movement{ID: 5, BankrollID: 1, Direction: DirectionIncrease, Amount: decimal.NewFromInt(25), Note: "Manual deposit"}
	repo.On("ApplyMovement", mock.Anything, 1, mock.Anything, DirectionIncrease, "Manual deposit").Return(movement, nil)
	repo.On("GetBankroll", mock.Anything, 1).Return(&Bankroll{ID: 1, Balance: decimal.NewFromInt(125)}, nil)

	w := performRequest(router, "POST", "/bankrolls/1/deposit", gin.H{"amount": "25.00"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Movement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, DirectionIncrease, resp.Direction)
}

func TestWithdrawHandler_InsufficientFunds(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	repo.On("ApplyMovement", mock.Anything, 1, mock.Anything, DirectionDecrease, "Manual withdrawal").Return(nil, ErrInsufficientFunds)
	repo.On("GetBankroll", mock.Anything, 1).Return(&Bankroll{ID: 1, Balance: decimal.NewFromInt(10)}, nil)

	w := performRequest(router, "POST", "/bankrolls/1/withdraw", gin.H{"amount": "200.00"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient bankroll balance")
	assert.Contains(t, w.Body.String(), "balance")
}

func TestWithdrawHandler_CustomNote(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	movement := &Movement{ID: 6, BankrollID: 1, Direction: DirectionDecrease, Amount: decimal.NewFromInt(10), Note: "Cashout"}
	repo.On("ApplyMovement", mock.Anything, 1, mock.Anything, DirectionDecrease, "Cashout").Return(movement, nil)
	repo.On("GetBankroll", mock.Anything, 1).Return(&Bankroll{ID: 1, Balance: decimal.NewFromInt(90)}, nil)

	w := performRequest(router, "POST", "/bankrolls/1/withdraw", gin.H{"amount": "10.00", "note": "Cashout"})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestDepositHandler_InvalidAmount(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	w := performRequest(router, "POST", "/bankrolls/1/deposit", gin.H{"amount": "abc"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "ApplyMovement")
}

func TestListMovementsHandler(t *testing.T) {
	repo := new(MockBankrollRepo)
	router := setupHandlerTest(repo)

	movements := []Movement{
		{ID: 2, BankrollID: 1, Direction: DirectionDecrease, Amount: decimal.NewFromInt(10)},
		{ID: 1, BankrollID: 1, Direction: DirectionIncrease, Amount: decimal.NewFromInt(25)},
	}
	repo.On("GetMovements", mock.Anything, 1, 50, 0).Return(movements, nil)

	w := performRequest(router, "GET", "/bankrolls/1/movements", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []Movement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
