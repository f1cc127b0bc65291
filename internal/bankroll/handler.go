package bankroll

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Lisbooa16/fut-analise/internal/events"
	"github.com/Lisbooa16/fut-analise/internal/logger"
	"github.com/Lisbooa16/fut-analise/internal/metrics"
	"github.com/Lisbooa16/fut-analise/internal/money"
)

type Handler struct {
	repo      Repository
	publisher *events.Publisher
}

func NewHandler(db *sqlx.DB, publisher *events.Publisher) *Handler {
	return &Handler{
		repo:      NewRepository(db),
		publisher: publisher,
	}
}

type CreateBankrollRequest struct {
	Name           string `json:"name" binding:"required"`
	InitialBalance string `json:"initial_balance" binding:"required" example:"100.00"`
}

type MovementRequest struct {
	Amount string `json:"amount" binding:"required" example:"25.50"`
	Note   string `json:"note"`
}

// CreateBankroll godoc
// @Summary      Create bankroll
// @Description  Creates a bankroll with balance set to the initial balance.
// @Tags         bankrolls
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBankrollRequest  true  "Bankroll"
// @Success      201      {object}  Bankroll
// @Failure      400      {object}  api.ErrorResponse
// @Router       /bankrolls [post]
func (h *Handler) CreateBankroll(c *gin.Context) {
	var req CreateBankrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	initial, err := money.Parse(req.InitialBalance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid initial balance"})
		return
	}

	b, err := h.repo.CreateBankroll(c.Request.Context(), req.Name, initial)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initial balance cannot be negative"})
			return
		}
		logger.Errorf("Failed to create bankroll: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create bankroll"})
		return
	}

	balance, _ := b.Balance.Float64()
	metrics.SetBankrollBalance(strconv.Itoa(b.ID), balance)

	c.JSON(http.StatusCreated, b)
}

// GetBankroll godoc
// @Summary      Get bankroll
// @Tags         bankrolls
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID  path      int  true  "Bankroll ID"
// @Success      200         {object}  Bankroll
// @Failure      404         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID} [get]
func (h *Handler) GetBankroll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	b, err := h.repo.GetBankroll(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBankrollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bankroll"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// Deposit godoc
// @Summary      Deposit into bankroll
// @Tags         bankrolls
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bankrollID  path      int              true  "Bankroll ID"
// @Param        request     body      MovementRequest  true  "Amount and optional note"
// @Success      200         {object}  Movement
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	h.applyMovement(c, DirectionIncrease, "Manual deposit")
}

// Withdraw godoc
// @Summary      Withdraw from bankroll
// @Tags         bankrolls
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bankrollID  path      int              true  "Bankroll ID"
// @Param        request     body      MovementRequest  true  "Amount and optional note"
// @Success      200         {object}  Movement
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      409         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	h.applyMovement(c, DirectionDecrease, "Manual withdrawal")
}

func (h *Handler) applyMovement(c *gin.Context, direction Direction, defaultNote string) {
	id, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	note := req.Note
	if note == "" {
		note = defaultNote
	}

	m, err := h.repo.ApplyMovement(c.Request.Context(), id, amount, direction, note)
	if err != nil {
		h.respondMovementError(c, id, err)
		return
	}

	metrics.RecordMovement(string(direction))
	h.refreshBalanceMetric(c, id)
	h.publishMovement(c, m)

	c.JSON(http.StatusOK, m)
}

func (h *Handler) respondMovementError(c *gin.Context, bankrollID int, err error) {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "movement amount must be greater than zero"})
	case errors.Is(err, ErrInsufficientFunds):
		resp := gin.H{"error": "insufficient bankroll balance"}
		if b, lookupErr := h.repo.GetBankroll(c.Request.Context(), bankrollID); lookupErr == nil {
			resp["balance"] = b.Balance
		}
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, ErrBankrollNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
	case errors.Is(err, ErrUnsavedBankroll):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bankroll must be saved before registering movements"})
	default:
		logger.Errorf("Movement failed for bankroll %d: %v", bankrollID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply movement"})
	}
}

func (h *Handler) refreshBalanceMetric(c *gin.Context, bankrollID int) {
	b, err := h.repo.GetBankroll(c.Request.Context(), bankrollID)
	if err != nil {
		return
	}
	balance, _ := b.Balance.Float64()
	metrics.SetBankrollBalance(strconv.Itoa(bankrollID), balance)
}

func (h *Handler) publishMovement(c *gin.Context, m *Movement) {
	if h.publisher == nil {
		return
	}
	_ = h.publisher.Publish(c.Request.Context(), events.Event{
		Type:       events.TypeMovement,
		BankrollID: m.BankrollID,
		Direction:  string(m.Direction),
		Amount:     m.Amount.String(),
		Note:       m.Note,
	})
}

// ListMovements godoc
// @Summary      List bankroll movements
// @Description  Movement history, newest first.
// @Tags         bankrolls
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID  path      int  true   "Bankroll ID"
// @Param        limit       query     int  false  "Page size (default 50)"
// @Param        offset      query     int  false  "Offset"
// @Success      200         {array}   Movement
// @Failure      400         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/movements [get]
func (h *Handler) ListMovements(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	movements, err := h.repo.GetMovements(c.Request.Context(), id, limit, offset)
	if err != nil {
		if errors.Is(err, ErrBankrollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load movements"})
		return
	}

	c.JSON(http.StatusOK, movements)
}
