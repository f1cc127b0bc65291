package bet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Lisbooa16/fut-analise/internal/bankroll"
	"github.com/Lisbooa16/fut-analise/internal/events"
	"github.com/Lisbooa16/fut-analise/internal/logger"
	"github.com/Lisbooa16/fut-analise/internal/money"
)

type Handler struct {
	service      Service
	bankrollRepo bankroll.Repository
}

func NewHandler(db *sqlx.DB, publisher *events.Publisher) *Handler {
	return &Handler{
		service:      NewService(NewRepository(db), publisher),
		bankrollRepo: bankroll.NewRepository(db),
	}
}

type PlaceBetRequest struct {
	MatchRef string `json:"match_ref" binding:"required" example:"Palmeiras x Flamengo"`
	Market   string `json:"market" binding:"required" example:"+1.5 goals"`
	Odd      string `json:"odd" binding:"required" example:"1.85"`
	Stake    string `json:"stake" binding:"required" example:"10.00"`
}

type SettleBetRequest struct {
	Winner *bool `json:"winner" binding:"required"`
}

// PlaceBet godoc
// @Summary      Register bet
// @Description  Registers a bet against the bankroll, debiting the stake atomically.
// @Tags         bets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bankrollID  path      int              true  "Bankroll ID"
// @Param        request     body      PlaceBetRequest  true  "Bet"
// @Success      201         {object}  Bet
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      409         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	bankrollID, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	odd, err := money.Parse(req.Odd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid odd"})
		return
	}

	stake, err := money.Parse(req.Stake)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stake"})
		return
	}

	created, err := h.service.PlaceBet(c.Request.Context(), bankrollID, req.MatchRef, req.Market, odd, stake)
	if err != nil {
		h.respondBetError(c, bankrollID, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// SettleBet godoc
// @Summary      Settle bet
// @Description  Resolves a pending bet. A winning bet credits the bankroll with the potential profit; settlement happens at most once.
// @Tags         bets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        betID    path      int               true  "Bet ID"
// @Param        request  body      SettleBetRequest  true  "Outcome"
// @Success      200      {object}  Bet
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bets/{betID}/settle [post]
func (h *Handler) SettleBet(c *gin.Context) {
	betID, err := strconv.Atoi(c.Param("betID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet ID"})
		return
	}

	var req SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settled, err := h.service.SettleBet(c.Request.Context(), betID, *req.Winner)
	if err != nil {
		switch {
		case errors.Is(err, ErrBetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "bet not found"})
		case errors.Is(err, ErrAlreadySettled):
			c.JSON(http.StatusConflict, gin.H{"error": "bet has already been settled"})
		default:
			logger.Errorf("Failed to settle bet %d: %v", betID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to settle bet"})
		}
		return
	}

	c.JSON(http.StatusOK, settled)
}

// GetBet godoc
// @Summary      Get bet
// @Tags         bets
// @Security     BearerAuth
// @Produce      json
// @Param        betID  path      int  true  "Bet ID"
// @Success      200    {object}  Bet
// @Failure      404    {object}  api.ErrorResponse
// @Router       /bets/{betID} [get]
func (h *Handler) GetBet(c *gin.Context) {
	betID, err := strconv.Atoi(c.Param("betID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet ID"})
		return
	}

	b, err := h.service.GetBet(c.Request.Context(), betID)
	if err != nil {
		if errors.Is(err, ErrBetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bet"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListBets godoc
// @Summary      List bets
// @Description  Bets for a bankroll, newest first, optionally filtered by result.
// @Tags         bets
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID  path      int     true   "Bankroll ID"
// @Param        result      query     string  false  "PENDING, GREEN or RED"
// @Param        limit       query     int     false  "Page size (default 50)"
// @Param        offset      query     int     false  "Offset"
// @Success      200         {array}   Bet
// @Failure      400         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/bets [get]
func (h *Handler) ListBets(c *gin.Context) {
	bankrollID, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	result := Result(c.Query("result"))
	switch result {
	case "", ResultPending, ResultGreen, ResultRed:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result filter"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bets, err := h.service.GetBets(c.Request.Context(), bankrollID, result, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bets"})
		return
	}

	c.JSON(http.StatusOK, bets)
}

// GetTotals godoc
// @Summary      Bankroll bet totals
// @Description  Sum of green profits and red stakes for the bankroll.
// @Tags         bets
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID  path      int  true  "Bankroll ID"
// @Success      200         {object}  Totals
// @Failure      400         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/totals [get]
func (h *Handler) GetTotals(c *gin.Context) {
	bankrollID, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	totals, err := h.service.GetTotals(c.Request.Context(), bankrollID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (h *Handler) respondBetError(c *gin.Context, bankrollID int, err error) {
	switch {
	case errors.Is(err, ErrInvalidStake):
		c.JSON(http.StatusBadRequest, gin.H{"error": "stake must be greater than zero"})
	case errors.Is(err, ErrInvalidOdd):
		c.JSON(http.StatusBadRequest, gin.H{"error": "odd must be greater than one"})
	case errors.Is(err, bankroll.ErrInsufficientFunds):
		resp := gin.H{"error": "insufficient bankroll balance"}
		if b, lookupErr := h.bankrollRepo.GetBankroll(c.Request.Context(), bankrollID); lookupErr == nil {
			resp["balance"] = b.Balance
		}
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, bankroll.ErrBankrollNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
	default:
		logger.Errorf("Failed to place bet on bankroll %d: %v", bankrollID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place bet"})
	}
}
