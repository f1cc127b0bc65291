package advisory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Lisbooa16/fut-analise/internal/bankroll"
	"github.com/Lisbooa16/fut-analise/internal/bet"
)

type Handler struct {
	bankrollRepo bankroll.Repository
	betRepo      bet.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		bankrollRepo: bankroll.NewRepository(db),
		betRepo:      bet.NewRepository(db),
	}
}

type AdviceResponse struct {
	Alerts []string `json:"alerts"`
}

type RecommendationResponse struct {
	RecommendedStake decimal.Decimal `json:"recommended_stake"`
	RecommendedOdd   decimal.Decimal `json:"recommended_odd"`
}

// GetAdvice godoc
// @Summary      Bankroll health advice
// @Description  Read-only warnings derived from recent bets and the balance.
// @Tags         advisory
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID  path      int  true  "Bankroll ID"
// @Success      200         {object}  AdviceResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/advice [get]
func (h *Handler) GetAdvice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	b, err := h.bankrollRepo.GetBankroll(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bankroll.ErrBankrollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bankroll"})
		return
	}

	lastBets, err := h.betRepo.GetBets(c.Request.Context(), id, "", HistoryWindow, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bet history"})
		return
	}

	avgGreenProfit, err := h.betRepo.GetAverageGreenProfit(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bet history"})
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{Alerts: Advise(b, lastBets, avgGreenProfit)})
}

// GetRecommendation godoc
// @Summary      Recommended stake and odd
// @Description  Suggests a stake and fair odd, optionally using a win probability percentage.
// @Tags         advisory
// @Security     BearerAuth
// @Produce      json
// @Param        bankrollID   path      int     true   "Bankroll ID"
// @Param        probability  query     string  false  "Win probability in percent, e.g. 67.7"
// @Success      200          {object}  RecommendationResponse
// @Failure      404          {object}  api.ErrorResponse
// @Router       /bankrolls/{bankrollID}/recommendation [get]
func (h *Handler) GetRecommendation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bankrollID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bankroll ID"})
		return
	}

	b, err := h.bankrollRepo.GetBankroll(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bankroll.ErrBankrollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bankroll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bankroll"})
		return
	}

	var probability *decimal.Decimal
	if raw := c.Query("probability"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid probability"})
			return
		}
		probability = &p
	}

	stake, odd := Recommend(b.Balance, probability)
	c.JSON(http.StatusOK, RecommendationResponse{
		RecommendedStake: stake,
		RecommendedOdd:   odd,
	})
}
