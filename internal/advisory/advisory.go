package advisory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Lisbooa16/fut-analise/internal/bankroll"
	"github.com/Lisbooa16/fut-analise/internal/bet"
)

// Business constants pending product input; values match the current
// deployment.
const (
	// HistoryWindow is how many recent bets the analysis looks at.
	HistoryWindow = 20
	// LosingStreakThreshold is the consecutive-red count that triggers
	// the risk warning.
	LosingStreakThreshold = 3
)

var (
	// Stake sizing bands, as a percentage of the current balance.
	aggressiveStakePercent   = decimal.NewFromInt(5)
	conservativeStakePercent = decimal.NewFromInt(1)

	defaultRecommendedOdd = decimal.RequireFromString("1.50")
	hundred               = decimal.NewFromInt(100)
)

// Advise produces bankroll health warnings from the bankroll state and
// its recent bets, newest first. avgGreenProfit is the average credited
// profit over every green bet of the bankroll, not just the recent
// window, so old wins still anchor the break-even projection. It is a
// pure read: no state is touched, and the same inputs always produce
// the same output.
func Advise(b *bankroll.Bankroll, lastBets []bet.Bet, avgGreenProfit decimal.Decimal) []string {
	if len(lastBets) == 0 {
		return []string{"Not enough bet history yet to analyse the bankroll."}
	}

	if len(lastBets) > HistoryWindow {
		lastBets = lastBets[:HistoryWindow]
	}

	var alerts []string

	reds := losingStreak(lastBets)
	if reds >= LosingStreakThreshold {
		alerts = append(alerts, fmt.Sprintf(
			"Warning! You are on a streak of %d consecutive reds. Reduce your stake to protect the bankroll.", reds))
	}

	profit := b.Balance.Sub(b.InitialBalance)
	if profit.IsNegative() {
		alerts = append(alerts, fmt.Sprintf(
			"You are in the red: %s. Stay disciplined and reduce exposure.", profit.Abs().StringFixed(2)))

		if avgGreenProfit.IsPositive() {
			needed := profit.Abs().Div(avgGreenProfit)
			alerts = append(alerts, fmt.Sprintf(
				"To get back to break-even you need roughly %s greens at your average winning profit.", needed.StringFixed(1)))
		}
	} else {
		alerts = append(alerts, fmt.Sprintf(
			"Your bankroll is positive: +%s. Keep following your current management.", profit.StringFixed(2)))
	}

	if percent, ok := averageStakePercent(b.Balance, lastBets); ok {
		switch {
		case percent.GreaterThanOrEqual(aggressiveStakePercent):
			alerts = append(alerts,
				"Your average stake is above 5% of the bankroll — that is aggressive and raises the risk of busting.")
		case percent.LessThanOrEqual(conservativeStakePercent):
			alerts = append(alerts,
				"Your average stake is very conservative (<=1% of the bankroll). Excellent for the long run.")
		}
	}

	return alerts
}

// losingStreak counts consecutive REDs from the most recent bet down,
// stopping at the first non-RED result.
func losingStreak(lastBets []bet.Bet) int {
	reds := 0
	for _, b := range lastBets {
		if b.Result != bet.ResultRed {
			break
		}
		reds++
	}
	return reds
}

func averageStakePercent(balance decimal.Decimal, lastBets []bet.Bet) (decimal.Decimal, bool) {
	if !balance.IsPositive() {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	count := 0
	for _, b := range lastBets {
		if b.Stake.IsPositive() {
			sum = sum.Add(b.Stake)
			count++
		}
	}

	if count == 0 {
		return decimal.Zero, false
	}

	avg := sum.Div(decimal.NewFromInt(int64(count)))
	return avg.Div(balance).Mul(hundred), true
}

// Recommend suggests a stake and odd for the next bet. Probability is a
// win percentage (e.g. 67.7) when the caller has a model estimate, nil
// otherwise. The stake is a probability-tiered fraction of the balance;
// the odd is the fair odd implied by the probability.
func Recommend(balance decimal.Decimal, probability *decimal.Decimal) (stake, odd decimal.Decimal) {
	percent := decimal.RequireFromString("0.01")
	switch {
	case probability == nil:
	case probability.GreaterThanOrEqual(decimal.NewFromInt(70)):
		percent = decimal.RequireFromString("0.02")
	case probability.GreaterThanOrEqual(decimal.NewFromInt(55)):
		percent = decimal.RequireFromString("0.015")
	}

	stake = balance.Mul(percent).Round(2)

	odd = defaultRecommendedOdd
	if probability != nil && probability.IsPositive() {
		odd = hundred.Div(*probability).Round(2)
	}

	return stake, odd
}
