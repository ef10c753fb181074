package generator

import (
	"fmt"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// maxChurnTenureDays caps how far into a subscription a churn can land.
const maxChurnTenureDays = 730

// planWeightsForAge returns the plan-selection weights for a customer's
// age bracket, in catalog.Plans order. Younger customers lean combo and
// beauty, older customers lean meals and premium.
func planWeightsForAge(age int) []int {
	switch {
	case age < 30:
		return []int{10, 5, 15, 10, 25, 35}
	case age < 45:
		return []int{20, 20, 15, 15, 20, 10}
	default:
		return []int{25, 25, 10, 20, 15, 5}
	}
}

// churnOutcome is the result of one churn decision.
type churnOutcome struct {
	churned    bool
	tenureDays int
}

// decideChurn runs the two hazard regimes. tenureSoFar is the number of
// days between registration and the window end.
func (g *Generator) decideChurn(isNewYear bool, tenureSoFar int) churnOutcome {
	if isNewYear && tenureSoFar >= 60 {
		// Resolution-driven signups: most churn within two to three months.
		if g.rng.Chance(0.55) {
			upper := tenureSoFar
			if upper > 90 {
				upper = 90
			}
			return churnOutcome{churned: true, tenureDays: g.rng.IntBetween(60, upper)}
		}

		// Survivors of the three-month mark fall back to tenure-banded hazards.
		var hazard float64
		switch {
		case tenureSoFar < 180:
			hazard = 0.10
		case tenureSoFar < 365:
			hazard = 0.20
		default:
			hazard = 0.35
		}
		if g.rng.Chance(hazard) {
			upper := tenureSoFar
			if upper > maxChurnTenureDays {
				upper = maxChurnTenureDays
			}
			if upper < 120 {
				// Not enough observed lifetime to place the churn; stay active.
				return churnOutcome{}
			}
			return churnOutcome{churned: true, tenureDays: g.rng.IntBetween(120, upper)}
		}
		return churnOutcome{}
	}

	var hazard float64
	switch {
	case tenureSoFar < 90:
		hazard = 0.05
	case tenureSoFar < 180:
		hazard = 0.15
	case tenureSoFar < 365:
		hazard = 0.25
	default:
		hazard = 0.40
	}

	// Every subscription gets at least 30 days of simulated life.
	if g.rng.Chance(hazard) && tenureSoFar >= 30 {
		upper := tenureSoFar
		if upper > maxChurnTenureDays {
			upper = maxChurnTenureDays
		}
		return churnOutcome{churned: true, tenureDays: g.rng.IntBetween(30, upper)}
	}
	return churnOutcome{}
}

// generateSubscriptions simulates each customer's subscription chain:
// plan selection conditioned on age, churn under the cohort hazard
// regimes, and at most one mid-lifetime plan upgrade that splits the
// record in two.
func (g *Generator) generateSubscriptions(customers []models.Customer) []models.Subscription {
	subs := make([]models.Subscription, 0, len(customers))
	nextID := 1

	newID := func() string {
		id := fmt.Sprintf("SUB%06d", nextID)
		nextID++
		return id
	}

	for _, c := range customers {
		weights := planWeightsForAge(c.Age)
		plan := catalog.Plans[g.rng.WeightedIndex(weights)]

		start := c.RegistrationDate
		tenureSoFar := daysBetween(start, g.cfg.WindowEnd)

		outcome := g.decideChurn(c.IsNewYearSignup, tenureSoFar)

		var endDate *time.Time
		status := models.StatusActive
		if outcome.churned {
			churnDate := start.AddDate(0, 0, outcome.tenureDays)
			endDate = &churnDate
			status = models.StatusCancelled
		}

		autoRenew := status == models.StatusActive || g.rng.Float64() > 0.3

		sub := models.Subscription{
			SubscriptionID: newID(),
			CustomerID:     c.CustomerID,
			PlanType:       plan.Key,
			PlanName:       plan.Name,
			MonthlyPrice:   plan.Price,
			StartDate:      start,
			EndDate:        endDate,
			Status:         status,
			BillingCycle:   "monthly",
			AutoRenew:      autoRenew,
		}
		subs = append(subs, sub)

		// Mid-lifetime plan change: close the current record and open a new
		// one at the change date. One upgrade per customer.
		if !outcome.churned && tenureSoFar > 180 && g.rng.Chance(0.15) {
			changeDays := g.rng.IntBetween(120, tenureSoFar-30)
			changeDate := start.AddDate(0, 0, changeDays)

			subs[len(subs)-1].EndDate = &changeDate
			subs[len(subs)-1].Status = models.StatusUpgraded

			var others []catalog.Plan
			for _, p := range catalog.Plans {
				if p.Key != plan.Key {
					others = append(others, p)
				}
			}
			newPlan := Choice(g.rng, others)

			subs = append(subs, models.Subscription{
				SubscriptionID: newID(),
				CustomerID:     c.CustomerID,
				PlanType:       newPlan.Key,
				PlanName:       newPlan.Name,
				MonthlyPrice:   newPlan.Price,
				StartDate:      changeDate,
				EndDate:        nil,
				Status:         models.StatusActive,
				BillingCycle:   "monthly",
				AutoRenew:      true,
			})
		}
	}

	return subs
}
