package generator

import (
	"testing"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

func TestGenerateSubscriptionsInvariants(t *testing.T) {
	g := newTestGenerator(t, 42, 1000, "2021-01-01", "2022-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)

	if len(subs) < len(customers) {
		t.Fatalf("got %d subscriptions for %d customers", len(subs), len(customers))
	}

	ids := make(map[string]bool, len(subs))
	for _, s := range subs {
		if ids[s.SubscriptionID] {
			t.Errorf("duplicate subscription id %s", s.SubscriptionID)
		}
		ids[s.SubscriptionID] = true

		switch s.Status {
		case models.StatusActive:
			if s.EndDate != nil {
				t.Errorf("active subscription %s has an end date", s.SubscriptionID)
			}
			if !s.AutoRenew {
				t.Errorf("active subscription %s should auto-renew", s.SubscriptionID)
			}
		case models.StatusCancelled, models.StatusUpgraded:
			if s.EndDate == nil {
				t.Errorf("%s subscription %s is missing an end date", s.Status, s.SubscriptionID)
			} else if !s.EndDate.After(s.StartDate) {
				t.Errorf("subscription %s ends before it starts", s.SubscriptionID)
			}
		default:
			t.Errorf("subscription %s has unknown status %q", s.SubscriptionID, s.Status)
		}

		if s.BillingCycle != "monthly" {
			t.Errorf("subscription %s billing cycle %q", s.SubscriptionID, s.BillingCycle)
		}
	}
}

func TestCancelledTenureFloor(t *testing.T) {
	g := newTestGenerator(t, 5, 2000, "2021-01-01", "2022-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)

	for _, s := range subs {
		if s.Status != models.StatusCancelled {
			continue
		}
		tenure := daysBetween(s.StartDate, *s.EndDate)
		if tenure < 30 {
			t.Errorf("subscription %s churned after only %d days", s.SubscriptionID, tenure)
		}
		if tenure > maxChurnTenureDays {
			t.Errorf("subscription %s churned after %d days, cap is %d",
				s.SubscriptionID, tenure, maxChurnTenureDays)
		}
	}
}

func TestUpgradeSplitsChainWithoutGaps(t *testing.T) {
	g := newTestGenerator(t, 9, 3000, "2021-01-01", "2022-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)

	upgrades := 0
	for i, s := range subs {
		if s.Status != models.StatusUpgraded {
			continue
		}
		upgrades++

		if i+1 >= len(subs) {
			t.Fatalf("upgraded subscription %s has no successor record", s.SubscriptionID)
		}
		next := subs[i+1]
		if next.CustomerID != s.CustomerID {
			t.Errorf("successor of %s belongs to a different customer", s.SubscriptionID)
		}
		if !next.StartDate.Equal(*s.EndDate) {
			t.Errorf("upgrade chain of %s has a gap: end %s, next start %s",
				s.CustomerID, s.EndDate, next.StartDate)
		}
		if next.PlanType == s.PlanType {
			t.Errorf("upgrade of %s kept the same plan %s", s.CustomerID, s.PlanType)
		}
		if next.Status != models.StatusActive {
			t.Errorf("successor of %s has status %s", s.SubscriptionID, next.Status)
		}
	}

	// 15% upgrade chance among long-tenured actives must produce some.
	if upgrades == 0 {
		t.Error("expected at least one upgrade on a population this size")
	}
}

func TestNewYearCohortChurnsHarder(t *testing.T) {
	g := newTestGenerator(t, 42, 4000, "2021-01-01", "2022-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)

	isNY := make(map[string]bool, len(customers))
	for _, c := range customers {
		isNY[c.CustomerID] = c.IsNewYearSignup
	}

	var nyTotal, nyChurned, otherTotal, otherChurned int
	var nyEarly int // churned within 90 days
	for _, s := range subs {
		if s.Status == models.StatusUpgraded {
			continue
		}
		churned := s.Status == models.StatusCancelled
		if isNY[s.CustomerID] {
			nyTotal++
			if churned {
				nyChurned++
				if daysBetween(s.StartDate, *s.EndDate) <= 90 {
					nyEarly++
				}
			}
		} else {
			otherTotal++
			if churned {
				otherChurned++
			}
		}
	}

	if nyTotal == 0 || otherTotal == 0 {
		t.Fatal("both cohorts must be populated")
	}

	nyRate := float64(nyChurned) / float64(nyTotal)
	otherRate := float64(otherChurned) / float64(otherTotal)
	if nyRate <= otherRate {
		t.Errorf("New Year churn rate %.3f should exceed other cohorts' %.3f", nyRate, otherRate)
	}

	// Most New Year churns come from the resolution drop-off inside 90 days.
	if nyChurned > 0 {
		earlyShare := float64(nyEarly) / float64(nyChurned)
		if earlyShare < 0.5 {
			t.Errorf("only %.0f%% of New Year churns landed within 90 days", earlyShare*100)
		}
	}
}

func TestPlanWeightsForAge(t *testing.T) {
	for _, age := range []int{22, 35, 60} {
		weights := planWeightsForAge(age)
		if len(weights) != 6 {
			t.Fatalf("age %d: got %d weights, want one per plan", age, len(weights))
		}
	}

	// Younger customers lean combo, older lean meals.
	young, older := planWeightsForAge(25), planWeightsForAge(50)
	if young[5] <= older[5] {
		t.Error("combo_deluxe weight should be higher for young customers")
	}
	if young[0] >= older[0] {
		t.Error("meal_basic weight should be higher for older customers")
	}
}
