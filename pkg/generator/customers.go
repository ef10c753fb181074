package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
	"github.com/nourishbox/nourishbox-data/pkg/seasonality"
)

// signupDates walks the window day by day and accumulates registration
// dates whose daily arrival rate follows the seasonal multiplier, with
// stochastic rounding and a ±30% jitter. If the window runs out before
// enough dates exist, the remainder is backfilled uniformly. The list is
// shuffled so array position carries no seasonal signal.
func (g *Generator) signupDates() []time.Time {
	n := g.cfg.NumCustomers
	base := float64(n) / float64(g.windowDays())

	dates := make([]time.Time, 0, n)
	for cur := g.cfg.WindowStart; len(dates) < n && !cur.After(g.cfg.WindowEnd); cur = cur.AddDate(0, 0, 1) {
		expected := base * seasonality.SignupMultiplier(cur)

		signups := int(expected)
		if g.rng.Chance(expected - math.Trunc(expected)) {
			signups++
		}
		signups = int(float64(signups) * g.rng.Uniform(0.7, 1.3))
		if signups < 0 {
			signups = 0
		}

		for i := 0; i < signups && len(dates) < n; i++ {
			dates = append(dates, cur)
		}
	}

	for len(dates) < n {
		offset := g.rng.Intn(g.windowDays() + 1)
		dates = append(dates, g.cfg.WindowStart.AddDate(0, 0, offset))
	}

	g.rng.Shuffle(len(dates), func(i, j int) {
		dates[i], dates[j] = dates[j], dates[i]
	})
	return dates[:n]
}

// generateCustomers produces the customer table and wires the referral
// graph. A referrer is always drawn from a strictly smaller index, so the
// graph is acyclic and the referrer registered no later in creation order.
func (g *Generator) generateCustomers() []models.Customer {
	dates := g.signupDates()

	customers := make([]models.Customer, g.cfg.NumCustomers)
	for i := range customers {
		reg := dates[i]
		customers[i] = models.Customer{
			CustomerID:         fmt.Sprintf("CUST%06d", i+1),
			FirstName:          g.rng.Faker.FirstName(),
			LastName:           g.rng.Faker.LastName(),
			Email:              g.rng.Faker.Email(),
			Phone:              g.rng.Faker.Phone(),
			RegistrationDate:   reg,
			AcquisitionChannel: catalog.AcquisitionChannels[g.rng.WeightedIndex(catalog.AcquisitionChannelWeights)],
			Age:                g.rng.IntBetween(22, 65),
			Gender:             Choice(g.rng, []string{"Female", "Male", "Non-binary", "Prefer not to say"}),
			ZipCode:            g.rng.Faker.Zip(),
			City:               g.rng.Faker.City(),
			State:              g.rng.Faker.StateAbr(),
			IsNewYearSignup:    reg.Month() == time.January || reg.Month() == time.February,
		}
	}

	// Referral links. The first customer has nobody to be referred by; skip
	// rather than fail.
	for i := range customers {
		if customers[i].AcquisitionChannel != "referral" || i == 0 {
			continue
		}
		customers[i].ReferredBy = customers[g.rng.Intn(i)].CustomerID
	}

	return customers
}

// generatePreferences produces one preference row per customer.
func (g *Generator) generatePreferences(customers []models.Customer) []models.Preference {
	prefs := make([]models.Preference, len(customers))
	for i, c := range customers {
		numDietary := []int{0, 1, 2}[g.rng.WeightedIndex([]int{40, 45, 15})]
		dietary := []string{"none"}
		if numDietary > 0 {
			dietary = Sample(g.rng, catalog.DietaryPreferences[1:], numDietary)
		}

		numBeauty := []int{1, 2, 3}[g.rng.WeightedIndex([]int{30, 50, 20})]
		beauty := Sample(g.rng, catalog.BeautyPreferences, numBeauty)

		numAllergies := []int{1, 2, 0}[g.rng.WeightedIndex([]int{10, 5, 85})]
		allergies := []string{"none"}
		if numAllergies > 0 {
			allergies = Sample(g.rng, catalog.Allergens, numAllergies)
		}

		prefs[i] = models.Preference{
			CustomerID:         c.CustomerID,
			DietaryPreferences: dietary,
			BeautyPreferences:  beauty,
			SkinType:           Choice(g.rng, catalog.SkinTypes),
			Allergies:          allergies,
			PreferredMealTime:  Choice(g.rng, catalog.MealTimes),
			HouseholdSize:      []int{1, 2, 3, 4, 5}[g.rng.WeightedIndex([]int{25, 35, 20, 15, 5})],
		}
	}
	return prefs
}
