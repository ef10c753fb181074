package generator

import (
	"log"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// Run executes the whole generation pipeline in its fixed topological
// order: customers -> preferences -> subscriptions -> campaigns -> orders
// -> products -> order items -> churn events -> reviews -> dimensions.
// Each stage consumes the previous stage's in-memory table; nothing is
// written to disk here.
func (g *Generator) Run() (*models.Dataset, error) {
	ds := &models.Dataset{}

	log.Printf("[1/12] generating customers...")
	ds.Customers = g.generateCustomers()
	log.Printf("  %d customers (%d New Year signups)", len(ds.Customers), countNewYear(ds.Customers))

	log.Printf("[2/12] generating customer preferences...")
	ds.Preferences = g.generatePreferences(ds.Customers)

	log.Printf("[3/12] generating subscriptions...")
	ds.Subscriptions = g.generateSubscriptions(ds.Customers)
	active, cancelled, upgraded := countStatuses(ds.Subscriptions)
	log.Printf("  %d subscriptions (%d active, %d cancelled, %d upgraded)",
		len(ds.Subscriptions), active, cancelled, upgraded)

	log.Printf("[4/12] generating marketing campaigns...")
	ds.Campaigns = g.generateCampaigns()
	log.Printf("  %d campaigns", len(ds.Campaigns))

	log.Printf("[5/12] generating orders...")
	var skips SkipTally
	ds.Orders, skips = g.generateOrders(ds.Subscriptions, ds.Campaigns)
	log.Printf("  %d orders (%d skipped: %d summer, %d holidays, %d regular)",
		len(ds.Orders), skips.Total(), skips.Summer, skips.Holidays, skips.Regular)

	log.Printf("[6/12] generating product catalog...")
	ds.Products = g.generateProducts()

	log.Printf("[7/12] generating order items...")
	ds.OrderItems = g.generateOrderItems(ds.Orders, ds.Subscriptions, ds.Preferences, ds.Products)
	log.Printf("  %d order line items", len(ds.OrderItems))

	log.Printf("[8/12] generating churn events...")
	ds.ChurnEvents = g.generateChurnEvents(ds.Subscriptions)
	log.Printf("  %d churn events", len(ds.ChurnEvents))

	log.Printf("[9/12] generating reviews...")
	ds.Reviews = g.generateReviews(ds.Orders)
	log.Printf("  %d reviews", len(ds.Reviews))

	log.Printf("[10/12] generating plan dimension...")
	ds.PlanDim = g.generatePlanDim()

	log.Printf("[11/12] generating date dimension...")
	ds.DateDim = g.generateDateDim()

	log.Printf("[12/12] generating monthly subscription snapshots...")
	ds.MonthlySnapshots = g.generateMonthlySnapshots(ds.Subscriptions)
	log.Printf("  %d snapshots", len(ds.MonthlySnapshots))

	return ds, nil
}

func countNewYear(customers []models.Customer) int {
	n := 0
	for _, c := range customers {
		if c.IsNewYearSignup {
			n++
		}
	}
	return n
}

func countStatuses(subs []models.Subscription) (active, cancelled, upgraded int) {
	for _, s := range subs {
		switch s.Status {
		case models.StatusActive:
			active++
		case models.StatusCancelled:
			cancelled++
		case models.StatusUpgraded:
			upgraded++
		}
	}
	return
}
