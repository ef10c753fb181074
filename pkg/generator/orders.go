package generator

import (
	"fmt"

	"github.com/nourishbox/nourishbox-data/pkg/models"
	"github.com/nourishbox/nourishbox-data/pkg/seasonality"
	"github.com/schollz/progressbar/v3"
)

// SkipTally counts skipped order months by season bucket, for reporting.
type SkipTally struct {
	Summer   int
	Holidays int
	Regular  int
}

// Total returns the total number of skipped months.
func (t SkipTally) Total() int {
	return t.Summer + t.Holidays + t.Regular
}

// generateOrders walks each subscription month by month and synthesizes
// one order per non-skipped cycle. The first cycle lands on the exact
// start date, later cycles on the first of each month. Orders stay
// strictly inside [start_date, end_date) for subscriptions with an end.
func (g *Generator) generateOrders(subs []models.Subscription, campaigns []models.Campaign) ([]models.Order, SkipTally) {
	var (
		orders []models.Order
		tally  SkipTally
	)
	nextID := 1

	var bar *progressbar.ProgressBar
	if g.cfg.Progress {
		bar = progressbar.Default(int64(len(subs)), "orders")
	}

	for _, sub := range subs {
		end := g.cfg.WindowEnd
		hasEnd := sub.EndDate != nil
		if hasEnd {
			end = *sub.EndDate
		}

		for cur := sub.StartDate; ; cur = nextMonth(cur) {
			if cur.After(g.cfg.WindowEnd) {
				break
			}
			if hasEnd && !cur.Before(end) {
				break
			}
			if !hasEnd && cur.After(end) {
				break
			}

			if g.rng.Chance(seasonality.SkipProbability(cur)) {
				switch seasonality.Season(cur) {
				case "summer":
					tally.Summer++
				default:
					if m := cur.Month(); m == 11 || m == 12 {
						tally.Holidays++
					} else {
						tally.Regular++
					}
				}
				continue
			}

			orderDate := cur
			deliveryDate := orderDate.AddDate(0, 0, g.rng.IntBetween(2, 5))

			status := models.DeliveryPending
			if !deliveryDate.After(g.cfg.WindowEnd) {
				statuses := []models.DeliveryStatus{models.DeliveryDelivered, models.DeliveryDelayed, models.DeliveryCancelled}
				status = statuses[g.rng.WeightedIndex([]int{94, 4, 2})]
			}

			discount := 0.0
			if g.rng.Chance(0.15) {
				discount = round2(g.rng.Uniform(0, 15))
			}

			shipping := 5.99
			if sub.MonthlyPrice > 50 {
				shipping = 0.0
			}

			total := round2(sub.MonthlyPrice - discount + shipping)
			if total < 0 {
				total = 0
			}

			campaignID := ""
			if len(campaigns) > 0 && g.rng.Chance(0.35) {
				campaignID = Choice(g.rng, campaigns).CampaignID
			}

			order := models.Order{
				OrderID:          fmt.Sprintf("ORD%07d", nextID),
				SubscriptionID:   sub.SubscriptionID,
				CustomerID:       sub.CustomerID,
				OrderDate:        orderDate,
				OrderTotal:       total,
				DeliveryStatus:   status,
				ShippingCost:     shipping,
				DiscountApplied:  discount,
				PlanTypeAtOrder:  sub.PlanType,
				PlanPriceAtOrder: sub.MonthlyPrice,
				CampaignID:       campaignID,
				OrderDateKey:     dateKey(orderDate),
				YearMonth:        orderDate.Format("2006-01"),
			}
			if status != models.DeliveryCancelled {
				d := deliveryDate
				order.DeliveryDate = &d
			}

			orders = append(orders, order)
			nextID++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return orders, tally
}
