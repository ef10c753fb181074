package generator

import (
	"fmt"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
	"github.com/nourishbox/nourishbox-data/pkg/seasonality"
)

// generatePlanDim materializes the plan dimension from the catalog.
func (g *Generator) generatePlanDim() []models.PlanDim {
	rows := make([]models.PlanDim, len(catalog.Plans))
	for i, p := range catalog.Plans {
		rows[i] = models.PlanDim{
			PlanKey:       p.Key,
			PlanName:      p.Name,
			Category:      p.Category,
			MonthlyPrice:  p.Price,
			MealsPerWeek:  p.MealsPerWeek,
			ItemsPerMonth: p.ItemsPerMonth,
		}
	}
	return rows
}

// generateDateDim produces one row per day of the window.
func (g *Generator) generateDateDim() []models.DateDim {
	var rows []models.DateDim
	for cur := g.cfg.WindowStart; !cur.After(g.cfg.WindowEnd); cur = cur.AddDate(0, 0, 1) {
		dow := int(cur.Weekday())
		if dow == 0 {
			dow = 7 // Monday = 1 .. Sunday = 7
		}
		rows = append(rows, models.DateDim{
			DateKey:   dateKey(cur),
			Date:      cur,
			Year:      cur.Year(),
			Quarter:   (int(cur.Month())-1)/3 + 1,
			Month:     int(cur.Month()),
			Day:       cur.Day(),
			DayOfWeek: dow,
			MonthName: cur.Month().String(),
			YearMonth: cur.Format("2006-01"),
			IsWeekend: dow >= 6,
			Season:    seasonality.Season(cur),
		})
	}
	return rows
}

// generateMonthlySnapshots rolls every subscription into per-month state
// rows used for MRR metrics. Cancelled months carry zero MRR; upgraded
// subscriptions stop at the upgrade month boundary.
func (g *Generator) generateMonthlySnapshots(subs []models.Subscription) []models.MonthlySnapshot {
	var rows []models.MonthlySnapshot
	nextID := 1

	for _, sub := range subs {
		subEnd := g.cfg.WindowEnd
		if sub.EndDate != nil {
			subEnd = *sub.EndDate
		}

		for cur := monthStart(sub.StartDate); !cur.After(subEnd) && !cur.After(g.cfg.WindowEnd); cur = cur.AddDate(0, 1, 0) {
			if sub.Status == models.StatusUpgraded && !cur.Before(subEnd) {
				break
			}

			mrr := 0.0
			if sub.Status == models.StatusActive || sub.Status == models.StatusUpgraded {
				mrr = sub.MonthlyPrice
			}

			rows = append(rows, models.MonthlySnapshot{
				SnapshotID:     fmt.Sprintf("SNAP%07d", nextID),
				SubscriptionID: sub.SubscriptionID,
				CustomerID:     sub.CustomerID,
				PlanType:       sub.PlanType,
				PlanName:       sub.PlanName,
				MonthStart:     cur,
				Status:         sub.Status,
				MRR:            mrr,
			})
			nextID++
		}
	}

	return rows
}
