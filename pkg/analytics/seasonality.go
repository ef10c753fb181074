package analytics

import (
	"fmt"
	"log"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// MonthStats aggregates activity for one calendar month across all years.
type MonthStats struct {
	Month   time.Month
	Signups int
	Orders  int
	Revenue float64
	Churns  int
}

// SeasonalityReport holds per-calendar-month aggregates.
type SeasonalityReport struct {
	Months [12]MonthStats
}

// BuildSeasonalityReport groups signups, orders, revenue and churns by
// calendar month, collapsing years together to expose the seasonal curve.
func BuildSeasonalityReport(customers []models.Customer, orders []models.Order, churns []models.ChurnEvent) *SeasonalityReport {
	r := &SeasonalityReport{}
	for i := range r.Months {
		r.Months[i].Month = time.Month(i + 1)
	}

	for _, c := range customers {
		r.Months[int(c.RegistrationDate.Month())-1].Signups++
	}
	for _, o := range orders {
		m := &r.Months[int(o.OrderDate.Month())-1]
		m.Orders++
		m.Revenue += o.OrderTotal
	}
	for _, e := range churns {
		r.Months[int(e.ChurnDate.Month())-1].Churns++
	}

	return r
}

// PeakSignupMonth returns the calendar month with the most signups.
func (r *SeasonalityReport) PeakSignupMonth() time.Month {
	best := 0
	for i := range r.Months {
		if r.Months[i].Signups > r.Months[best].Signups {
			best = i
		}
	}
	return r.Months[best].Month
}

// Print writes the report to the log in a fixed-width layout.
func (r *SeasonalityReport) Print() {
	log.Println("Seasonality by calendar month")
	log.Println("month      signups   orders      revenue   churns")
	for _, m := range r.Months {
		log.Println(fmt.Sprintf("%-9s  %7d  %7d  %11.2f  %7d",
			m.Month.String(), m.Signups, m.Orders, m.Revenue, m.Churns))
	}
	log.Printf("peak signup month: %s", r.PeakSignupMonth())
}
