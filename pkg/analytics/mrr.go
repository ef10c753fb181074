package analytics

import (
	"fmt"
	"log"
	"sort"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// MRRPoint is one month of the recurring-revenue time series.
type MRRPoint struct {
	Month         string // YYYY-MM
	MRR           float64
	ActiveSubs    int
	GrowthPercent float64 // month-over-month, 0 for the first point
}

// BuildMRRSeries sums monthly recurring revenue across the subscription
// snapshots. Only months with a positive MRR contribution count toward
// the active subscription tally.
func BuildMRRSeries(snapshots []models.MonthlySnapshot) []MRRPoint {
	type agg struct {
		mrr    float64
		active int
	}
	byMonth := make(map[string]*agg)
	for _, s := range snapshots {
		key := s.MonthStart.Format("2006-01")
		a := byMonth[key]
		if a == nil {
			a = &agg{}
			byMonth[key] = a
		}
		a.mrr += s.MRR
		if s.MRR > 0 {
			a.active++
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]MRRPoint, 0, len(months))
	for i, m := range months {
		point := MRRPoint{Month: m, MRR: byMonth[m].mrr, ActiveSubs: byMonth[m].active}
		if i > 0 && series[i-1].MRR > 0 {
			point.GrowthPercent = (point.MRR - series[i-1].MRR) / series[i-1].MRR * 100
		}
		series = append(series, point)
	}
	return series
}

// PrintMRR writes the MRR series and its summary figures to the log.
func PrintMRR(series []MRRPoint) {
	log.Println("MRR time series")
	log.Println("month    |         mrr | active | growth")
	for _, p := range series {
		log.Println(fmt.Sprintf("%s  | %11.2f | %6d | %+5.1f%%", p.Month, p.MRR, p.ActiveSubs, p.GrowthPercent))
	}

	if len(series) == 0 {
		return
	}
	peak := series[0]
	for _, p := range series {
		if p.MRR > peak.MRR {
			peak = p
		}
	}
	log.Printf("final MRR: $%.2f (peak $%.2f in %s)", series[len(series)-1].MRR, peak.MRR, peak.Month)
}
