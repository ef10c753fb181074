package analytics

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/models"
	"github.com/schollz/progressbar/v3"
)

// RetentionHorizon is how many month offsets the retention matrix covers.
const RetentionHorizon = 12

// CohortRow is one registration-month cohort and its retention curve.
// Retention[k] is the share of the cohort with at least one order k months
// after registration.
type CohortRow struct {
	Cohort    string // YYYY-MM
	Size      int
	Retention [RetentionHorizon]float64
}

// CohortReport is the retention matrix plus the New-Year-vs-other
// comparison derived from it.
type CohortReport struct {
	Rows []CohortRow

	// Average retention per offset, split by whether the cohort month is
	// January or February.
	NewYear [RetentionHorizon]float64
	Other   [RetentionHorizon]float64
}

// BuildCohortReport constructs the retention matrix from customers and
// their orders, using order activity as the retention signal.
func BuildCohortReport(customers []models.Customer, orders []models.Order, progress bool) *CohortReport {
	// Customer -> registration month; cohort month -> member ids.
	regMonth := make(map[string]time.Time, len(customers))
	cohortMembers := make(map[string][]string)
	for _, c := range customers {
		m := time.Date(c.RegistrationDate.Year(), c.RegistrationDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		regMonth[c.CustomerID] = m
		key := m.Format("2006-01")
		cohortMembers[key] = append(cohortMembers[key], c.CustomerID)
	}

	// Customer -> set of month offsets with at least one order.
	activeOffsets := make(map[string]map[int]bool, len(customers))
	for _, o := range orders {
		reg, ok := regMonth[o.CustomerID]
		if !ok {
			continue
		}
		om := time.Date(o.OrderDate.Year(), o.OrderDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		offset := (om.Year()-reg.Year())*12 + int(om.Month()-reg.Month())
		if offset < 0 || offset >= RetentionHorizon {
			continue
		}
		if activeOffsets[o.CustomerID] == nil {
			activeOffsets[o.CustomerID] = make(map[int]bool)
		}
		activeOffsets[o.CustomerID][offset] = true
	}

	keys := make([]string, 0, len(cohortMembers))
	for k := range cohortMembers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(keys)), "cohorts")
	}

	report := &CohortReport{}
	var nyCount, otherCount int
	for _, key := range keys {
		members := cohortMembers[key]
		row := CohortRow{Cohort: key, Size: len(members)}

		for k := 0; k < RetentionHorizon; k++ {
			active := 0
			for _, id := range members {
				if activeOffsets[id][k] {
					active++
				}
			}
			row.Retention[k] = float64(active) / float64(len(members)) * 100
		}
		report.Rows = append(report.Rows, row)

		month, err := time.Parse("2006-01", key)
		isNewYear := err == nil && (month.Month() == time.January || month.Month() == time.February)
		for k := 0; k < RetentionHorizon; k++ {
			if isNewYear {
				report.NewYear[k] += row.Retention[k]
			} else {
				report.Other[k] += row.Retention[k]
			}
		}
		if isNewYear {
			nyCount++
		} else {
			otherCount++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	for k := 0; k < RetentionHorizon; k++ {
		if nyCount > 0 {
			report.NewYear[k] /= float64(nyCount)
		}
		if otherCount > 0 {
			report.Other[k] /= float64(otherCount)
		}
	}

	return report
}

// Print writes the retention matrix and the New Year comparison to the log.
func (r *CohortReport) Print() {
	log.Println("Cohort retention matrix (% of cohort with an order, by month offset)")
	for _, row := range r.Rows {
		line := fmt.Sprintf("%s (n=%4d):", row.Cohort, row.Size)
		for _, v := range row.Retention {
			line += fmt.Sprintf(" %5.1f", v)
		}
		log.Println(line)
	}

	log.Println("Retention comparison: New Year (Jan-Feb) cohorts vs others")
	log.Println("offset | new year | other | diff")
	for k := 0; k < RetentionHorizon; k++ {
		log.Println(fmt.Sprintf("  %2d   |  %5.1f%%  | %5.1f%% | %+5.1f%%",
			k, r.NewYear[k], r.Other[k], r.NewYear[k]-r.Other[k]))
	}
}
