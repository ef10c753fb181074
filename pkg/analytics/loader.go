// Package analytics reads the generated tables back from disk and
// produces the descriptive reports: seasonality breakdowns, cohort
// retention matrices and the MRR time series. Console output only.
package analytics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// table is a parsed CSV file: a column index plus raw rows.
type table struct {
	cols map[string]int
	rows [][]string
}

func (t *table) get(row []string, col string) string {
	idx, ok := t.cols[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func readTable(dir, name string) (*table, error) {
	path := filepath.Join(dir, name)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", name, err)
	}

	return &table{cols: cols, rows: rows}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateFormat, s)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseBool(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}

// LoadCustomers reads customers.csv from dir.
func LoadCustomers(dir string) ([]models.Customer, error) {
	t, err := readTable(dir, "customers.csv")
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		reg, err := parseDate(t.get(row, "registration_date"))
		if err != nil {
			return nil, fmt.Errorf("bad registration_date in customers.csv: %w", err)
		}
		out = append(out, models.Customer{
			CustomerID:         t.get(row, "customer_id"),
			RegistrationDate:   reg,
			AcquisitionChannel: t.get(row, "acquisition_channel"),
			Age:                parseInt(t.get(row, "age")),
			ReferredBy:         t.get(row, "referred_by_customer_id"),
			IsNewYearSignup:    parseBool(t.get(row, "is_new_year_signup")),
		})
	}
	return out, nil
}

// LoadOrders reads orders.csv from dir.
func LoadOrders(dir string) ([]models.Order, error) {
	t, err := readTable(dir, "orders.csv")
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0, len(t.rows))
	for _, row := range t.rows {
		date, err := parseDate(t.get(row, "order_date"))
		if err != nil {
			return nil, fmt.Errorf("bad order_date in orders.csv: %w", err)
		}
		out = append(out, models.Order{
			OrderID:        t.get(row, "order_id"),
			SubscriptionID: t.get(row, "subscription_id"),
			CustomerID:     t.get(row, "customer_id"),
			OrderDate:      date,
			OrderTotal:     parseFloat(t.get(row, "order_total")),
			DeliveryStatus: models.DeliveryStatus(t.get(row, "delivery_status")),
			YearMonth:      t.get(row, "year_month"),
		})
	}
	return out, nil
}

// LoadChurnEvents reads churn_events.csv from dir.
func LoadChurnEvents(dir string) ([]models.ChurnEvent, error) {
	t, err := readTable(dir, "churn_events.csv")
	if err != nil {
		return nil, err
	}
	out := make([]models.ChurnEvent, 0, len(t.rows))
	for _, row := range t.rows {
		date, err := parseDate(t.get(row, "churn_date"))
		if err != nil {
			return nil, fmt.Errorf("bad churn_date in churn_events.csv: %w", err)
		}
		out = append(out, models.ChurnEvent{
			ChurnID:                t.get(row, "churn_id"),
			SubscriptionID:         t.get(row, "subscription_id"),
			CustomerID:             t.get(row, "customer_id"),
			ChurnDate:              date,
			SubscriptionLengthDays: parseInt(t.get(row, "subscription_length_days")),
			ChurnReason:            t.get(row, "churn_reason"),
		})
	}
	return out, nil
}

// LoadSnapshots reads subscription_monthly.csv from dir.
func LoadSnapshots(dir string) ([]models.MonthlySnapshot, error) {
	t, err := readTable(dir, "subscription_monthly.csv")
	if err != nil {
		return nil, err
	}
	out := make([]models.MonthlySnapshot, 0, len(t.rows))
	for _, row := range t.rows {
		month, err := parseDate(t.get(row, "month_start"))
		if err != nil {
			return nil, fmt.Errorf("bad month_start in subscription_monthly.csv: %w", err)
		}
		out = append(out, models.MonthlySnapshot{
			SnapshotID:     t.get(row, "snapshot_id"),
			SubscriptionID: t.get(row, "subscription_id"),
			CustomerID:     t.get(row, "customer_id"),
			PlanType:       t.get(row, "plan_type"),
			MonthStart:     month,
			Status:         models.SubscriptionStatus(t.get(row, "status")),
			MRR:            parseFloat(t.get(row, "mrr")),
		})
	}
	return out, nil
}
