package generator

import (
	"testing"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

func TestGeneratePlanDim(t *testing.T) {
	g := newTestGenerator(t, 1, 10, "2021-01-01", "2021-12-31")
	rows := g.generatePlanDim()

	if len(rows) != len(catalog.Plans) {
		t.Fatalf("got %d plan rows, want %d", len(rows), len(catalog.Plans))
	}
	for i, r := range rows {
		if r.PlanKey != catalog.Plans[i].Key {
			t.Errorf("row %d key %s, want %s (catalog order must be preserved)", i, r.PlanKey, catalog.Plans[i].Key)
		}
	}
}

func TestGenerateDateDim(t *testing.T) {
	g := newTestGenerator(t, 1, 10, "2022-01-01", "2022-12-31")
	rows := g.generateDateDim()

	if len(rows) != 365 {
		t.Fatalf("got %d date rows for 2022, want 365", len(rows))
	}

	first := rows[0]
	if first.DateKey != 20220101 || first.Quarter != 1 || first.Season != "winter" {
		t.Errorf("unexpected first row: %+v", first)
	}
	// 2022-01-01 was a Saturday
	if first.DayOfWeek != 6 || !first.IsWeekend {
		t.Errorf("2022-01-01 should be a weekend Saturday, got dow=%d weekend=%v", first.DayOfWeek, first.IsWeekend)
	}

	for i := 1; i < len(rows); i++ {
		if !rows[i].Date.Equal(rows[i-1].Date.AddDate(0, 0, 1)) {
			t.Fatalf("date dimension has a gap at %s", rows[i].Date)
		}
	}
}

func TestMonthlySnapshots(t *testing.T) {
	g := newTestGenerator(t, 1, 10, "2021-01-01", "2022-12-31")

	end := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	subs := []models.Subscription{
		{
			SubscriptionID: "SUB000001", CustomerID: "CUST000001",
			PlanType: "meal_basic", PlanName: "Meal Basic", MonthlyPrice: 49.99,
			StartDate: time.Date(2021, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:    models.StatusActive,
		},
		{
			SubscriptionID: "SUB000002", CustomerID: "CUST000002",
			PlanType: "meal_plus", PlanName: "Meal Plus", MonthlyPrice: 79.99,
			StartDate: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end, Status: models.StatusCancelled,
		},
	}

	rows := g.generateMonthlySnapshots(subs)

	var active, cancelled []models.MonthlySnapshot
	for _, r := range rows {
		switch r.SubscriptionID {
		case "SUB000001":
			active = append(active, r)
		case "SUB000002":
			cancelled = append(cancelled, r)
		}
	}

	// Active sub runs Feb 2021 through Dec 2022 inclusive: 23 months.
	if len(active) != 23 {
		t.Errorf("active subscription has %d snapshot months, want 23", len(active))
	}
	for _, r := range active {
		if r.MRR != 49.99 {
			t.Errorf("active snapshot %s carries MRR %.2f", r.SnapshotID, r.MRR)
		}
	}

	// Cancelled sub runs Mar through Jun 2021: 4 months, all zero MRR.
	if len(cancelled) != 4 {
		t.Errorf("cancelled subscription has %d snapshot months, want 4", len(cancelled))
	}
	for _, r := range cancelled {
		if r.MRR != 0 {
			t.Errorf("cancelled snapshot %s carries MRR %.2f", r.SnapshotID, r.MRR)
		}
	}
}
