package generator

import (
	"testing"
	"time"
)

// newTestGenerator builds a generator over a fixed window without progress
// bars, failing the test on bad configuration.
func newTestGenerator(t *testing.T, seed int64, customers int, start, end string) *Generator {
	t.Helper()
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatalf("bad start date: %v", err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		t.Fatalf("bad end date: %v", err)
	}
	g, err := New(Config{Seed: seed, NumCustomers: customers, WindowStart: s, WindowEnd: e})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestNewRejectsBadConfig(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := New(Config{NumCustomers: 0, WindowStart: start, WindowEnd: start.AddDate(1, 0, 0)}); err == nil {
		t.Error("zero customers should be rejected")
	}
	if _, err := New(Config{NumCustomers: 10, WindowStart: start, WindowEnd: start}); err == nil {
		t.Error("empty window should be rejected")
	}
	if _, err := New(Config{NumCustomers: 10, WindowStart: start, WindowEnd: start.AddDate(-1, 0, 0)}); err == nil {
		t.Error("inverted window should be rejected")
	}
}

func TestDateHelpers(t *testing.T) {
	a := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2022, 2, 15, 0, 0, 0, 0, time.UTC)

	if got := daysBetween(a, b); got != 45 {
		t.Errorf("daysBetween = %d, want 45", got)
	}
	if got := monthStart(b); !got.Equal(time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthStart = %v", got)
	}
	if got := nextMonth(b); !got.Equal(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("nextMonth = %v", got)
	}
	if got := dateKey(b); got != 20220215 {
		t.Errorf("dateKey = %d, want 20220215", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"social_media":   "Social_Media",
		"email":          "Email",
		"referral_bonus": "Referral_Bonus",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
