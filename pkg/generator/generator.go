// Package generator implements the NourishBox synthetic-data engine:
// seasonal customer arrivals, probabilistic subscription churn, plan
// upgrades, monthly orders with line items and the derived event tables.
package generator

import (
	"fmt"
	"strings"
	"time"
)

// Config configures a generation run.
type Config struct {
	Seed         int64
	NumCustomers int
	WindowStart  time.Time
	WindowEnd    time.Time
	Progress     bool // render a progress bar on the long stages
}

// Generator runs the full data pipeline for one configuration.
type Generator struct {
	cfg Config
	rng *Rand
}

// New validates the configuration and returns a ready generator.
func New(cfg Config) (*Generator, error) {
	if cfg.NumCustomers <= 0 {
		return nil, fmt.Errorf("customer count must be positive, got %d", cfg.NumCustomers)
	}
	if !cfg.WindowEnd.After(cfg.WindowStart) {
		return nil, fmt.Errorf("window end %s must be after start %s",
			cfg.WindowEnd.Format("2006-01-02"), cfg.WindowStart.Format("2006-01-02"))
	}
	return &Generator{cfg: cfg, rng: NewRand(cfg.Seed)}, nil
}

// windowDays is the length of the simulation window in whole days.
func (g *Generator) windowDays() int {
	return daysBetween(g.cfg.WindowStart, g.cfg.WindowEnd)
}

// daysBetween returns b - a in whole days.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// monthStart truncates t to the first day of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// nextMonth advances to the first day of the following month.
func nextMonth(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, 0)
}

// dateKey encodes a date as YYYYMMDD.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// titleCase uppercases the first letter of every underscore-separated word,
// keeping the underscores ("social_media" -> "Social_Media").
func titleCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "_")
}
