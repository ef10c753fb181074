// Package seasonality encodes the hand-tuned seasonal demand curve of the
// business as two pure lookup tables over the calendar months.
package seasonality

import "time"

// signupMultipliers scales the expected daily signup volume per month.
// January/February peak on New Year's resolutions, summer and the holiday
// season slow down.
var signupMultipliers = map[time.Month]float64{
	time.January:   2.5,
	time.February:  2.0,
	time.March:     1.3,
	time.April:     1.2,
	time.May:       1.1,
	time.June:      0.6,
	time.July:      0.5,
	time.August:    0.6,
	time.September: 1.2,
	time.October:   1.0,
	time.November:  0.7,
	time.December:  0.6,
}

// skipProbabilities gives the chance an order is skipped in a given month.
// Vacations (Jun-Aug) and holiday eating (Nov-Dec) raise the rate.
var skipProbabilities = map[time.Month]float64{
	time.January:   0.05,
	time.February:  0.05,
	time.March:     0.05,
	time.April:     0.06,
	time.May:       0.06,
	time.June:      0.12,
	time.July:      0.15,
	time.August:    0.13,
	time.September: 0.05,
	time.October:   0.05,
	time.November:  0.10,
	time.December:  0.14,
}

// SignupMultiplier returns the signup volume multiplier for the month of t.
func SignupMultiplier(t time.Time) float64 {
	if m, ok := signupMultipliers[t.Month()]; ok {
		return m
	}
	return 1.0
}

// SkipProbability returns the order skip probability for the month of t.
func SkipProbability(t time.Time) float64 {
	if p, ok := skipProbabilities[t.Month()]; ok {
		return p
	}
	return 0.05
}

// Season buckets a month into winter, spring, summer or fall.
func Season(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}
