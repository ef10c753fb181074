package generator

import (
	"testing"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

func TestChurnEventsMatchCancelledSubscriptions(t *testing.T) {
	g := newTestGenerator(t, 42, 1500, "2021-01-01", "2022-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)
	events := g.generateChurnEvents(subs)

	cancelled := make(map[string]models.Subscription)
	for _, s := range subs {
		if s.Status == models.StatusCancelled {
			cancelled[s.SubscriptionID] = s
		}
	}

	if len(events) != len(cancelled) {
		t.Fatalf("got %d churn events for %d cancelled subscriptions", len(events), len(cancelled))
	}

	seen := make(map[string]bool, len(events))
	for _, e := range events {
		if seen[e.SubscriptionID] {
			t.Errorf("subscription %s has multiple churn events", e.SubscriptionID)
		}
		seen[e.SubscriptionID] = true

		sub, ok := cancelled[e.SubscriptionID]
		if !ok {
			t.Errorf("churn event %s references a non-cancelled subscription", e.ChurnID)
			continue
		}
		if !e.ChurnDate.Equal(*sub.EndDate) {
			t.Errorf("churn event %s date %s, subscription ended %s", e.ChurnID, e.ChurnDate, sub.EndDate)
		}
		if want := daysBetween(sub.StartDate, *sub.EndDate); e.SubscriptionLengthDays != want {
			t.Errorf("churn event %s length %d days, want %d", e.ChurnID, e.SubscriptionLengthDays, want)
		}
		if e.ChurnReason == "" {
			t.Errorf("churn event %s has no reason", e.ChurnID)
		}
		if e.RetentionOfferAccepted && !e.AttemptedRetention {
			t.Errorf("churn event %s accepted an offer that was never made", e.ChurnID)
		}
	}
}

func TestReviewsOnlyForDeliveredOrders(t *testing.T) {
	g := newTestGenerator(t, 11, 400, "2021-01-01", "2021-12-31")
	customers := g.generateCustomers()
	subs := g.generateSubscriptions(customers)
	campaigns := g.generateCampaigns()
	orders, _ := g.generateOrders(subs, campaigns)
	reviews := g.generateReviews(orders)

	byID := make(map[string]models.Order, len(orders))
	delivered := 0
	for _, o := range orders {
		byID[o.OrderID] = o
		if o.DeliveryStatus == models.DeliveryDelivered {
			delivered++
		}
	}

	if want := int(float64(delivered) * 0.4); len(reviews) != want {
		t.Errorf("got %d reviews for %d delivered orders, want %d", len(reviews), delivered, want)
	}

	reviewedOrders := make(map[string]bool, len(reviews))
	for _, r := range reviews {
		if reviewedOrders[r.OrderID] {
			t.Errorf("order %s reviewed twice", r.OrderID)
		}
		reviewedOrders[r.OrderID] = true

		o, ok := byID[r.OrderID]
		if !ok {
			t.Errorf("review %s references unknown order %s", r.ReviewID, r.OrderID)
			continue
		}
		if o.DeliveryStatus != models.DeliveryDelivered {
			t.Errorf("review %s on a %s order", r.ReviewID, o.DeliveryStatus)
		}
		if !r.ReviewDate.After(*o.DeliveryDate) {
			t.Errorf("review %s dated before its delivery", r.ReviewID)
		}

		if r.Rating < 1 || r.Rating > 5 {
			t.Errorf("review %s rating %d", r.ReviewID, r.Rating)
		}
		for _, sub := range []int{r.MealQualityRating, r.BeautyQualityRating, r.DeliveryRating, r.ValueRating} {
			if sub < 1 || sub > 5 {
				t.Errorf("review %s sub-rating %d out of range", r.ReviewID, sub)
			}
			if sub < r.Rating-1 || sub > r.Rating+1 {
				t.Errorf("review %s sub-rating %d strays from overall %d", r.ReviewID, sub, r.Rating)
			}
		}
		if r.WouldRecommend != (r.Rating >= 4) {
			t.Errorf("review %s recommendation inconsistent with rating %d", r.ReviewID, r.Rating)
		}
	}
}

func TestClampRating(t *testing.T) {
	g := newTestGenerator(t, 3, 10, "2021-01-01", "2021-12-31")
	for rating := 1; rating <= 5; rating++ {
		for i := 0; i < 200; i++ {
			got := g.clampRating(rating)
			if got < 1 || got > 5 {
				t.Fatalf("clampRating(%d) = %d", rating, got)
			}
			if got < rating-1 || got > rating+1 {
				t.Fatalf("clampRating(%d) = %d strays more than one step", rating, got)
			}
		}
	}
}
