package generator

import (
	"fmt"
	"strings"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// generateChurnEvents records one detail event per cancelled subscription,
// and only those.
func (g *Generator) generateChurnEvents(subs []models.Subscription) []models.ChurnEvent {
	var events []models.ChurnEvent

	for _, sub := range subs {
		if sub.Status != models.StatusCancelled || sub.EndDate == nil {
			continue
		}

		event := models.ChurnEvent{
			ChurnID:                fmt.Sprintf("CHURN%06d", len(events)+1),
			SubscriptionID:         sub.SubscriptionID,
			CustomerID:             sub.CustomerID,
			ChurnDate:              *sub.EndDate,
			SubscriptionLengthDays: daysBetween(sub.StartDate, *sub.EndDate),
			ChurnReason:            Choice(g.rng, catalog.ChurnReasons),
			AttemptedRetention:     g.rng.Coin(),
			FeedbackProvided:       g.rng.Coin(),
		}
		if g.rng.Float64() > 0.5 {
			event.FeedbackText = g.rng.Faker.Sentence(8)
		}
		if event.AttemptedRetention {
			event.RetentionOfferAccepted = g.rng.Chance(0.15)
		}

		events = append(events, event)
	}

	return events
}

// clampRating draws a sub-category rating clustered around the overall
// rating, clamped to the 1..5 scale.
func (g *Generator) clampRating(rating int) int {
	lo, hi := rating-1, rating+1
	if lo < 1 {
		lo = 1
	}
	if hi > 5 {
		hi = 5
	}
	return g.rng.IntBetween(lo, hi)
}

// generateReviews samples 40% of delivered orders, without replacement,
// and produces internally correlated ratings for each.
func (g *Generator) generateReviews(orders []models.Order) []models.Review {
	var delivered []models.Order
	for _, o := range orders {
		if o.DeliveryStatus == models.DeliveryDelivered && o.DeliveryDate != nil {
			delivered = append(delivered, o)
		}
	}

	reviewed := Sample(g.rng, delivered, int(float64(len(delivered))*0.4))

	reviews := make([]models.Review, 0, len(reviewed))
	for i, order := range reviewed {
		rating := []int{1, 2, 3, 4, 5}[g.rng.WeightedIndex([]int{3, 5, 12, 35, 45})]

		review := models.Review{
			ReviewID:       fmt.Sprintf("REV%07d", i+1),
			OrderID:        order.OrderID,
			CustomerID:     order.CustomerID,
			SubscriptionID: order.SubscriptionID,
			ReviewDate:     order.DeliveryDate.AddDate(0, 0, g.rng.IntBetween(1, 10)),
			Rating:         rating,
			ReviewTitle:    strings.TrimSuffix(g.rng.Faker.Sentence(6), "."),
			WouldRecommend: rating >= 4,
		}
		if g.rng.Float64() > 0.3 {
			review.ReviewText = g.rng.Faker.Paragraph(1, g.rng.IntBetween(2, 4), 8, " ")
		}
		review.MealQualityRating = g.clampRating(rating)
		review.BeautyQualityRating = g.clampRating(rating)
		review.DeliveryRating = g.clampRating(rating)
		review.ValueRating = g.clampRating(rating)

		reviews = append(reviews, review)
	}

	return reviews
}
