package generator

import (
	"fmt"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// generateProducts materializes the product catalog table.
func (g *Generator) generateProducts() []models.Product {
	products := make([]models.Product, 0, len(catalog.Meals)+len(catalog.BeautyItems))
	nextID := 1

	activeDraw := []bool{true, true, true, false} // roughly 75% active

	for _, m := range catalog.Meals {
		products = append(products, models.Product{
			ProductID:     fmt.Sprintf("PROD%05d", nextID),
			ProductType:   "meal",
			ProductName:   m.Name,
			Category:      m.Category,
			CostToCompany: m.Cost,
			Calories:      m.Calories,
			RetailValue:   round2(m.Cost * catalog.MealPriceMarkup),
			Tags:          m.Tags,
			Active:        Choice(g.rng, activeDraw),
		})
		nextID++
	}

	for _, b := range catalog.BeautyItems {
		products = append(products, models.Product{
			ProductID:     fmt.Sprintf("PROD%05d", nextID),
			ProductType:   "beauty",
			ProductName:   b.Name,
			Category:      b.Category,
			CostToCompany: b.Cost,
			Calories:      -1,
			RetailValue:   b.RetailValue,
			Tags:          b.Tags,
			Active:        Choice(g.rng, activeDraw),
		})
		nextID++
	}

	return products
}

// hasAnyTag reports whether any of prefs appears in tags.
func hasAnyTag(tags, prefs []string) bool {
	for _, p := range prefs {
		for _, t := range tags {
			if t == p {
				return true
			}
		}
	}
	return false
}

// generateOrderItems expands every order into product line items. Meal
// selections are filtered by the customer's dietary preferences, falling
// back to the full meal catalog when the filter empties it. The order's
// discount is split evenly across its items.
func (g *Generator) generateOrderItems(
	orders []models.Order,
	subs []models.Subscription,
	prefs []models.Preference,
	products []models.Product,
) []models.OrderItem {
	var meals, beauty []models.Product
	for _, p := range products {
		if p.ProductType == "meal" {
			meals = append(meals, p)
		} else {
			beauty = append(beauty, p)
		}
	}

	subPlan := make(map[string]string, len(subs))
	for _, s := range subs {
		subPlan[s.SubscriptionID] = s.PlanType
	}
	dietary := make(map[string][]string, len(prefs))
	for _, p := range prefs {
		dietary[p.CustomerID] = p.DietaryPreferences
	}

	var items []models.OrderItem
	nextID := 1

	appendItem := func(order models.Order, p models.Product, linePrice, lineDiscount float64) {
		var retail *float64
		if p.ProductType == "beauty" {
			v := p.RetailValue
			retail = &v
		}
		items = append(items, models.OrderItem{
			ItemID:          fmt.Sprintf("ITEM%08d", nextID),
			OrderID:         order.OrderID,
			ProductID:       p.ProductID,
			ProductType:     p.ProductType,
			ProductName:     p.ProductName,
			ProductCategory: p.Category,
			Quantity:        1,
			UnitCost:        p.CostToCompany,
			LinePrice:       linePrice,
			LineDiscount:    lineDiscount,
			Calories:        p.Calories,
			RetailValue:     retail,
			Tags:            p.Tags,
		})
		nextID++
	}

	for _, order := range orders {
		planKey, ok := subPlan[order.SubscriptionID]
		if !ok {
			continue
		}
		plan, ok := catalog.PlanByKey(planKey)
		if !ok {
			continue
		}

		custDietary := dietary[order.CustomerID]
		hasRestriction := true
		for _, d := range custDietary {
			if d == "none" {
				hasRestriction = false
			}
		}

		var selected []models.Product

		if plan.Category == "meals" || plan.Category == "combo" {
			numMeals := plan.MealsPerWeek * 4 // four weeks per month

			available := meals
			if hasRestriction {
				var filtered []models.Product
				for _, m := range meals {
					if hasAnyTag(m.Tags, custDietary) {
						filtered = append(filtered, m)
					}
				}
				if len(filtered) > 0 {
					available = filtered
				}
			}

			for i := 0; i < numMeals; i++ {
				selected = append(selected, Choice(g.rng, available))
			}
		}

		if plan.Category == "beauty" || plan.Category == "combo" {
			selected = append(selected, Sample(g.rng, beauty, plan.ItemsPerMonth)...)
		}

		lineDiscount := 0.0
		if len(selected) > 0 && order.DiscountApplied > 0 {
			lineDiscount = round2(order.DiscountApplied / float64(len(selected)))
		}

		for _, p := range selected {
			var linePrice float64
			if p.ProductType == "meal" {
				linePrice = round2(p.CostToCompany * catalog.MealPriceMarkup)
			} else {
				linePrice = round2(p.RetailValue)
			}
			appendItem(order, p, linePrice, lineDiscount)
		}
	}

	return items
}
