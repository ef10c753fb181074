package generator

import (
	"math"
	"testing"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

func generateItemFixtures(t *testing.T, seed int64, n int) (*Generator, *models.Dataset) {
	t.Helper()
	g := newTestGenerator(t, seed, n, "2021-01-01", "2021-12-31")

	ds := &models.Dataset{}
	ds.Customers = g.generateCustomers()
	ds.Preferences = g.generatePreferences(ds.Customers)
	ds.Subscriptions = g.generateSubscriptions(ds.Customers)
	ds.Campaigns = g.generateCampaigns()
	ds.Orders, _ = g.generateOrders(ds.Subscriptions, ds.Campaigns)
	ds.Products = g.generateProducts()
	ds.OrderItems = g.generateOrderItems(ds.Orders, ds.Subscriptions, ds.Preferences, ds.Products)
	return g, ds
}

func TestGenerateProducts(t *testing.T) {
	g := newTestGenerator(t, 42, 10, "2021-01-01", "2021-12-31")
	products := g.generateProducts()

	if len(products) != len(catalog.Meals)+len(catalog.BeautyItems) {
		t.Fatalf("got %d products, want %d", len(products), len(catalog.Meals)+len(catalog.BeautyItems))
	}

	for _, p := range products {
		switch p.ProductType {
		case "meal":
			if p.Calories <= 0 {
				t.Errorf("meal %s has calories %d", p.ProductID, p.Calories)
			}
			want := round2(p.CostToCompany * catalog.MealPriceMarkup)
			if math.Abs(p.RetailValue-want) > 0.005 {
				t.Errorf("meal %s retail %.2f, want cost*%.1f = %.2f",
					p.ProductID, p.RetailValue, catalog.MealPriceMarkup, want)
			}
		case "beauty":
			if p.Calories != -1 {
				t.Errorf("beauty product %s has calories %d, want -1 sentinel", p.ProductID, p.Calories)
			}
		default:
			t.Errorf("product %s has unknown type %q", p.ProductID, p.ProductType)
		}
	}
}

func TestOrderItemCounts(t *testing.T) {
	_, ds := generateItemFixtures(t, 42, 150)

	subPlan := make(map[string]catalog.Plan, len(ds.Subscriptions))
	for _, s := range ds.Subscriptions {
		p, ok := catalog.PlanByKey(s.PlanType)
		if !ok {
			t.Fatalf("subscription %s has unknown plan %s", s.SubscriptionID, s.PlanType)
		}
		subPlan[s.SubscriptionID] = p
	}

	mealCount := make(map[string]int)
	beautyCount := make(map[string]int)
	for _, it := range ds.OrderItems {
		switch it.ProductType {
		case "meal":
			mealCount[it.OrderID]++
		case "beauty":
			beautyCount[it.OrderID]++
		}
	}

	for _, o := range ds.Orders {
		plan := subPlan[o.SubscriptionID]

		wantMeals := 0
		if plan.Category == "meals" || plan.Category == "combo" {
			wantMeals = plan.MealsPerWeek * 4
		}
		if mealCount[o.OrderID] != wantMeals {
			t.Errorf("order %s (%s) has %d meal items, want %d",
				o.OrderID, plan.Key, mealCount[o.OrderID], wantMeals)
		}

		wantBeauty := 0
		if plan.Category == "beauty" || plan.Category == "combo" {
			wantBeauty = plan.ItemsPerMonth
		}
		if beautyCount[o.OrderID] != wantBeauty {
			t.Errorf("order %s (%s) has %d beauty items, want %d",
				o.OrderID, plan.Key, beautyCount[o.OrderID], wantBeauty)
		}
	}
}

func TestOrderItemPricingAndDiscountSplit(t *testing.T) {
	_, ds := generateItemFixtures(t, 9, 150)

	discounts := make(map[string]float64, len(ds.Orders))
	for _, o := range ds.Orders {
		discounts[o.OrderID] = o.DiscountApplied
	}

	itemsPerOrder := make(map[string][]models.OrderItem)
	for _, it := range ds.OrderItems {
		itemsPerOrder[it.OrderID] = append(itemsPerOrder[it.OrderID], it)
	}

	for orderID, items := range itemsPerOrder {
		wantShare := 0.0
		if d := discounts[orderID]; d > 0 {
			wantShare = round2(d / float64(len(items)))
		}

		for _, it := range items {
			if it.LineDiscount != wantShare {
				t.Errorf("item %s discount %.2f, want even share %.2f", it.ItemID, it.LineDiscount, wantShare)
			}

			switch it.ProductType {
			case "meal":
				want := round2(it.UnitCost * catalog.MealPriceMarkup)
				if math.Abs(it.LinePrice-want) > 0.005 {
					t.Errorf("meal item %s priced %.2f, want %.2f", it.ItemID, it.LinePrice, want)
				}
				if it.RetailValue != nil {
					t.Errorf("meal item %s carries a retail value", it.ItemID)
				}
			case "beauty":
				if it.RetailValue == nil {
					t.Errorf("beauty item %s is missing its retail value", it.ItemID)
				} else if math.Abs(it.LinePrice-*it.RetailValue) > 0.005 {
					t.Errorf("beauty item %s priced %.2f, retail %.2f", it.ItemID, it.LinePrice, *it.RetailValue)
				}
			}
		}
	}
}

func TestDietaryFilterRespected(t *testing.T) {
	_, ds := generateItemFixtures(t, 31, 400)

	dietary := make(map[string][]string, len(ds.Preferences))
	for _, p := range ds.Preferences {
		dietary[p.CustomerID] = p.DietaryPreferences
	}
	orderCustomer := make(map[string]string, len(ds.Orders))
	for _, o := range ds.Orders {
		orderCustomer[o.OrderID] = o.CustomerID
	}

	// Restricted customers whose restriction is satisfiable must only get
	// matching meals. Pick vegan: the catalog has vegan meals, so the filter
	// never falls back.
	for _, it := range ds.OrderItems {
		if it.ProductType != "meal" {
			continue
		}
		prefs := dietary[orderCustomer[it.OrderID]]
		isVegan := false
		for _, d := range prefs {
			if d == "vegan" {
				isVegan = true
			}
		}
		if !isVegan {
			continue
		}
		if !hasAnyTag(it.Tags, prefs) {
			t.Errorf("item %s for a vegan customer has tags %v", it.ItemID, it.Tags)
		}
	}
}

func TestHasAnyTag(t *testing.T) {
	if !hasAnyTag([]string{"vegan", "gluten_free"}, []string{"keto", "vegan"}) {
		t.Error("shared tag should match")
	}
	if hasAnyTag([]string{"vegan"}, []string{"keto"}) {
		t.Error("disjoint tags should not match")
	}
	if hasAnyTag(nil, []string{"keto"}) {
		t.Error("empty tags should not match")
	}
}
