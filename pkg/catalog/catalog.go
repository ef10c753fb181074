// Package catalog holds the static reference data of the NourishBox
// business: subscription plans, the meal and beauty product catalog,
// acquisition channels, churn reasons and preference vocabularies.
// Pure data, no logic.
package catalog

// Plan describes one subscription plan. MealsPerWeek / ItemsPerMonth are
// -1 when the plan does not include that product line.
type Plan struct {
	Key           string
	Name          string
	Price         float64
	MealsPerWeek  int
	ItemsPerMonth int
	Category      string // meals, beauty or combo
}

// Plans lists the six subscription plans in a fixed order. Generation code
// must iterate this slice, never a map, so draw order stays deterministic.
var Plans = []Plan{
	{Key: "meal_basic", Name: "Meal Basic", Price: 49.99, MealsPerWeek: 3, ItemsPerMonth: -1, Category: "meals"},
	{Key: "meal_plus", Name: "Meal Plus", Price: 79.99, MealsPerWeek: 5, ItemsPerMonth: -1, Category: "meals"},
	{Key: "beauty_essentials", Name: "Beauty Essentials", Price: 35.99, MealsPerWeek: -1, ItemsPerMonth: 4, Category: "beauty"},
	{Key: "beauty_premium", Name: "Beauty Premium", Price: 59.99, MealsPerWeek: -1, ItemsPerMonth: 6, Category: "beauty"},
	{Key: "combo_starter", Name: "Combo Starter", Price: 74.99, MealsPerWeek: 3, ItemsPerMonth: 3, Category: "combo"},
	{Key: "combo_deluxe", Name: "Combo Deluxe", Price: 119.99, MealsPerWeek: 5, ItemsPerMonth: 6, Category: "combo"},
}

// PlanByKey returns the plan with the given key, or false when unknown.
func PlanByKey(key string) (Plan, bool) {
	for _, p := range Plans {
		if p.Key == key {
			return p, true
		}
	}
	return Plan{}, false
}

// MealPriceMarkup is the multiplier applied to a meal's unit cost to get
// its line price. Beauty items sell at their retail value.
const MealPriceMarkup = 1.8

// AcquisitionChannels and their weights for the customer generator.
var (
	AcquisitionChannels = []string{
		"organic_search", "paid_social", "referral", "instagram",
		"facebook_ads", "google_ads", "partnership", "direct",
	}
	AcquisitionChannelWeights = []int{15, 20, 18, 12, 15, 10, 7, 3}
)

// Preference vocabularies. DietaryPreferences[0] is the "none" sentinel.
var (
	DietaryPreferences = []string{"none", "vegetarian", "vegan", "gluten_free", "keto", "paleo", "dairy_free", "low_carb"}
	BeautyPreferences  = []string{"anti_aging", "acne_treatment", "hydration", "natural_organic", "fragrance_free", "vegan_beauty", "luxury"}
	SkinTypes          = []string{"normal", "oily", "dry", "combination", "sensitive"}
	Allergens          = []string{"nuts", "soy", "shellfish", "eggs", "none"}
	MealTimes          = []string{"lunch", "dinner", "both"}
)

// ChurnReasons are drawn uniformly when a churn event is recorded.
var ChurnReasons = []string{
	"too_expensive", "moving", "product_quality", "variety_lacking",
	"dietary_needs_changed", "prefer_competitor", "financial_reasons",
	"delivery_issues", "too_much_food", "lifestyle_change", "other",
}

// CampaignTypes, audiences and offer types for the campaign generator.
var (
	CampaignTypes    = []string{"email", "social_media", "influencer", "paid_ads", "referral_bonus", "partnership"}
	TargetAudiences  = []string{"new_customers", "existing_customers", "churned_customers", "all"}
	OfferTypes       = []string{"discount_percent", "discount_fixed", "free_trial", "free_gift", "none"}
	OfferValues      = []int{10, 15, 20, 25, 30, 50}
)

// Meal is a meal product definition.
type Meal struct {
	Name     string
	Category string
	Calories int
	Cost     float64
	Tags     []string
}

// Beauty is a beauty product definition.
type Beauty struct {
	Name        string
	Category    string
	Cost        float64
	RetailValue float64
	Tags        []string
}

// Meals is the meal product catalog.
var Meals = []Meal{
	{Name: "Grilled Lemon Herb Chicken", Category: "protein", Calories: 450, Cost: 6.50, Tags: []string{"gluten_free", "dairy_free", "high_protein"}},
	{Name: "Teriyaki Salmon Bowl", Category: "protein", Calories: 520, Cost: 8.00, Tags: []string{"gluten_free", "dairy_free", "omega3"}},
	{Name: "Grass-Fed Beef Stir Fry", Category: "protein", Calories: 480, Cost: 7.50, Tags: []string{"gluten_free", "dairy_free", "high_protein"}},
	{Name: "Turkey Meatballs Marinara", Category: "protein", Calories: 410, Cost: 6.00, Tags: []string{"high_protein"}},
	{Name: "Quinoa Buddha Bowl", Category: "vegetarian", Calories: 380, Cost: 5.50, Tags: []string{"vegetarian", "vegan", "gluten_free", "high_fiber"}},
	{Name: "Chickpea Tikka Masala", Category: "vegetarian", Calories: 420, Cost: 5.00, Tags: []string{"vegetarian", "vegan", "gluten_free"}},
	{Name: "Spinach & Feta Stuffed Peppers", Category: "vegetarian", Calories: 340, Cost: 5.25, Tags: []string{"vegetarian", "gluten_free"}},
	{Name: "Black Bean Enchilada Bowl", Category: "vegetarian", Calories: 390, Cost: 4.75, Tags: []string{"vegetarian", "vegan", "gluten_free"}},
	{Name: "Cauliflower Crust Pizza", Category: "low_carb", Calories: 320, Cost: 6.50, Tags: []string{"keto", "low_carb", "gluten_free"}},
	{Name: "Zucchini Noodle Carbonara", Category: "low_carb", Calories: 360, Cost: 6.00, Tags: []string{"keto", "low_carb", "gluten_free"}},
	{Name: "Avocado Chicken Salad", Category: "low_carb", Calories: 400, Cost: 7.00, Tags: []string{"keto", "low_carb", "gluten_free", "dairy_free"}},
	{Name: "Paleo Shepherd's Pie", Category: "paleo", Calories: 440, Cost: 7.25, Tags: []string{"paleo", "gluten_free", "dairy_free"}},
	{Name: "Sweet Potato & Bison Chili", Category: "paleo", Calories: 390, Cost: 7.50, Tags: []string{"paleo", "gluten_free", "dairy_free"}},
	{Name: "Lentil Curry Power Bowl", Category: "vegan", Calories: 370, Cost: 4.50, Tags: []string{"vegan", "vegetarian", "gluten_free"}},
	{Name: "Tofu Pad Thai", Category: "vegan", Calories: 420, Cost: 5.50, Tags: []string{"vegan", "vegetarian"}},
	{Name: "Mediterranean Falafel Wrap", Category: "vegan", Calories: 380, Cost: 5.00, Tags: []string{"vegan", "vegetarian"}},
}

// BeautyItems is the beauty product catalog.
var BeautyItems = []Beauty{
	{Name: "Vitamin C Brightening Serum", Category: "skincare_face", Cost: 18.00, RetailValue: 45.00, Tags: []string{"anti_aging", "hydration"}},
	{Name: "Hyaluronic Acid Moisturizer", Category: "skincare_face", Cost: 15.00, RetailValue: 38.00, Tags: []string{"hydration", "fragrance_free"}},
	{Name: "Retinol Night Cream", Category: "skincare_face", Cost: 22.00, RetailValue: 55.00, Tags: []string{"anti_aging", "luxury"}},
	{Name: "Niacinamide Pore Refining Toner", Category: "skincare_face", Cost: 12.00, RetailValue: 28.00, Tags: []string{"acne_treatment"}},
	{Name: "Gentle Foaming Cleanser", Category: "skincare_face", Cost: 10.00, RetailValue: 24.00, Tags: []string{"fragrance_free", "natural_organic"}},
	{Name: "Clay Detox Mask", Category: "skincare_face", Cost: 14.00, RetailValue: 32.00, Tags: []string{"acne_treatment", "natural_organic"}},
	{Name: "Rose Water Facial Mist", Category: "skincare_face", Cost: 8.00, RetailValue: 18.00, Tags: []string{"hydration", "natural_organic"}},
	{Name: "Peptide Eye Cream", Category: "skincare_face", Cost: 20.00, RetailValue: 48.00, Tags: []string{"anti_aging", "luxury"}},
	{Name: "Shea Butter Body Lotion", Category: "skincare_body", Cost: 11.00, RetailValue: 26.00, Tags: []string{"hydration", "natural_organic"}},
	{Name: "Coffee Scrub Exfoliator", Category: "skincare_body", Cost: 13.00, RetailValue: 30.00, Tags: []string{"natural_organic"}},
	{Name: "Coconut Oil Body Butter", Category: "skincare_body", Cost: 12.00, RetailValue: 28.00, Tags: []string{"hydration", "vegan_beauty"}},
	{Name: "Tinted Lip Balm SPF 15", Category: "makeup", Cost: 7.00, RetailValue: 16.00, Tags: []string{"natural_organic"}},
	{Name: "Mineral Foundation Powder", Category: "makeup", Cost: 16.00, RetailValue: 38.00, Tags: []string{"natural_organic", "fragrance_free"}},
	{Name: "Lengthening Mascara", Category: "makeup", Cost: 9.00, RetailValue: 22.00, Tags: []string{"vegan_beauty"}},
	{Name: "Cream Blush Stick", Category: "makeup", Cost: 11.00, RetailValue: 26.00, Tags: []string{"natural_organic"}},
	{Name: "Argan Oil Hair Mask", Category: "haircare", Cost: 13.00, RetailValue: 32.00, Tags: []string{"hydration", "natural_organic"}},
	{Name: "Volumizing Shampoo Bar", Category: "haircare", Cost: 9.00, RetailValue: 20.00, Tags: []string{"natural_organic", "vegan_beauty"}},
	{Name: "Leave-In Conditioner Spray", Category: "haircare", Cost: 10.00, RetailValue: 24.00, Tags: []string{"hydration"}},
	{Name: "Lavender Bath Salts", Category: "wellness", Cost: 8.00, RetailValue: 18.00, Tags: []string{"natural_organic"}},
	{Name: "Green Tea Face Mask Sheet", Category: "wellness", Cost: 3.50, RetailValue: 8.00, Tags: []string{"hydration", "natural_organic"}},
	{Name: "Jade Facial Roller", Category: "wellness", Cost: 12.00, RetailValue: 28.00, Tags: []string{"luxury", "anti_aging"}},
}
