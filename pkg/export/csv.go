// Package export writes a generated Dataset to flat files. Dates
// serialize as YYYY-MM-DD, null fields as the empty string, and tag sets
// as comma-separated lists; nothing here should be consulted for
// in-memory semantics.
package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// WriteCSV writes every table of the dataset to dir, one CSV per table
// with a header row. It is called only after the whole in-memory pipeline
// has succeeded, so a failed run leaves no partial output behind.
func WriteCSV(ds *models.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tables := []struct {
		name  string
		write func(w *csv.Writer) error
	}{
		{"customers.csv", func(w *csv.Writer) error { return writeCustomers(w, ds.Customers) }},
		{"customer_preferences.csv", func(w *csv.Writer) error { return writePreferences(w, ds.Preferences) }},
		{"subscriptions.csv", func(w *csv.Writer) error { return writeSubscriptions(w, ds.Subscriptions) }},
		{"orders.csv", func(w *csv.Writer) error { return writeOrders(w, ds.Orders) }},
		{"order_items.csv", func(w *csv.Writer) error { return writeOrderItems(w, ds.OrderItems) }},
		{"churn_events.csv", func(w *csv.Writer) error { return writeChurnEvents(w, ds.ChurnEvents) }},
		{"reviews.csv", func(w *csv.Writer) error { return writeReviews(w, ds.Reviews) }},
		{"marketing_campaigns.csv", func(w *csv.Writer) error { return writeCampaigns(w, ds.Campaigns) }},
		{"product_catalog.csv", func(w *csv.Writer) error { return writeProducts(w, ds.Products) }},
		{"plan_dim.csv", func(w *csv.Writer) error { return writePlanDim(w, ds.PlanDim) }},
		{"date_dim.csv", func(w *csv.Writer) error { return writeDateDim(w, ds.DateDim) }},
		{"subscription_monthly.csv", func(w *csv.Writer) error { return writeSnapshots(w, ds.MonthlySnapshots) }},
	}

	for _, t := range tables {
		path := filepath.Join(dir, t.name)
		if err := writeFile(path, t.write); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.name, err)
		}
		log.Printf("✅ wrote %s", path)
	}

	return nil
}

func writeFile(path string, write func(w *csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func fmtDate(t time.Time) string {
	return t.Format(models.DateFormat)
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtDate(*t)
}

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtBool(v bool) string {
	return strconv.FormatBool(v)
}

func fmtTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func writeCustomers(w *csv.Writer, rows []models.Customer) error {
	header := []string{
		"customer_id", "first_name", "last_name", "email", "phone",
		"registration_date", "acquisition_channel", "age", "gender",
		"zip_code", "city", "state", "referred_by_customer_id", "is_new_year_signup",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.CustomerID, r.FirstName, r.LastName, r.Email, r.Phone,
			fmtDate(r.RegistrationDate), r.AcquisitionChannel, strconv.Itoa(r.Age), r.Gender,
			r.ZipCode, r.City, r.State, r.ReferredBy, fmtBool(r.IsNewYearSignup),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writePreferences(w *csv.Writer, rows []models.Preference) error {
	header := []string{
		"customer_id", "dietary_preferences", "beauty_preferences",
		"skin_type", "allergies", "preferred_meal_time", "household_size",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.CustomerID, fmtTags(r.DietaryPreferences), fmtTags(r.BeautyPreferences),
			r.SkinType, fmtTags(r.Allergies), r.PreferredMealTime, strconv.Itoa(r.HouseholdSize),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeSubscriptions(w *csv.Writer, rows []models.Subscription) error {
	header := []string{
		"subscription_id", "customer_id", "plan_type", "plan_name",
		"monthly_price", "start_date", "end_date", "status", "billing_cycle", "auto_renew",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.SubscriptionID, r.CustomerID, r.PlanType, r.PlanName,
			fmtMoney(r.MonthlyPrice), fmtDate(r.StartDate), fmtDatePtr(r.EndDate),
			string(r.Status), r.BillingCycle, fmtBool(r.AutoRenew),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeOrders(w *csv.Writer, rows []models.Order) error {
	header := []string{
		"order_id", "subscription_id", "customer_id", "order_date", "delivery_date",
		"order_total", "delivery_status", "shipping_cost", "discount_applied",
		"plan_type_at_order", "plan_price_at_order", "campaign_id", "order_date_key", "year_month",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.OrderID, r.SubscriptionID, r.CustomerID, fmtDate(r.OrderDate), fmtDatePtr(r.DeliveryDate),
			fmtMoney(r.OrderTotal), string(r.DeliveryStatus), fmtMoney(r.ShippingCost), fmtMoney(r.DiscountApplied),
			r.PlanTypeAtOrder, fmtMoney(r.PlanPriceAtOrder), r.CampaignID, strconv.Itoa(r.OrderDateKey), r.YearMonth,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeOrderItems(w *csv.Writer, rows []models.OrderItem) error {
	header := []string{
		"item_id", "order_id", "product_id", "product_type", "product_name",
		"product_category", "quantity", "unit_cost", "line_price", "line_discount",
		"calories", "retail_value", "tags",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		retail := ""
		if r.RetailValue != nil {
			retail = fmtMoney(*r.RetailValue)
		}
		rec := []string{
			r.ItemID, r.OrderID, r.ProductID, r.ProductType, r.ProductName,
			r.ProductCategory, strconv.Itoa(r.Quantity), fmtMoney(r.UnitCost),
			fmtMoney(r.LinePrice), fmtMoney(r.LineDiscount),
			strconv.Itoa(r.Calories), retail, fmtTags(r.Tags),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeChurnEvents(w *csv.Writer, rows []models.ChurnEvent) error {
	header := []string{
		"churn_id", "subscription_id", "customer_id", "churn_date",
		"subscription_length_days", "churn_reason", "attempted_retention",
		"retention_offer_accepted", "feedback_provided", "feedback_text",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.ChurnID, r.SubscriptionID, r.CustomerID, fmtDate(r.ChurnDate),
			strconv.Itoa(r.SubscriptionLengthDays), r.ChurnReason, fmtBool(r.AttemptedRetention),
			fmtBool(r.RetentionOfferAccepted), fmtBool(r.FeedbackProvided), r.FeedbackText,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeReviews(w *csv.Writer, rows []models.Review) error {
	header := []string{
		"review_id", "order_id", "customer_id", "subscription_id", "review_date",
		"rating", "review_title", "review_text", "would_recommend",
		"meal_quality_rating", "beauty_quality_rating", "delivery_rating", "value_rating",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.ReviewID, r.OrderID, r.CustomerID, r.SubscriptionID, fmtDate(r.ReviewDate),
			strconv.Itoa(r.Rating), r.ReviewTitle, r.ReviewText, fmtBool(r.WouldRecommend),
			strconv.Itoa(r.MealQualityRating), strconv.Itoa(r.BeautyQualityRating),
			strconv.Itoa(r.DeliveryRating), strconv.Itoa(r.ValueRating),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeCampaigns(w *csv.Writer, rows []models.Campaign) error {
	header := []string{
		"campaign_id", "campaign_name", "campaign_type", "start_date", "end_date",
		"budget", "target_audience", "offer_type", "offer_value",
		"impressions", "clicks", "conversions", "ctr", "conversion_rate", "cost_per_acquisition",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.CampaignID, r.CampaignName, r.CampaignType, fmtDate(r.StartDate), fmtDate(r.EndDate),
			fmtMoney(r.Budget), r.TargetAudience, r.OfferType, strconv.Itoa(r.OfferValue),
			strconv.Itoa(r.Impressions), strconv.Itoa(r.Clicks), strconv.Itoa(r.Conversions),
			fmtMoney(r.CTR), fmtMoney(r.ConversionRate), fmtMoney(r.CostPerAcquisition),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeProducts(w *csv.Writer, rows []models.Product) error {
	header := []string{
		"product_id", "product_type", "product_name", "category",
		"cost_to_company", "calories", "retail_value", "tags", "active",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.ProductID, r.ProductType, r.ProductName, r.Category,
			fmtMoney(r.CostToCompany), strconv.Itoa(r.Calories), fmtMoney(r.RetailValue),
			fmtTags(r.Tags), fmtBool(r.Active),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writePlanDim(w *csv.Writer, rows []models.PlanDim) error {
	header := []string{"plan_key", "plan_name", "category", "monthly_price", "meals_per_week", "items_per_month"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.PlanKey, r.PlanName, r.Category, fmtMoney(r.MonthlyPrice),
			strconv.Itoa(r.MealsPerWeek), strconv.Itoa(r.ItemsPerMonth),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeDateDim(w *csv.Writer, rows []models.DateDim) error {
	header := []string{
		"date_key", "date", "year", "quarter", "month", "day",
		"day_of_week", "month_name", "year_month", "is_weekend", "season",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.DateKey), fmtDate(r.Date), strconv.Itoa(r.Year), strconv.Itoa(r.Quarter),
			strconv.Itoa(r.Month), strconv.Itoa(r.Day), strconv.Itoa(r.DayOfWeek),
			r.MonthName, r.YearMonth, fmtBool(r.IsWeekend), r.Season,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeSnapshots(w *csv.Writer, rows []models.MonthlySnapshot) error {
	header := []string{
		"snapshot_id", "subscription_id", "customer_id", "plan_type",
		"plan_name", "month_start", "status", "mrr",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.SnapshotID, r.SubscriptionID, r.CustomerID, r.PlanType,
			r.PlanName, fmtDate(r.MonthStart), string(r.Status), fmtMoney(r.MRR),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
