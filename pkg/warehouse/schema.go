// Package warehouse loads the generated CSV tables into a SQL warehouse.
// The schema is declared explicitly per table and versioned, rather than
// inferred from column-name patterns.
package warehouse

import (
	"fmt"
	"strings"
)

// SchemaVersion is bumped whenever a table definition changes.
const SchemaVersion = 1

// ColumnType is the warehouse-agnostic column type.
type ColumnType string

const (
	TypeText  ColumnType = "text"
	TypeDate  ColumnType = "date"
	TypeInt   ColumnType = "int"
	TypeFloat ColumnType = "float"
	TypeBool  ColumnType = "bool"
)

// Column declares one table column.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Table declares one warehouse table and the CSV file that feeds it.
type Table struct {
	Name       string
	File       string
	PrimaryKey string
	Columns    []Column
}

// Tables lists every warehouse table in load order (dimensions first).
var Tables = []Table{
	{
		Name: "plan_dim", File: "plan_dim.csv", PrimaryKey: "plan_key",
		Columns: []Column{
			{Name: "plan_key", Type: TypeText},
			{Name: "plan_name", Type: TypeText},
			{Name: "category", Type: TypeText},
			{Name: "monthly_price", Type: TypeFloat},
			{Name: "meals_per_week", Type: TypeInt},
			{Name: "items_per_month", Type: TypeInt},
		},
	},
	{
		Name: "date_dim", File: "date_dim.csv", PrimaryKey: "date_key",
		Columns: []Column{
			{Name: "date_key", Type: TypeInt},
			{Name: "date", Type: TypeDate},
			{Name: "year", Type: TypeInt},
			{Name: "quarter", Type: TypeInt},
			{Name: "month", Type: TypeInt},
			{Name: "day", Type: TypeInt},
			{Name: "day_of_week", Type: TypeInt},
			{Name: "month_name", Type: TypeText},
			{Name: "year_month", Type: TypeText},
			{Name: "is_weekend", Type: TypeBool},
			{Name: "season", Type: TypeText},
		},
	},
	{
		Name: "customers", File: "customers.csv", PrimaryKey: "customer_id",
		Columns: []Column{
			{Name: "customer_id", Type: TypeText},
			{Name: "first_name", Type: TypeText},
			{Name: "last_name", Type: TypeText},
			{Name: "email", Type: TypeText},
			{Name: "phone", Type: TypeText},
			{Name: "registration_date", Type: TypeDate},
			{Name: "acquisition_channel", Type: TypeText},
			{Name: "age", Type: TypeInt},
			{Name: "gender", Type: TypeText},
			{Name: "zip_code", Type: TypeText},
			{Name: "city", Type: TypeText},
			{Name: "state", Type: TypeText},
			{Name: "referred_by_customer_id", Type: TypeText, Nullable: true},
			{Name: "is_new_year_signup", Type: TypeBool},
		},
	},
	{
		Name: "customer_preferences", File: "customer_preferences.csv", PrimaryKey: "customer_id",
		Columns: []Column{
			{Name: "customer_id", Type: TypeText},
			{Name: "dietary_preferences", Type: TypeText},
			{Name: "beauty_preferences", Type: TypeText},
			{Name: "skin_type", Type: TypeText},
			{Name: "allergies", Type: TypeText},
			{Name: "preferred_meal_time", Type: TypeText},
			{Name: "household_size", Type: TypeInt},
		},
	},
	{
		Name: "subscriptions", File: "subscriptions.csv", PrimaryKey: "subscription_id",
		Columns: []Column{
			{Name: "subscription_id", Type: TypeText},
			{Name: "customer_id", Type: TypeText},
			{Name: "plan_type", Type: TypeText},
			{Name: "plan_name", Type: TypeText},
			{Name: "monthly_price", Type: TypeFloat},
			{Name: "start_date", Type: TypeDate},
			{Name: "end_date", Type: TypeDate, Nullable: true},
			{Name: "status", Type: TypeText},
			{Name: "billing_cycle", Type: TypeText},
			{Name: "auto_renew", Type: TypeBool},
		},
	},
	{
		Name: "subscription_monthly", File: "subscription_monthly.csv", PrimaryKey: "snapshot_id",
		Columns: []Column{
			{Name: "snapshot_id", Type: TypeText},
			{Name: "subscription_id", Type: TypeText},
			{Name: "customer_id", Type: TypeText},
			{Name: "plan_type", Type: TypeText},
			{Name: "plan_name", Type: TypeText},
			{Name: "month_start", Type: TypeDate},
			{Name: "status", Type: TypeText},
			{Name: "mrr", Type: TypeFloat},
		},
	},
	{
		Name: "marketing_campaigns", File: "marketing_campaigns.csv", PrimaryKey: "campaign_id",
		Columns: []Column{
			{Name: "campaign_id", Type: TypeText},
			{Name: "campaign_name", Type: TypeText},
			{Name: "campaign_type", Type: TypeText},
			{Name: "start_date", Type: TypeDate},
			{Name: "end_date", Type: TypeDate},
			{Name: "budget", Type: TypeFloat},
			{Name: "target_audience", Type: TypeText},
			{Name: "offer_type", Type: TypeText},
			{Name: "offer_value", Type: TypeInt},
			{Name: "impressions", Type: TypeInt},
			{Name: "clicks", Type: TypeInt},
			{Name: "conversions", Type: TypeInt},
			{Name: "ctr", Type: TypeFloat},
			{Name: "conversion_rate", Type: TypeFloat},
			{Name: "cost_per_acquisition", Type: TypeFloat},
		},
	},
	{
		Name: "orders", File: "orders.csv", PrimaryKey: "order_id",
		Columns: []Column{
			{Name: "order_id", Type: TypeText},
			{Name: "subscription_id", Type: TypeText},
			{Name: "customer_id", Type: TypeText},
			{Name: "order_date", Type: TypeDate},
			{Name: "delivery_date", Type: TypeDate, Nullable: true},
			{Name: "order_total", Type: TypeFloat},
			{Name: "delivery_status", Type: TypeText},
			{Name: "shipping_cost", Type: TypeFloat},
			{Name: "discount_applied", Type: TypeFloat},
			{Name: "plan_type_at_order", Type: TypeText},
			{Name: "plan_price_at_order", Type: TypeFloat},
			{Name: "campaign_id", Type: TypeText, Nullable: true},
			{Name: "order_date_key", Type: TypeInt},
			{Name: "year_month", Type: TypeText},
		},
	},
	{
		Name: "order_items", File: "order_items.csv", PrimaryKey: "item_id",
		Columns: []Column{
			{Name: "item_id", Type: TypeText},
			{Name: "order_id", Type: TypeText},
			{Name: "product_id", Type: TypeText},
			{Name: "product_type", Type: TypeText},
			{Name: "product_name", Type: TypeText},
			{Name: "product_category", Type: TypeText},
			{Name: "quantity", Type: TypeInt},
			{Name: "unit_cost", Type: TypeFloat},
			{Name: "line_price", Type: TypeFloat},
			{Name: "line_discount", Type: TypeFloat},
			{Name: "calories", Type: TypeInt},
			{Name: "retail_value", Type: TypeFloat, Nullable: true},
			{Name: "tags", Type: TypeText},
		},
	},
	{
		Name: "churn_events", File: "churn_events.csv", PrimaryKey: "churn_id",
		Columns: []Column{
			{Name: "churn_id", Type: TypeText},
			{Name: "subscription_id", Type: TypeText},
			{Name: "customer_id", Type: TypeText},
			{Name: "churn_date", Type: TypeDate},
			{Name: "subscription_length_days", Type: TypeInt},
			{Name: "churn_reason", Type: TypeText},
			{Name: "attempted_retention", Type: TypeBool},
			{Name: "retention_offer_accepted", Type: TypeBool},
			{Name: "feedback_provided", Type: TypeBool},
			{Name: "feedback_text", Type: TypeText, Nullable: true},
		},
	},
	{
		Name: "reviews", File: "reviews.csv", PrimaryKey: "review_id",
		Columns: []Column{
			{Name: "review_id", Type: TypeText},
			{Name: "order_id", Type: TypeText},
			{Name: "customer_id", Type: TypeText},
			{Name: "subscription_id", Type: TypeText},
			{Name: "review_date", Type: TypeDate},
			{Name: "rating", Type: TypeInt},
			{Name: "review_title", Type: TypeText},
			{Name: "review_text", Type: TypeText, Nullable: true},
			{Name: "would_recommend", Type: TypeBool},
			{Name: "meal_quality_rating", Type: TypeInt},
			{Name: "beauty_quality_rating", Type: TypeInt},
			{Name: "delivery_rating", Type: TypeInt},
			{Name: "value_rating", Type: TypeInt},
		},
	},
	{
		Name: "product_catalog", File: "product_catalog.csv", PrimaryKey: "product_id",
		Columns: []Column{
			{Name: "product_id", Type: TypeText},
			{Name: "product_type", Type: TypeText},
			{Name: "product_name", Type: TypeText},
			{Name: "category", Type: TypeText},
			{Name: "cost_to_company", Type: TypeFloat},
			{Name: "calories", Type: TypeInt},
			{Name: "retail_value", Type: TypeFloat},
			{Name: "tags", Type: TypeText},
			{Name: "active", Type: TypeBool},
		},
	},
}

// sqlType maps a warehouse-agnostic type onto a driver dialect.
func sqlType(driver string, t ColumnType) string {
	switch t {
	case TypeDate:
		if driver == "sqlite3" {
			return "TEXT"
		}
		return "DATE"
	case TypeInt:
		return "INTEGER"
	case TypeFloat:
		if driver == "sqlite3" {
			return "REAL"
		}
		return "DOUBLE PRECISION"
	case TypeBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// CreateStatement renders the CREATE TABLE DDL for the driver dialect.
func (t Table) CreateStatement(driver string) string {
	var cols []string
	for _, c := range t.Columns {
		def := fmt.Sprintf("%s %s", c.Name, sqlType(driver, c.Type))
		if c.Name == t.PrimaryKey {
			def += " PRIMARY KEY"
		} else if !c.Nullable {
			def += " NOT NULL"
		}
		cols = append(cols, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)", t.Name, strings.Join(cols, ",\n  "))
}

// ColumnNames returns the declared column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
