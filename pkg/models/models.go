package models

import "time"

// DateFormat is the serialization format for all date columns.
const DateFormat = "2006-01-02"

// SubscriptionStatus enumerates the subscription lifecycle states.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusUpgraded  SubscriptionStatus = "upgraded"
)

// DeliveryStatus enumerates order delivery outcomes.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryDelayed   DeliveryStatus = "delayed"
	DeliveryCancelled DeliveryStatus = "cancelled"
	DeliveryPending   DeliveryStatus = "pending"
)

// Customer is a single registered customer.
type Customer struct {
	CustomerID         string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	RegistrationDate   time.Time
	AcquisitionChannel string
	Age                int
	Gender             string
	ZipCode            string
	City               string
	State              string
	ReferredBy         string // customer_id of the referrer, empty when none
	IsNewYearSignup    bool
}

// Preference holds a customer's dietary and beauty preferences.
type Preference struct {
	CustomerID         string
	DietaryPreferences []string
	BeautyPreferences  []string
	SkinType           string
	Allergies          []string
	PreferredMealTime  string
	HouseholdSize      int
}

// Subscription is one plan period in a customer's subscription chain.
// MonthlyPrice is a snapshot of the plan price at creation; later catalog
// changes never alter history.
type Subscription struct {
	SubscriptionID string
	CustomerID     string
	PlanType       string
	PlanName       string
	MonthlyPrice   float64
	StartDate      time.Time
	EndDate        *time.Time
	Status         SubscriptionStatus
	BillingCycle   string
	AutoRenew      bool
}

// Order is one monthly billing/delivery cycle of a subscription.
type Order struct {
	OrderID          string
	SubscriptionID   string
	CustomerID       string
	OrderDate        time.Time
	DeliveryDate     *time.Time
	OrderTotal       float64
	DeliveryStatus   DeliveryStatus
	ShippingCost     float64
	DiscountApplied  float64
	PlanTypeAtOrder  string
	PlanPriceAtOrder float64
	CampaignID       string // empty when unattributed
	OrderDateKey     int
	YearMonth        string
}

// OrderItem is a materialized product selection within an order.
type OrderItem struct {
	ItemID          string
	OrderID         string
	ProductID       string
	ProductType     string
	ProductName     string
	ProductCategory string
	Quantity        int
	UnitCost        float64
	LinePrice       float64
	LineDiscount    float64
	Calories        int
	RetailValue     *float64
	Tags            []string
}

// ChurnEvent records the cancellation details of a churned subscription.
type ChurnEvent struct {
	ChurnID                string
	SubscriptionID         string
	CustomerID             string
	ChurnDate              time.Time
	SubscriptionLengthDays int
	ChurnReason            string
	AttemptedRetention     bool
	RetentionOfferAccepted bool
	FeedbackProvided       bool
	FeedbackText           string // empty when no feedback left
}

// Review is an optional customer review of a delivered order.
type Review struct {
	ReviewID            string
	OrderID             string
	CustomerID          string
	SubscriptionID      string
	ReviewDate          time.Time
	Rating              int
	ReviewTitle         string
	ReviewText          string // empty when no text left
	WouldRecommend      bool
	MealQualityRating   int
	BeautyQualityRating int
	DeliveryRating      int
	ValueRating         int
}

// Campaign is a marketing campaign with synthesized funnel metrics.
type Campaign struct {
	CampaignID         string
	CampaignName       string
	CampaignType       string
	StartDate          time.Time
	EndDate            time.Time
	Budget             float64
	TargetAudience     string
	OfferType          string
	OfferValue         int
	Impressions        int
	Clicks             int
	Conversions        int
	CTR                float64
	ConversionRate     float64
	CostPerAcquisition float64
}

// Product is a catalog entry offered in boxes.
type Product struct {
	ProductID     string
	ProductType   string
	ProductName   string
	Category      string
	CostToCompany float64
	Calories      int
	RetailValue   float64
	Tags          []string
	Active        bool
}

// PlanDim is one row of the plan dimension table.
type PlanDim struct {
	PlanKey       string
	PlanName      string
	Category      string
	MonthlyPrice  float64
	MealsPerWeek  int
	ItemsPerMonth int
}

// DateDim is one row of the date dimension table.
type DateDim struct {
	DateKey   int
	Date      time.Time
	Year      int
	Quarter   int
	Month     int
	Day       int
	DayOfWeek int // Monday = 1
	MonthName string
	YearMonth string
	IsWeekend bool
	Season    string
}

// MonthlySnapshot is a per-month subscription state row used for MRR metrics.
type MonthlySnapshot struct {
	SnapshotID     string
	SubscriptionID string
	CustomerID     string
	PlanType       string
	PlanName       string
	MonthStart     time.Time
	Status         SubscriptionStatus
	MRR            float64
}

// Dataset bundles every generated table. The pipeline fills it in a single
// pass; nothing is written to disk until the whole Dataset exists.
type Dataset struct {
	Customers        []Customer
	Preferences      []Preference
	Subscriptions    []Subscription
	Campaigns        []Campaign
	Orders           []Order
	Products         []Product
	OrderItems       []OrderItem
	ChurnEvents      []ChurnEvent
	Reviews          []Review
	PlanDim          []PlanDim
	DateDim          []DateDim
	MonthlySnapshots []MonthlySnapshot
}
