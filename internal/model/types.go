package model

import "time"

// ProductPoint is one competitor's observed price for a SKU at a point in
// time. SKU uniqueness within a competitor's product list is assumed, not
// validated.
type ProductPoint struct {
	SKU      string   `json:"sku"`
	Price    float64  `json:"price"`
	Discount *float64 `json:"discount,omitempty"`
}

// CompetitorEntry groups one competitor's observed products within a snapshot.
type CompetitorEntry struct {
	CompetitorID string         `json:"competitor_id"`
	Products     []ProductPoint `json:"products"`
}

// Snapshot is a point-in-time capture across all tracked competitors.
// Snapshots are immutable once created; callers hold them chronologically,
// oldest first.
type Snapshot struct {
	Timestamp time.Time         `json:"timestamp"`
	Entries   []CompetitorEntry `json:"entries"`
}

// SKUMapping ties a competitor to one SKU it is tracked for.
type SKUMapping struct {
	SKU string `json:"sku"`
}

// Competitor describes a tracked seller. The union of all competitors'
// mappings defines the SKU universe the engine considers, whether or not
// price data was ever observed for a SKU.
type Competitor struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Mappings []SKUMapping `json:"mappings"`
}

// AlertCondition enumerates the predicates a configured rule can check.
type AlertCondition string

const (
	PriceDropPercentage     AlertCondition = "price_drop_percentage"
	PriceDropAbsolute       AlertCondition = "price_drop_absolute"
	PriceIncreasePercentage AlertCondition = "price_increase_percentage"
	PriceIncreaseAbsolute   AlertCondition = "price_increase_absolute"
	PriceBelow              AlertCondition = "price_below"
	PriceAbove              AlertCondition = "price_above"
	OutOfStock              AlertCondition = "out_of_stock"
	BackInStock             AlertCondition = "back_in_stock"
)

// AlertRule is a user-configured threshold. Rules are consumed by the
// engine, never owned by it; a disabled rule never fires.
type AlertRule struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Condition AlertCondition `json:"condition"`
	Value     float64        `json:"value"`
	Enabled   bool           `json:"enabled"`
}

// ScrapedProduct is what a marketplace adapter produces for one listing.
// It lives at the data-producer boundary; the engine only ever sees the
// ProductPoint the caller derives from it.
type ScrapedProduct struct {
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Seller      string    `json:"seller,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"review_count,omitempty"`
	InStock     bool      `json:"in_stock"`
	ScrapedAt   time.Time `json:"scraped_at"`
}
