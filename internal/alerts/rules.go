package alerts

import (
	"github.com/google/uuid"

	"github.com/gorocky/warroom/internal/model"
)

// Observation is the per-(competitor, product) state a configured rule is
// checked against. Callers at the scrape boundary fill the stock flags from
// ScrapedProduct data; observations built from price snapshots leave both
// stock flags true, which keeps stock conditions inert.
type Observation struct {
	CurrentPrice    float64
	PreviousPrice   float64
	CurrentInStock  bool
	PreviousInStock bool
}

// Evaluate reports whether a rule fires for an observation. Disabled rules
// never fire. A zero previous price makes percentage conditions evaluate a
// 0% change rather than dividing by zero.
func Evaluate(rule model.AlertRule, obs Observation) bool {
	if !rule.Enabled {
		return false
	}

	diff := obs.CurrentPrice - obs.PreviousPrice
	var pctChange float64
	if obs.PreviousPrice > 0 {
		pctChange = diff / obs.PreviousPrice * 100
	}

	switch rule.Condition {
	case model.PriceDropPercentage:
		return pctChange <= -rule.Value
	case model.PriceDropAbsolute:
		return diff <= -rule.Value
	case model.PriceIncreasePercentage:
		return pctChange >= rule.Value
	case model.PriceIncreaseAbsolute:
		return diff >= rule.Value
	case model.PriceBelow:
		return obs.CurrentPrice < rule.Value
	case model.PriceAbove:
		return obs.CurrentPrice > rule.Value
	case model.OutOfStock:
		return obs.PreviousInStock && !obs.CurrentInStock
	case model.BackInStock:
		return !obs.PreviousInStock && obs.CurrentInStock
	default:
		return false
	}
}

// Fired returns every rule in the set that fires for the observation.
func Fired(rules []model.AlertRule, obs Observation) []model.AlertRule {
	var fired []model.AlertRule
	for _, rule := range rules {
		if Evaluate(rule, obs) {
			fired = append(fired, rule)
		}
	}
	return fired
}

// DefaultRules returns the preset rule set offered during competitor setup.
// Ids are generated fresh on every call.
func DefaultRules() []model.AlertRule {
	return []model.AlertRule{
		{ID: uuid.NewString(), Name: "Price drops more than 10%", Condition: model.PriceDropPercentage, Value: 10, Enabled: true},
		{ID: uuid.NewString(), Name: "Price drops more than 20%", Condition: model.PriceDropPercentage, Value: 20, Enabled: false},
		{ID: uuid.NewString(), Name: "Competitor undercuts by $5+", Condition: model.PriceDropAbsolute, Value: 5, Enabled: false},
		{ID: uuid.NewString(), Name: "Product goes out of stock", Condition: model.OutOfStock, Enabled: true},
		{ID: uuid.NewString(), Name: "Product back in stock", Condition: model.BackInStock, Enabled: true},
	}
}
