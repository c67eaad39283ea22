package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pricing holds the simulated charges for promotion and subscriptions.
type Pricing struct {
	PromotionFee float64            `yaml:"promotion_fee"`
	Plans        map[string]float64 `yaml:"plans"`
}

func DefaultPricing() *Pricing {
	return &Pricing{
		PromotionFee: 49.99,
		Plans: map[string]float64{
			"basic": 19.99,
			"pro":   49.99,
		},
	}
}

// LoadPricing reads a YAML pricing file. An empty path yields the defaults;
// keys missing from the file keep their default values.
func LoadPricing(path string) (*Pricing, error) {
	pricing := DefaultPricing()
	if path == "" {
		return pricing, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pricing file: %w", err)
	}

	var file Pricing
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if file.PromotionFee < 0 {
		return nil, fmt.Errorf("promotion_fee must not be negative")
	}
	if file.PromotionFee > 0 {
		pricing.PromotionFee = file.PromotionFee
	}
	for name, price := range file.Plans {
		if price < 0 {
			return nil, fmt.Errorf("plan %q has a negative price", name)
		}
		pricing.Plans[strings.ToLower(strings.TrimSpace(name))] = price
	}

	return pricing, nil
}

func (p *Pricing) PlanPrice(name string) (float64, bool) {
	price, ok := p.Plans[name]
	return price, ok
}
