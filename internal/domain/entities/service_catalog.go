package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceCatalogEntry is a repair the shop offers at a base price.

type ServiceCatalogEntry struct {
	ServiceName              string          `json:"service_name"`
	BasePrice                decimal.Decimal `json:"base_price"`
	EstimatedDurationMinutes int             `json:"estimated_duration_minutes"`
	IsActive                 bool            `json:"is_active"`
	Category                 string          `json:"category,omitempty"`
}

func (e ServiceCatalogEntry) Validate() error {
	if strings.TrimSpace(e.ServiceName) == "" {
		return fmt.Errorf("%w: service_name is required", ErrInvalidCatalogEntry)
	}
	if e.BasePrice.IsNegative() {
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidCatalogEntry)
	}
	if e.EstimatedDurationMinutes <= 0 {
		return fmt.Errorf("%w: estimated_duration_minutes must be positive", ErrInvalidCatalogEntry)
	}
	return nil
}

// DefaultCatalog is the shop's starting price list.
func DefaultCatalog() []ServiceCatalogEntry {
	entry := func(name, price string, minutes int, category string) ServiceCatalogEntry {
		return ServiceCatalogEntry{
			ServiceName:              name,
			BasePrice:                decimal.RequireFromString(price),
			EstimatedDurationMinutes: minutes,
			IsActive:                 true,
			Category:                 category,
		}
	}
	return []ServiceCatalogEntry{
		entry("Screen Replacement", "89.99", 45, "Display"),
		entry("Battery Replacement", "49.99", 30, "Power"),
		entry("Charging Port Repair", "39.99", 30, "Power"),
		entry("Camera Repair", "79.99", 60, "Camera"),
		entry("Water Damage Repair", "99.99", 120, "General"),
		entry("Speaker Replacement", "44.99", 40, "Audio"),
		entry("Back Glass Replacement", "69.99", 45, "Display"),
		entry("Software Troubleshooting", "29.99", 30, "Software"),
	}
}
