package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/domain/schedule"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type dayHoursConfig struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type serviceConfig struct {
	Name            string `yaml:"name"`
	BasePrice       string `yaml:"base_price"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Category        string `yaml:"category"`
	Active          *bool  `yaml:"active"`
}

// ShopFile is the layout of the shop YAML file. Omitted fields keep the
// built-in defaults.
type ShopFile struct {
	Timezone            string                    `yaml:"timezone"`
	SlotIntervalMinutes int                       `yaml:"slot_interval_minutes"`
	SlotCapacity        int                       `yaml:"slot_capacity"`
	HorizonDays         int                       `yaml:"horizon_days"`
	WorkingHours        map[string]dayHoursConfig `yaml:"working_hours"` // monday: {open: "09:00", close: "16:00"}
	Holidays            []string                  `yaml:"holidays"`      // "12-25"
	Services            []serviceConfig           `yaml:"services"`
}

// Shop is the resolved shop configuration.
type Shop struct {
	Schedule schedule.Schedule
	Catalog  []entities.ServiceCatalogEntry
}

// LoadShop reads the shop file at path. An empty path yields the defaults.
func LoadShop(path string) (Shop, error) {
	if path == "" {
		return Shop{Schedule: schedule.Default(), Catalog: entities.DefaultCatalog()}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Shop{}, fmt.Errorf("read shop config: %w", err)
	}
	return ParseShop(data)
}

// ParseShop decodes a shop file, expanding ${ENV_VAR} placeholders first.
func ParseShop(data []byte) (Shop, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var f ShopFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Shop{}, fmt.Errorf("parse shop config: %w", err)
	}

	s := schedule.Default()
	if f.Timezone != "" {
		loc, err := time.LoadLocation(f.Timezone)
		if err != nil {
			return Shop{}, fmt.Errorf("timezone: %w", err)
		}
		s.Location = loc
	}
	if f.SlotIntervalMinutes != 0 {
		s.SlotInterval = time.Duration(f.SlotIntervalMinutes) * time.Minute
	}
	if f.SlotCapacity != 0 {
		s.SlotCapacity = f.SlotCapacity
	}
	if f.HorizonDays != 0 {
		s.HorizonDays = f.HorizonDays
	}
	if f.WorkingHours != nil {
		s.WorkingHours = make(map[time.Weekday]schedule.DayHours, len(f.WorkingHours))
		for name, h := range f.WorkingHours {
			day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return Shop{}, fmt.Errorf("working_hours: unknown weekday %q", name)
			}
			s.WorkingHours[day] = schedule.DayHours{Open: h.Open, Close: h.Close}
		}
	}
	if f.Holidays != nil {
		s.Holidays = make([]schedule.MonthDay, 0, len(f.Holidays))
		for _, raw := range f.Holidays {
			d, err := time.Parse("01-02", strings.TrimSpace(raw))
			if err != nil {
				return Shop{}, fmt.Errorf("holidays: %q must be MM-DD", raw)
			}
			s.Holidays = append(s.Holidays, schedule.MonthDay{Month: d.Month(), Day: d.Day()})
		}
	}
	if err := s.Validate(); err != nil {
		return Shop{}, fmt.Errorf("validate shop config: %w", err)
	}

	catalog := entities.DefaultCatalog()
	if f.Services != nil {
		catalog = make([]entities.ServiceCatalogEntry, 0, len(f.Services))
		for i, sc := range f.Services {
			price, err := decimal.NewFromString(strings.TrimSpace(sc.BasePrice))
			if err != nil {
				return Shop{}, fmt.Errorf("services[%d]: base_price %q is not a decimal", i, sc.BasePrice)
			}
			e := entities.ServiceCatalogEntry{
				ServiceName:              strings.TrimSpace(sc.Name),
				BasePrice:                price,
				EstimatedDurationMinutes: sc.DurationMinutes,
				IsActive:                 sc.Active == nil || *sc.Active,
				Category:                 sc.Category,
			}
			if err := e.Validate(); err != nil {
				return Shop{}, fmt.Errorf("services[%d]: %w", i, err)
			}
			catalog = append(catalog, e)
		}
	}

	return Shop{Schedule: s, Catalog: catalog}, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
