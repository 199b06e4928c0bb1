package models

import (
	"fmt"
)

// Mode selects between a plain shopping list and a multi-day meal plan
type Mode string

const (
	ModeShopping Mode = "shopping"
	ModeMenu     Mode = "menu"
)

const (
	MaxSupermarkets      = 5
	MaxBudget            = 10000.0
	MaxPreferencesLength = 500
	MinFamilySize        = 1
	MaxFamilySize        = 20
	DefaultFamilySize    = 2
	DefaultDays          = 7
	MaxDays              = 14
	DefaultLanguage      = "en"
)

// GenerateRequest is the body of POST /generate. FamilySize and Days are
// pointers so an omitted field can be told apart from an explicit zero:
// omitted gets the default, an explicit zero fails validation.
type GenerateRequest struct {
	Supermarkets []string `json:"supermarkets"`
	Budget       float64  `json:"budget"`
	Preferences  string   `json:"preferences"`
	FamilySize   *int     `json:"family_size"`
	Language     string   `json:"language"`
	Mode         Mode     `json:"mode"`
	Days         *int     `json:"days"`
}

// FamilySizeValue returns the bound family size, or the default when the
// field was omitted
func (r *GenerateRequest) FamilySizeValue() int {
	if r.FamilySize != nil {
		return *r.FamilySize
	}
	return DefaultFamilySize
}

// DaysValue returns the bound day count, or the default when the field was
// omitted
func (r *GenerateRequest) DaysValue() int {
	if r.Days != nil {
		return *r.Days
	}
	return DefaultDays
}

// Normalize fills in defaults for omitted fields. Call before Validate.
func (r *GenerateRequest) Normalize() {
	if r.FamilySize == nil {
		v := DefaultFamilySize
		r.FamilySize = &v
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.Mode == "" {
		r.Mode = ModeShopping
	}
	if r.Days == nil {
		v := DefaultDays
		r.Days = &v
	}
}

// Validate enforces the request field constraints. Unknown language codes
// are accepted; prompt and notes lookups fall back to English.
func (r *GenerateRequest) Validate() error {
	if len(r.Supermarkets) == 0 {
		return fmt.Errorf("supermarkets: at least one store is required")
	}
	if len(r.Supermarkets) > MaxSupermarkets {
		return fmt.Errorf("supermarkets: at most %d stores allowed", MaxSupermarkets)
	}
	for _, s := range r.Supermarkets {
		if !KnownStore(s) {
			return fmt.Errorf("supermarkets: unknown store %q", s)
		}
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget: must be greater than 0")
	}
	if r.Budget > MaxBudget {
		return fmt.Errorf("budget: must not exceed %.0f", MaxBudget)
	}
	if len(r.Preferences) > MaxPreferencesLength {
		return fmt.Errorf("preferences: must not exceed %d characters", MaxPreferencesLength)
	}
	if fs := r.FamilySizeValue(); fs < MinFamilySize || fs > MaxFamilySize {
		return fmt.Errorf("family_size: must be between %d and %d", MinFamilySize, MaxFamilySize)
	}
	if r.Mode != ModeShopping && r.Mode != ModeMenu {
		return fmt.Errorf("mode: must be %q or %q", ModeShopping, ModeMenu)
	}
	if r.Mode == ModeMenu {
		if d := r.DaysValue(); d < 1 || d > MaxDays {
			return fmt.Errorf("days: must be between 1 and %d", MaxDays)
		}
	}
	return nil
}
