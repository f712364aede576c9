package payconfig

import "github.com/jezdibolt/backend-go/internal/pkg/validator"

type TierResponse struct {
	ID          int  `json:"id"`
	MinGross    int  `json:"min_gross"`
	MaxGross    *int `json:"max_gross"`
	RatePerHour int  `json:"rate_per_hour"`
}

type RuleResponse struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Hours      int    `json:"hours"`
	Adjustment int    `json:"adjustment"`
	Mode       string `json:"mode"`
}

// UpdateTierRequest is a typed partial update: only non-nil fields are
// written. Unbounded clears MaxGross (tier open above).
type UpdateTierRequest struct {
	ID          int   `json:"-"`
	MinGross    *int  `json:"min_gross,omitempty"`
	MaxGross    *int  `json:"max_gross,omitempty"`
	Unbounded   *bool `json:"unbounded,omitempty"`
	RatePerHour *int  `json:"rate_per_hour,omitempty"`
}

func (r *UpdateTierRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MinGross != nil && *r.MinGross < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_gross", Message: "must be non-negative"})
	}
	if r.MaxGross != nil && *r.MaxGross < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_gross", Message: "must be non-negative"})
	}
	if r.RatePerHour != nil && *r.RatePerHour < 0 {
		errs = append(errs, validator.ValidationError{Field: "rate_per_hour", Message: "must be non-negative"})
	}
	if r.MaxGross != nil && r.Unbounded != nil && *r.Unbounded {
		errs = append(errs, validator.ValidationError{Field: "max_gross", Message: "cannot be combined with unbounded"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRuleRequest is a typed partial update for one pay rule.
type UpdateRuleRequest struct {
	ID         int     `json:"-"`
	Type       *string `json:"type,omitempty"`
	Hours      *int    `json:"hours,omitempty"`
	Adjustment *int    `json:"adjustment,omitempty"`
	Mode       *string `json:"mode,omitempty"`
}

func (r *UpdateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mode != nil && *r.Mode != string(ModeSet) && *r.Mode != string(ModeAdd) {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be 'set' or 'add'"})
	}
	if r.Type != nil {
		switch RuleType(*r.Type) {
		case RuleUnderHours, RuleMinHours, RuleBonusHours:
		default:
			errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown rule type"})
		}
	}
	if r.Hours != nil && *r.Hours < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
