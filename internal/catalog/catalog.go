package catalog

import (
	"errors"
	"fmt"

	"github.com/ougirez/motorquote/internal/domain"
)

type RiskTier string

const (
	TierHigh     RiskTier = "high"
	TierMedium   RiskTier = "medium"
	TierStandard RiskTier = "standard"
)

// Catalog is the static data the form offers and the pricing engine reads.
// A Catalog must not be mutated once handed to a pricing call.
type Catalog struct {
	Providers        []domain.BaseOffer `mapstructure:"providers"`
	Cities           []string           `mapstructure:"cities"`
	HighRiskCities   []string           `mapstructure:"high_risk_cities"`
	MediumRiskCities []string           `mapstructure:"medium_risk_cities"`
	Makes            []string           `mapstructure:"makes"`
	LatestYear       int                `mapstructure:"latest_year"`
	YearSpan         int                `mapstructure:"year_span"`
}

var ErrNoProviders = errors.New("catalog has no providers")

// TierOf returns the risk tier of a city. Unknown cities are standard risk.
func (c *Catalog) TierOf(city string) RiskTier {
	for _, hc := range c.HighRiskCities {
		if hc == city {
			return TierHigh
		}
	}
	for _, mc := range c.MediumRiskCities {
		if mc == city {
			return TierMedium
		}
	}
	return TierStandard
}

// Years lists the selectable manufacture years, newest first.
func (c *Catalog) Years() []int {
	years := make([]int, 0, c.YearSpan)
	for i := 0; i < c.YearSpan; i++ {
		years = append(years, c.LatestYear-i)
	}
	return years
}

func (c *Catalog) Validate() error {
	if len(c.Providers) == 0 {
		return ErrNoProviders
	}

	for i, p := range c.Providers {
		if p.Provider == "" {
			return fmt.Errorf("provider #%d: empty name", i)
		}
		if p.MonthlyPrice < 0 || p.AnnualPrice < 0 {
			return fmt.Errorf("provider %s: negative price", p.Provider)
		}
		if p.AnnualPrice != 12*p.MonthlyPrice {
			return fmt.Errorf("provider %s: annual price %d is not 12 x monthly price %d", p.Provider, p.AnnualPrice, p.MonthlyPrice)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("provider %s: rating %.1f out of range", p.Provider, p.Rating)
		}
	}

	if c.YearSpan < 0 {
		return fmt.Errorf("negative year span %d", c.YearSpan)
	}

	return nil
}

// Options groups every selection list of the form with display labels.
type Options struct {
	VehicleTypes   []domain.Option `json:"vehicleTypes"`
	Makes          []string        `json:"makes"`
	Years          []int           `json:"years"`
	AgeBrackets    []domain.Option `json:"ageBrackets"`
	Cities         []string        `json:"cities"`
	PreviousClaims []domain.Option `json:"previousClaims"`
	CoverageTypes  []domain.Option `json:"coverageTypes"`
}

func (c *Catalog) Options() Options {
	opts := Options{
		Makes:  append([]string(nil), c.Makes...),
		Years:  c.Years(),
		Cities: append([]string(nil), c.Cities...),
	}
	for _, v := range domain.AllVehicleTypes() {
		opts.VehicleTypes = append(opts.VehicleTypes, domain.Option{Value: string(v), Label: v.Label()})
	}
	for _, a := range domain.AllAgeBrackets() {
		opts.AgeBrackets = append(opts.AgeBrackets, domain.Option{Value: string(a), Label: a.Label()})
	}
	for _, cl := range domain.AllClaimsBrackets() {
		opts.PreviousClaims = append(opts.PreviousClaims, domain.Option{Value: string(cl), Label: cl.Label()})
	}
	for _, cv := range domain.AllCoverageTypes() {
		opts.CoverageTypes = append(opts.CoverageTypes, domain.Option{Value: string(cv), Label: cv.Label()})
	}
	return opts
}
