package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ougirez/motorquote/internal/catalog"
	"github.com/ougirez/motorquote/internal/domain"
)

var (
	one = decimal.NewFromInt(1)

	locationHigh   = decimal.RequireFromString("1.2")
	locationMedium = decimal.RequireFromString("1.1")

	age18To25  = decimal.RequireFromString("1.4")
	age26To35  = decimal.RequireFromString("1.1")
	age56To65  = decimal.RequireFromString("1.1")
	age65AndUp = decimal.RequireFromString("1.2")

	claimsNone        = decimal.RequireFromString("0.9")
	claimsOne         = decimal.RequireFromString("1.1")
	claimsTwo         = decimal.RequireFromString("1.3")
	claimsThreeOrMore = decimal.RequireFromString("1.5")
)

// Factors is the breakdown of the multipliers applied to every base offer.
type Factors struct {
	Location decimal.Decimal `json:"location"`
	Age      decimal.Decimal `json:"age"`
	Claims   decimal.Decimal `json:"claims"`
	Combined decimal.Decimal `json:"combined"`
}

func LocationMultiplier(tier catalog.RiskTier) decimal.Decimal {
	switch tier {
	case catalog.TierHigh:
		return locationHigh
	case catalog.TierMedium:
		return locationMedium
	default:
		return one
	}
}

func AgeMultiplier(age domain.AgeBracket) decimal.Decimal {
	switch age {
	case domain.Age18To25:
		return age18To25
	case domain.Age26To35:
		return age26To35
	case domain.Age36To45, domain.Age46To55:
		return one
	case domain.Age56To65:
		return age56To65
	case domain.Age65AndUp:
		return age65AndUp
	default:
		return one
	}
}

func ClaimsMultiplier(claims domain.ClaimsBracket) decimal.Decimal {
	switch claims {
	case domain.ClaimsNone:
		return claimsNone
	case domain.ClaimsOne:
		return claimsOne
	case domain.ClaimsTwo:
		return claimsTwo
	case domain.ClaimsThreeOrMore:
		return claimsThreeOrMore
	default:
		return one
	}
}

func FactorsFor(req domain.QuoteRequest, cat *catalog.Catalog) Factors {
	f := Factors{
		Location: LocationMultiplier(cat.TierOf(req.Location)),
		Age:      AgeMultiplier(req.DriverAge),
		Claims:   ClaimsMultiplier(req.PreviousClaims),
	}
	f.Combined = f.Location.Mul(f.Age).Mul(f.Claims)
	return f
}

// Price adjusts every base offer of the catalog for the request and returns
// the offers cheapest first. Offers with equal annual prices keep catalog order.
func Price(req domain.QuoteRequest, cat *catalog.Catalog) []domain.QuoteOffer {
	factor := FactorsFor(req, cat).Combined

	offers := make([]domain.QuoteOffer, 0, len(cat.Providers))
	for _, base := range cat.Providers {
		offers = append(offers, domain.QuoteOffer{
			Provider:     base.Provider,
			MonthlyPrice: adjust(base.MonthlyPrice, factor),
			AnnualPrice:  adjust(base.AnnualPrice, factor),
			Coverage:     base.Coverage,
			Features:     append([]string(nil), base.Features...),
			Rating:       base.Rating,
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].AnnualPrice < offers[j].AnnualPrice
	})

	return offers
}

// adjust scales a whole amount and rounds half away from zero.
func adjust(amount int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(factor).Round(0).IntPart()
}
