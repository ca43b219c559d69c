package pricing

import (
	"github.com/dustin/go-humanize"

	"github.com/ougirez/motorquote/internal/domain"
)

const (
	BadgeBestValue     = "Best Value"
	BadgePopularChoice = "Popular Choice"
)

type RankedOffer struct {
	domain.QuoteOffer
	Badge        string `json:"badge,omitempty"`
	MonthlyLabel string `json:"monthlyLabel"`
	AnnualLabel  string `json:"annualLabel"`
}

// Summary is the results-page view of a priced offer list.
type Summary struct {
	Offers       []RankedOffer `json:"offers"`
	Savings      int64         `json:"savings"`
	SavingsLabel string        `json:"savingsLabel"`
	Factors      Factors       `json:"factors"`
}

// Summarize expects offers sorted cheapest first, as Price returns them.
func Summarize(offers []domain.QuoteOffer, factors Factors) Summary {
	s := Summary{
		Offers:  make([]RankedOffer, 0, len(offers)),
		Factors: factors,
	}

	for i, o := range offers {
		ranked := RankedOffer{
			QuoteOffer:   o,
			MonthlyLabel: FormatPrice(o.MonthlyPrice),
			AnnualLabel:  FormatPrice(o.AnnualPrice),
		}
		switch i {
		case 0:
			ranked.Badge = BadgeBestValue
		case 1:
			ranked.Badge = BadgePopularChoice
		}
		s.Offers = append(s.Offers, ranked)
	}

	if len(offers) > 0 {
		s.Savings = offers[len(offers)-1].AnnualPrice - offers[0].AnnualPrice
	}
	s.SavingsLabel = FormatPrice(s.Savings)

	return s
}

// FormatPrice renders a Kwacha amount, e.g. K1,134.
func FormatPrice(amount int64) string {
	return "K" + humanize.Comma(amount)
}
