package catalog

import "github.com/ougirez/motorquote/internal/domain"

// Default returns the built-in Zambian catalog. Every call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Providers: []domain.BaseOffer{
			{
				Provider:     "Madison Insurance",
				MonthlyPrice: 450,
				AnnualPrice:  5400,
				Coverage:     "Comprehensive",
				Features:     []string{"24/7 Roadside Assistance", "Windscreen Cover", "Legal Protection", "Courtesy Vehicle"},
				Rating:       4.8,
			},
			{
				Provider:     "Professional Insurance Corporation Zambia (PICZ)",
				MonthlyPrice: 380,
				AnnualPrice:  4560,
				Coverage:     "Third Party Fire & Theft",
				Features:     []string{"Online Claims Portal", "Mobile App", "No Claims Bonus Protection", "Emergency Towing"},
				Rating:       4.6,
			},
			{
				Provider:     "Zambia State Insurance Corporation (ZSIC)",
				MonthlyPrice: 520,
				AnnualPrice:  6240,
				Coverage:     "Comprehensive Plus",
				Features:     []string{"Courtesy Car", "Personal Accident Cover", "Key Replacement", "Flood Protection"},
				Rating:       4.7,
			},
			{
				Provider:     "Hollard Insurance Zambia",
				MonthlyPrice: 420,
				AnnualPrice:  5040,
				Coverage:     "Comprehensive",
				Features:     []string{"Accident Forgiveness", "Glass Cover", "Theft Protection", "Emergency Services"},
				Rating:       4.5,
			},
			{
				Provider:     "Prudential General Insurance Zambia",
				MonthlyPrice: 395,
				AnnualPrice:  4740,
				Coverage:     "Third Party Fire & Theft",
				Features:     []string{"Quick Claims Processing", "Nationwide Coverage", "Rainy Season Protection"},
				Rating:       4.4,
			},
		},
		Cities: []string{
			"Lusaka", "Kitwe", "Ndola", "Kabwe", "Chingola", "Mufulira", "Livingstone",
			"Luanshya", "Kasama", "Chipata", "Mazabuka", "Choma", "Mongu", "Solwezi",
		},
		HighRiskCities:   []string{"Lusaka", "Kitwe", "Ndola"},
		MediumRiskCities: []string{"Kabwe", "Chingola", "Livingstone"},
		Makes: []string{
			"Toyota", "Nissan", "Mazda", "Honda", "Mitsubishi", "Isuzu", "Ford",
			"Volkswagen", "Hyundai", "Kia", "Suzuki", "Subaru", "Mercedes-Benz", "BMW",
		},
		LatestYear: 2024,
		YearSpan:   25,
	}
}
