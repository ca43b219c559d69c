package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a catalog override from a YAML file. Sections missing from the
// file keep their built-in values.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Catalog, error) {
	var override Catalog
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	cat := Default()
	if len(override.Providers) > 0 {
		cat.Providers = override.Providers
	}
	if len(override.Cities) > 0 {
		cat.Cities = override.Cities
	}
	if v.IsSet("high_risk_cities") {
		cat.HighRiskCities = override.HighRiskCities
	}
	if v.IsSet("medium_risk_cities") {
		cat.MediumRiskCities = override.MediumRiskCities
	}
	if len(override.Makes) > 0 {
		cat.Makes = override.Makes
	}
	if override.LatestYear != 0 {
		cat.LatestYear = override.LatestYear
	}
	if override.YearSpan != 0 {
		cat.YearSpan = override.YearSpan
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return cat, nil
}
