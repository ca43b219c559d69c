package domain

// QuoteRequest is the record collected by the three-step form.
type QuoteRequest struct {
	VehicleType    VehicleType   `json:"vehicleType" validate:"required"`
	Make           string        `json:"make" validate:"required"`
	Model          string        `json:"model" validate:"required"`
	Year           int           `json:"year" validate:"required,gt=0"`
	DriverAge      AgeBracket    `json:"driverAge" validate:"required"`
	Location       string        `json:"location" validate:"required"`
	CoverageType   CoverageType  `json:"coverageType" validate:"required"`
	PreviousClaims ClaimsBracket `json:"previousClaims" validate:"required"`
}

// Complete reports whether every field has been answered.
func (r QuoteRequest) Complete() bool {
	return r.VehicleType != "" &&
		r.Make != "" &&
		r.Model != "" &&
		r.Year != 0 &&
		r.DriverAge != "" &&
		r.Location != "" &&
		r.CoverageType != "" &&
		r.PreviousClaims != ""
}

// BaseOffer is a provider entry of the base catalog before any adjustment.
type BaseOffer struct {
	Provider     string   `json:"provider" mapstructure:"provider"`
	MonthlyPrice int64    `json:"monthlyPrice" mapstructure:"monthly_price"`
	AnnualPrice  int64    `json:"annualPrice" mapstructure:"annual_price"`
	Coverage     string   `json:"coverage" mapstructure:"coverage"`
	Features     []string `json:"features" mapstructure:"features"`
	Rating       float64  `json:"rating" mapstructure:"rating"`
}

// QuoteOffer is a priced offer shown to the driver. Prices are whole Kwacha.
type QuoteOffer struct {
	Provider     string   `json:"provider"`
	MonthlyPrice int64    `json:"monthlyPrice"`
	AnnualPrice  int64    `json:"annualPrice"`
	Coverage     string   `json:"coverage"`
	Features     []string `json:"features"`
	Rating       float64  `json:"rating"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
