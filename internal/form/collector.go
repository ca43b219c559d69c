package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/ougirez/motorquote/internal/domain"
)

type Step int

const (
	StepVehicle Step = iota + 1
	StepDriver
	StepCoverage
)

const TotalSteps = 3

func (s Step) Label() string {
	switch s {
	case StepVehicle:
		return "Vehicle Information"
	case StepDriver:
		return "Driver Information"
	case StepCoverage:
		return "Coverage Options"
	default:
		return "Unknown"
	}
}

// Field names a QuoteRequest field as the form addresses it.
type Field string

const (
	FieldVehicleType    Field = "vehicleType"
	FieldMake           Field = "make"
	FieldModel          Field = "model"
	FieldYear           Field = "year"
	FieldDriverAge      Field = "driverAge"
	FieldLocation       Field = "location"
	FieldCoverageType   Field = "coverageType"
	FieldPreviousClaims Field = "previousClaims"
)

func AllFields() []Field {
	return []Field{
		FieldVehicleType, FieldMake, FieldModel, FieldYear,
		FieldDriverAge, FieldLocation, FieldCoverageType, FieldPreviousClaims,
	}
}

func (f Field) IsValid() bool {
	for _, known := range AllFields() {
		if f == known {
			return true
		}
	}
	return false
}

// Collector is the three-step form. Every method returns a new value and
// leaves the receiver untouched.
type Collector struct {
	Step  Step                `json:"step"`
	Draft domain.QuoteRequest `json:"draft"`
}

func New() Collector {
	return Collector{Step: StepVehicle}
}

// FromRequest opens the form on the first step with every answer pre-filled.
func FromRequest(req domain.QuoteRequest) Collector {
	return Collector{Step: StepVehicle, Draft: req}
}

// SetField stores one answer. Values are not checked against their domain;
// a year that does not parse leaves the year unanswered.
func (c Collector) SetField(f Field, value string) Collector {
	switch f {
	case FieldVehicleType:
		c.Draft.VehicleType = domain.VehicleType(value)
	case FieldMake:
		c.Draft.Make = value
	case FieldModel:
		c.Draft.Model = value
	case FieldYear:
		year, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			year = 0
		}
		c.Draft.Year = year
	case FieldDriverAge:
		c.Draft.DriverAge = domain.AgeBracket(value)
	case FieldLocation:
		c.Draft.Location = value
	case FieldCoverageType:
		c.Draft.CoverageType = domain.CoverageType(value)
	case FieldPreviousClaims:
		c.Draft.PreviousClaims = domain.ClaimsBracket(value)
	}
	return c
}

func (c Collector) CanAdvance() bool {
	switch c.Step {
	case StepVehicle:
		return c.Draft.VehicleType != ""
	case StepDriver:
		return c.Draft.DriverAge != ""
	default:
		return false
	}
}

func (c Collector) Next() Collector {
	if c.CanAdvance() {
		c.Step++
	}
	return c
}

func (c Collector) CanGoBack() bool {
	return c.Step > StepVehicle
}

func (c Collector) Previous() Collector {
	if c.CanGoBack() {
		c.Step--
	}
	return c
}

func (c Collector) CanSubmit() bool {
	return c.Draft.Complete()
}

// Submit hands out the finished request. ok is false while any answer is missing.
func (c Collector) Submit() (req domain.QuoteRequest, ok bool) {
	if !c.CanSubmit() {
		return domain.QuoteRequest{}, false
	}
	return c.Draft, true
}

// Progress is the completion percentage shown above the form.
func (c Collector) Progress() int {
	return int(math.Round(float64(c.Step) / TotalSteps * 100))
}
