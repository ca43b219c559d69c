package domain

type VehicleType string

const (
	VehicleSedan      VehicleType = "sedan"
	VehicleHatchback  VehicleType = "hatchback"
	VehicleSUV        VehicleType = "suv"
	VehiclePickup     VehicleType = "pickup"
	VehicleVan        VehicleType = "van"
	VehicleMotorcycle VehicleType = "motorcycle"
)

func AllVehicleTypes() []VehicleType {
	return []VehicleType{VehicleSedan, VehicleHatchback, VehicleSUV, VehiclePickup, VehicleVan, VehicleMotorcycle}
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleSedan, VehicleHatchback, VehicleSUV, VehiclePickup, VehicleVan, VehicleMotorcycle:
		return true
	}
	return false
}

func (v VehicleType) Label() string {
	switch v {
	case VehicleSedan:
		return "Sedan/Saloon"
	case VehicleHatchback:
		return "Hatchback"
	case VehicleSUV:
		return "SUV/4x4"
	case VehiclePickup:
		return "Pickup Truck"
	case VehicleVan:
		return "Van/Minibus"
	case VehicleMotorcycle:
		return "Motorcycle"
	default:
		return string(v)
	}
}

// AgeBracket is the driver's age range as offered by the form.
type AgeBracket string

const (
	Age18To25  AgeBracket = "18-25"
	Age26To35  AgeBracket = "26-35"
	Age36To45  AgeBracket = "36-45"
	Age46To55  AgeBracket = "46-55"
	Age56To65  AgeBracket = "56-65"
	Age65AndUp AgeBracket = "65+"
)

func AllAgeBrackets() []AgeBracket {
	return []AgeBracket{Age18To25, Age26To35, Age36To45, Age46To55, Age56To65, Age65AndUp}
}

func (a AgeBracket) IsValid() bool {
	switch a {
	case Age18To25, Age26To35, Age36To45, Age46To55, Age56To65, Age65AndUp:
		return true
	}
	return false
}

func (a AgeBracket) Label() string {
	return string(a) + " years"
}

// ClaimsBracket counts claims made in the last five years.
type ClaimsBracket string

const (
	ClaimsNone        ClaimsBracket = "0"
	ClaimsOne         ClaimsBracket = "1"
	ClaimsTwo         ClaimsBracket = "2"
	ClaimsThreeOrMore ClaimsBracket = "3+"
)

func AllClaimsBrackets() []ClaimsBracket {
	return []ClaimsBracket{ClaimsNone, ClaimsOne, ClaimsTwo, ClaimsThreeOrMore}
}

func (c ClaimsBracket) IsValid() bool {
	switch c {
	case ClaimsNone, ClaimsOne, ClaimsTwo, ClaimsThreeOrMore:
		return true
	}
	return false
}

func (c ClaimsBracket) Label() string {
	switch c {
	case ClaimsNone:
		return "No claims (Clean record)"
	case ClaimsOne:
		return "1 claim"
	case ClaimsTwo:
		return "2 claims"
	case ClaimsThreeOrMore:
		return "3 or more claims"
	default:
		return string(c)
	}
}

type CoverageType string

const (
	CoverageThirdParty          CoverageType = "third-party"
	CoverageThirdPartyFireTheft CoverageType = "third-party-fire-theft"
	CoverageComprehensive       CoverageType = "comprehensive"
)

func AllCoverageTypes() []CoverageType {
	return []CoverageType{CoverageThirdParty, CoverageThirdPartyFireTheft, CoverageComprehensive}
}

func (c CoverageType) IsValid() bool {
	switch c {
	case CoverageThirdParty, CoverageThirdPartyFireTheft, CoverageComprehensive:
		return true
	}
	return false
}

func (c CoverageType) Label() string {
	switch c {
	case CoverageThirdParty:
		return "Third Party Only"
	case CoverageThirdPartyFireTheft:
		return "Third Party Fire & Theft"
	case CoverageComprehensive:
		return "Comprehensive"
	default:
		return string(c)
	}
}

// Option is a value/label pair used to populate selection lists.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
