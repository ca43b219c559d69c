package form

import (
	"testing"

	"github.com/ougirez/motorquote/internal/domain"
)

func filled() Collector {
	c := New()
	c = c.SetField(FieldVehicleType, "sedan")
	c = c.SetField(FieldMake, "Toyota")
	c = c.SetField(FieldModel, "Corolla")
	c = c.SetField(FieldYear, "2018")
	c = c.SetField(FieldDriverAge, "26-35")
	c = c.SetField(FieldLocation, "Ndola")
	c = c.SetField(FieldCoverageType, "comprehensive")
	c = c.SetField(FieldPreviousClaims, "0")
	return c
}

func TestNewStartsOnVehicleStep(t *testing.T) {
	c := New()
	if c.Step != StepVehicle {
		t.Fatalf("expected step 1, got %d", c.Step)
	}
	if c.Progress() != 33 {
		t.Fatalf("expected progress 33, got %d", c.Progress())
	}
	if c.CanGoBack() || c.CanAdvance() || c.CanSubmit() {
		t.Fatal("expected every control disabled on an empty form")
	}
}

func TestSetFieldIsPure(t *testing.T) {
	c := New()
	next := c.SetField(FieldMake, "Mazda")
	if c.Draft.Make != "" {
		t.Fatalf("expected receiver untouched, got %q", c.Draft.Make)
	}
	if next.Draft.Make != "Mazda" {
		t.Fatalf("expected Mazda, got %q", next.Draft.Make)
	}
}

func TestSetFieldYear(t *testing.T) {
	c := New().SetField(FieldYear, " 2015 ")
	if c.Draft.Year != 2015 {
		t.Fatalf("expected 2015, got %d", c.Draft.Year)
	}
	c = c.SetField(FieldYear, "last year")
	if c.Draft.Year != 0 {
		t.Fatalf("expected unparsable year to clear the answer, got %d", c.Draft.Year)
	}
}

func TestSetFieldUnknownIgnored(t *testing.T) {
	c := filled()
	if got := c.SetField("colour", "red"); got != c {
		t.Fatalf("expected unknown field to be ignored, got %+v", got)
	}
}

func TestNextGates(t *testing.T) {
	c := New().Next()
	if c.Step != StepVehicle {
		t.Fatalf("expected to stay on step 1 without a vehicle type, got %d", c.Step)
	}

	c = c.SetField(FieldVehicleType, "suv").Next()
	if c.Step != StepDriver {
		t.Fatalf("expected step 2, got %d", c.Step)
	}
	if c.Progress() != 67 {
		t.Fatalf("expected progress 67, got %d", c.Progress())
	}

	c = c.Next()
	if c.Step != StepDriver {
		t.Fatalf("expected to stay on step 2 without a driver age, got %d", c.Step)
	}

	c = c.SetField(FieldDriverAge, "46-55").Next()
	if c.Step != StepCoverage {
		t.Fatalf("expected step 3, got %d", c.Step)
	}
	if c.Progress() != 100 {
		t.Fatalf("expected progress 100, got %d", c.Progress())
	}

	if got := c.Next(); got.Step != StepCoverage {
		t.Fatalf("expected next on the last step to be a no-op, got %d", got.Step)
	}
}

func TestPrevious(t *testing.T) {
	c := New()
	if got := c.Previous(); got.Step != StepVehicle {
		t.Fatalf("expected previous on step 1 to be a no-op, got %d", got.Step)
	}

	c = filled().Next().Next()
	c = c.Previous()
	if c.Step != StepDriver {
		t.Fatalf("expected step 2, got %d", c.Step)
	}
	if c.Draft.Make != "Toyota" {
		t.Fatal("expected draft to survive navigation")
	}
}

func TestSubmit(t *testing.T) {
	c := filled()
	c = c.SetField(FieldModel, "")
	if _, ok := c.Submit(); ok {
		t.Fatal("expected submit to be refused with an empty model")
	}

	c = c.SetField(FieldModel, "Corolla")
	req, ok := c.Submit()
	if !ok {
		t.Fatal("expected submit to succeed")
	}
	want := domain.QuoteRequest{
		VehicleType:    domain.VehicleSedan,
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2018,
		DriverAge:      domain.Age26To35,
		Location:       "Ndola",
		CoverageType:   domain.CoverageComprehensive,
		PreviousClaims: domain.ClaimsNone,
	}
	if req != want {
		t.Fatalf("expected %+v, got %+v", want, req)
	}
}

func TestSubmitEachMissingField(t *testing.T) {
	for _, f := range AllFields() {
		c := filled().SetField(f, "")
		if c.CanSubmit() {
			t.Errorf("expected submit disabled without %s", f)
		}
		if _, ok := c.Submit(); ok {
			t.Errorf("expected submit refused without %s", f)
		}
	}
}

func TestFromRequest(t *testing.T) {
	req, _ := filled().Submit()
	c := FromRequest(req)
	if c.Step != StepVehicle || c.Draft != req {
		t.Fatalf("expected pre-filled form on step 1, got %+v", c)
	}
}

func TestFieldIsValid(t *testing.T) {
	if !FieldPreviousClaims.IsValid() {
		t.Fatal("expected previousClaims to be valid")
	}
	if Field("colour").IsValid() {
		t.Fatal("expected colour to be invalid")
	}
}

func TestStepLabel(t *testing.T) {
	if StepDriver.Label() != "Driver Information" {
		t.Fatalf("unexpected label %q", StepDriver.Label())
	}
}
