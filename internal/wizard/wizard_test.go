package wizard

import (
	"reflect"
	"testing"

	"github.com/ougirez/motorquote/internal/catalog"
	"github.com/ougirez/motorquote/internal/domain"
	"github.com/ougirez/motorquote/internal/form"
)

func completeRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		VehicleType:    domain.VehiclePickup,
		Make:           "Isuzu",
		Model:          "D-Max",
		Year:           2016,
		DriverAge:      domain.Age18To25,
		Location:       "Lusaka",
		CoverageType:   domain.CoverageThirdPartyFireTheft,
		PreviousClaims: domain.ClaimsThreeOrMore,
	}
}

func showing(t *testing.T, cat *catalog.Catalog) State {
	t.Helper()
	s, ok := New().Start()
	if !ok {
		t.Fatal("expected start to apply")
	}
	s, ok = s.Submit(completeRequest(), cat)
	if !ok {
		t.Fatal("expected submit to apply")
	}
	return s
}

func TestNewIsLanding(t *testing.T) {
	s := New()
	if s.Screen != ScreenLanding || s.Request != nil || s.Offers != nil {
		t.Fatalf("unexpected initial state %+v", s)
	}
}

func TestStart(t *testing.T) {
	s, ok := New().Start()
	if !ok || s.Screen != ScreenCollecting {
		t.Fatalf("expected collecting, got %s (ok=%v)", s.Screen, ok)
	}
	if s.Form != form.New() {
		t.Fatalf("expected an empty form, got %+v", s.Form)
	}
}

func TestSubmitComplete(t *testing.T) {
	cat := catalog.Default()
	s := showing(t, cat)

	if s.Screen != ScreenShowing {
		t.Fatalf("expected showing, got %s", s.Screen)
	}
	if s.Request == nil || *s.Request != completeRequest() {
		t.Fatalf("expected stored request, got %+v", s.Request)
	}
	if len(s.Offers) != len(cat.Providers) {
		t.Fatalf("expected %d offers, got %d", len(cat.Providers), len(s.Offers))
	}
}

func TestSubmitIncompleteIsNoop(t *testing.T) {
	cat := catalog.Default()
	collecting, _ := New().Start()

	for _, f := range form.AllFields() {
		req := form.FromRequest(completeRequest()).SetField(f, "").Draft
		got, ok := collecting.Submit(req, cat)
		if ok {
			t.Errorf("expected submit without %s to be refused", f)
		}
		if !reflect.DeepEqual(got, collecting) {
			t.Errorf("expected state unchanged without %s, got %+v", f, got)
		}
	}
}

func TestSubmitOutsideCollectingIsNoop(t *testing.T) {
	cat := catalog.Default()
	landing := New()
	if got, ok := landing.Submit(completeRequest(), cat); ok || !reflect.DeepEqual(got, landing) {
		t.Fatalf("expected submit on landing to be a no-op, got %+v", got)
	}

	s := showing(t, cat)
	if got, ok := s.Submit(completeRequest(), cat); ok || !reflect.DeepEqual(got, s) {
		t.Fatal("expected submit on results to be a no-op")
	}
}

func TestSubmitForm(t *testing.T) {
	cat := catalog.Default()
	s, _ := New().Start()

	if _, ok := s.SubmitForm(cat); ok {
		t.Fatal("expected empty form submit to be refused")
	}

	s, _ = s.UpdateForm(func(c form.Collector) form.Collector {
		return form.FromRequest(completeRequest())
	})
	s, ok := s.SubmitForm(cat)
	if !ok || s.Screen != ScreenShowing {
		t.Fatalf("expected showing after form submit, got %s", s.Screen)
	}
}

func TestUpdateFormOnlyWhileCollecting(t *testing.T) {
	setMake := func(c form.Collector) form.Collector { return c.SetField(form.FieldMake, "Kia") }

	if _, ok := New().UpdateForm(setMake); ok {
		t.Fatal("expected form update on landing to be refused")
	}

	s, _ := New().Start()
	s, ok := s.UpdateForm(setMake)
	if !ok || s.Form.Draft.Make != "Kia" {
		t.Fatalf("expected make Kia, got %+v", s.Form.Draft)
	}
}

func TestEditDetailsKeepsDraft(t *testing.T) {
	cat := catalog.Default()
	s := showing(t, cat)
	firstOffers := s.Offers

	s, ok := s.EditDetails()
	if !ok || s.Screen != ScreenCollecting {
		t.Fatalf("expected collecting, got %s", s.Screen)
	}
	if s.Form.Draft != completeRequest() {
		t.Fatalf("expected draft preserved, got %+v", s.Form.Draft)
	}
	if s.Form.Step != form.StepVehicle {
		t.Fatalf("expected form on step 1, got %d", s.Form.Step)
	}

	s, ok = s.SubmitForm(cat)
	if !ok {
		t.Fatal("expected resubmit to apply")
	}
	if !reflect.DeepEqual(s.Offers, firstOffers) {
		t.Fatalf("expected identical offers on unchanged resubmit")
	}
}

func TestEditDetailsThenChange(t *testing.T) {
	cat := catalog.Default()
	s := showing(t, cat)
	before := s.Offers[0].AnnualPrice

	s, _ = s.EditDetails()
	s, _ = s.UpdateForm(func(c form.Collector) form.Collector {
		return c.SetField(form.FieldPreviousClaims, "0")
	})
	s, _ = s.SubmitForm(cat)

	if s.Request.PreviousClaims != domain.ClaimsNone {
		t.Fatalf("expected updated claims, got %s", s.Request.PreviousClaims)
	}
	if s.Offers[0].AnnualPrice >= before {
		t.Fatalf("expected cheaper offers after clearing claims, got %d >= %d", s.Offers[0].AnnualPrice, before)
	}
}

func TestNewQuoteClears(t *testing.T) {
	cat := catalog.Default()
	s := showing(t, cat)

	s, ok := s.NewQuote()
	if !ok || s.Screen != ScreenLanding {
		t.Fatalf("expected landing, got %s", s.Screen)
	}
	if s.Request != nil || s.Offers != nil {
		t.Fatalf("expected request and offers cleared, got %+v", s)
	}

	s, _ = s.Start()
	if s.Form.Draft != (domain.QuoteRequest{}) {
		t.Fatalf("expected empty draft on re-entry, got %+v", s.Form.Draft)
	}
}

func TestInvalidTransitionsAreNoops(t *testing.T) {
	landing := New()
	if got, ok := landing.EditDetails(); ok || !reflect.DeepEqual(got, landing) {
		t.Fatal("expected edit on landing to be a no-op")
	}
	if got, ok := landing.NewQuote(); ok || !reflect.DeepEqual(got, landing) {
		t.Fatal("expected new quote on landing to be a no-op")
	}

	collecting, _ := landing.Start()
	if got, ok := collecting.Start(); ok || !reflect.DeepEqual(got, collecting) {
		t.Fatal("expected start while collecting to be a no-op")
	}
	if _, ok := collecting.EditDetails(); ok {
		t.Fatal("expected edit while collecting to be refused")
	}
	if _, ok := collecting.NewQuote(); ok {
		t.Fatal("expected new quote while collecting to be refused")
	}

	s := showing(t, catalog.Default())
	if _, ok := s.Start(); ok {
		t.Fatal("expected start on results to be refused")
	}
}

func TestResetFromEveryScreen(t *testing.T) {
	if _, ok := New().Reset(); ok {
		t.Fatal("expected reset on landing to be refused")
	}

	collecting, _ := New().Start()
	editing, ok := showing(t, catalog.Default()).EditDetails()
	if !ok {
		t.Fatal("expected edit details to apply")
	}

	for name, s := range map[string]State{
		"collecting": collecting,
		"showing":    showing(t, catalog.Default()),
		"editing":    editing,
	} {
		got, ok := s.Reset()
		if !ok {
			t.Fatalf("%s: expected reset to apply", name)
		}
		if !reflect.DeepEqual(got, New()) {
			t.Fatalf("%s: expected fresh landing state, got %+v", name, got)
		}
	}
}
