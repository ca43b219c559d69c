package wizard

import (
	"github.com/ougirez/motorquote/internal/catalog"
	"github.com/ougirez/motorquote/internal/domain"
	"github.com/ougirez/motorquote/internal/form"
	"github.com/ougirez/motorquote/internal/pricing"
)

type Screen string

const (
	ScreenLanding    Screen = "landing"
	ScreenCollecting Screen = "collecting"
	ScreenShowing    Screen = "showing"
)

type Event string

const (
	EventStart       Event = "start"
	EventSubmit      Event = "submit"
	EventEditDetails Event = "edit"
	EventNewQuote    Event = "new"
	EventFormUpdate  Event = "form"
	EventReset       Event = "reset"
)

// State is one snapshot of the quote wizard. Transitions return a new State
// and report whether the event applied; a refused event returns the receiver
// unchanged. Snapshots share the submitted request and offer list, which are
// never modified after submit.
type State struct {
	Screen  Screen               `json:"screen"`
	Form    form.Collector       `json:"form"`
	Request *domain.QuoteRequest `json:"request,omitempty"`
	Offers  []domain.QuoteOffer  `json:"offers,omitempty"`
}

func New() State {
	return State{Screen: ScreenLanding}
}

// Start opens an empty form and drops anything left from an earlier quote.
func (s State) Start() (State, bool) {
	if s.Screen != ScreenLanding {
		return s, false
	}
	return State{Screen: ScreenCollecting, Form: form.New()}, true
}

// UpdateForm applies a form operation while the form is on screen.
func (s State) UpdateForm(op func(form.Collector) form.Collector) (State, bool) {
	if s.Screen != ScreenCollecting {
		return s, false
	}
	next := s
	next.Form = op(s.Form)
	return next, true
}

// Submit prices a complete request and switches to the results screen.
func (s State) Submit(req domain.QuoteRequest, cat *catalog.Catalog) (State, bool) {
	if s.Screen != ScreenCollecting || !req.Complete() {
		return s, false
	}

	frozen := req
	return State{
		Screen:  ScreenShowing,
		Form:    s.Form,
		Request: &frozen,
		Offers:  pricing.Price(frozen, cat),
	}, true
}

// SubmitForm submits whatever the form currently holds.
func (s State) SubmitForm(cat *catalog.Catalog) (State, bool) {
	req, ok := s.Form.Submit()
	if !ok {
		return s, false
	}
	return s.Submit(req, cat)
}

// EditDetails reopens the form with the submitted answers filled in.
func (s State) EditDetails() (State, bool) {
	if s.Screen != ScreenShowing || s.Request == nil {
		return s, false
	}
	return State{
		Screen:  ScreenCollecting,
		Form:    form.FromRequest(*s.Request),
		Request: s.Request,
		Offers:  s.Offers,
	}, true
}

// NewQuote discards the request and offers and returns to the landing screen.
func (s State) NewQuote() (State, bool) {
	if s.Screen != ScreenShowing {
		return s, false
	}
	return New(), true
}

// Reset abandons whatever is in progress and returns to the landing screen
// from any other screen.
func (s State) Reset() (State, bool) {
	if s.Screen == ScreenLanding {
		return s, false
	}
	return New(), true
}
