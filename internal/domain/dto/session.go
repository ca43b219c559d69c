package dto

import (
	"github.com/ougirez/motorquote/internal/domain"
	"github.com/ougirez/motorquote/internal/pricing"
)

// SessionView is what a client needs to render the current wizard screen.
// Applied is false when the last event was not valid for the screen and
// nothing changed. Form is set only while collecting, Offers and Summary
// only on the results screen.
type SessionView struct {
	ID      string `json:"id"`
	Screen  string `json:"screen"`
	Applied bool   `json:"applied"`

	Form    *FormView            `json:"form,omitempty"`
	Request *domain.QuoteRequest `json:"request,omitempty"`
	Offers  []domain.QuoteOffer  `json:"offers,omitempty"`
	Summary *pricing.Summary     `json:"summary,omitempty"`
}

type FormView struct {
	Step       int                 `json:"step"`
	StepLabel  string              `json:"stepLabel"`
	TotalSteps int                 `json:"totalSteps"`
	Progress   int                 `json:"progress"`
	Draft      domain.QuoteRequest `json:"draft"`
	CanAdvance bool                `json:"canAdvance"`
	CanGoBack  bool                `json:"canGoBack"`
	CanSubmit  bool                `json:"canSubmit"`
}

type SetFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=vehicleType make model year driverAge location coverageType previousClaims"`
	Value string `json:"value"`
}

type QuoteResponse struct {
	Request domain.QuoteRequest `json:"request"`
	Summary pricing.Summary     `json:"summary"`
}
