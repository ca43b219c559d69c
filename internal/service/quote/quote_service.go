package quote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ougirez/motorquote/internal/catalog"
	"github.com/ougirez/motorquote/internal/domain"
	"github.com/ougirez/motorquote/internal/domain/dto"
	"github.com/ougirez/motorquote/internal/form"
	"github.com/ougirez/motorquote/internal/pkg/constants"
	"github.com/ougirez/motorquote/internal/pkg/logger"
	"github.com/ougirez/motorquote/internal/pkg/store"
	"github.com/ougirez/motorquote/internal/pricing"
	"github.com/ougirez/motorquote/internal/wizard"
)

type Service struct {
	store   store.SessionStore
	catalog *catalog.Catalog
	locks   *sessionLocks
	newID   func() string
}

func NewQuoteService(store store.SessionStore, cat *catalog.Catalog) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		locks:   newSessionLocks(),
		newID:   uuid.NewString,
	}
}

func (s *Service) Catalog() catalog.Options {
	return s.catalog.Options()
}

// PriceRequest prices a full request without touching any session.
func (s *Service) PriceRequest(ctx context.Context, req domain.QuoteRequest) (*dto.QuoteResponse, error) {
	if !req.Complete() {
		return nil, constants.ErrIncompleteRequest
	}

	offers := pricing.Price(req, s.catalog)
	logger.Debugf(ctx, "priced %d offers for %s in %s", len(offers), req.VehicleType, req.Location)

	return &dto.QuoteResponse{
		Request: req,
		Summary: pricing.Summarize(offers, pricing.FactorsFor(req, s.catalog)),
	}, nil
}

func (s *Service) CreateSession(ctx context.Context) (*dto.SessionView, error) {
	id := s.newID()
	ctx = logger.With(ctx, zap.String(constants.CtxKeySessionID, id))

	state := wizard.New()
	if err := s.store.Save(ctx, id, state); err != nil {
		logger.Errorf(ctx, "store.Save: %s", err.Error())
		return nil, fmt.Errorf("store.Save: %w", err)
	}

	logger.Info(ctx, "session created")
	return s.view(id, state, true), nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*dto.SessionView, error) {
	state, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	return s.view(id, state, true), nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	logger.Info(logger.With(ctx, zap.String(constants.CtxKeySessionID, id)), "session deleted")
	return nil
}

func (s *Service) Start(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventStart, wizard.State.Start)
}

// SetField stores one answer. The value is kept as given; only the field
// name is checked.
func (s *Service) SetField(ctx context.Context, id string, field form.Field, value string) (*dto.SessionView, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("field %q: %w", field, constants.ErrUnknownField)
	}

	return s.apply(ctx, id, wizard.EventFormUpdate, func(st wizard.State) (wizard.State, bool) {
		return st.UpdateForm(func(c form.Collector) form.Collector {
			return c.SetField(field, value)
		})
	})
}

func (s *Service) Next(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventFormUpdate, func(st wizard.State) (wizard.State, bool) {
		next, ok := st.UpdateForm(form.Collector.Next)
		return next, ok && next.Form.Step != st.Form.Step
	})
}

func (s *Service) Previous(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventFormUpdate, func(st wizard.State) (wizard.State, bool) {
		next, ok := st.UpdateForm(form.Collector.Previous)
		return next, ok && next.Form.Step != st.Form.Step
	})
}

func (s *Service) Submit(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventSubmit, func(st wizard.State) (wizard.State, bool) {
		return st.SubmitForm(s.catalog)
	})
}

func (s *Service) EditDetails(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventEditDetails, wizard.State.EditDetails)
}

func (s *Service) NewQuote(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventNewQuote, wizard.State.NewQuote)
}

// Reset returns to the landing screen from the form or the results.
func (s *Service) Reset(ctx context.Context, id string) (*dto.SessionView, error) {
	return s.apply(ctx, id, wizard.EventReset, wizard.State.Reset)
}

// apply runs one transition on a session. Calls for the same session are
// serialized here and the store applies each one atomically. A refused
// transition is not an error: the unchanged state comes back with Applied
// set to false.
func (s *Service) apply(
	ctx context.Context,
	id string,
	event wizard.Event,
	transition store.Transition,
) (*dto.SessionView, error) {
	ctx = logger.With(ctx, zap.String(constants.CtxKeySessionID, id))

	unlock := s.locks.lock(id)
	defer unlock()

	var from wizard.Screen
	state, ok, err := s.store.Update(ctx, id, func(current wizard.State) (wizard.State, bool) {
		from = current.Screen
		return transition(current)
	})
	if err != nil {
		return nil, fmt.Errorf("store.Update: %w", err)
	}

	if !ok {
		logger.Debugf(ctx, "event %s ignored on screen %s", event, state.Screen)
		return s.view(id, state, false), nil
	}

	if state.Screen != from {
		logger.Infof(ctx, "event %s: %s -> %s", event, from, state.Screen)
	}

	return s.view(id, state, true), nil
}

func (s *Service) view(id string, state wizard.State, applied bool) *dto.SessionView {
	v := &dto.SessionView{
		ID:      id,
		Screen:  string(state.Screen),
		Applied: applied,
		Request: state.Request,
	}

	switch state.Screen {
	case wizard.ScreenCollecting:
		f := state.Form
		v.Form = &dto.FormView{
			Step:       int(f.Step),
			StepLabel:  f.Step.Label(),
			TotalSteps: form.TotalSteps,
			Progress:   f.Progress(),
			Draft:      f.Draft,
			CanAdvance: f.CanAdvance(),
			CanGoBack:  f.CanGoBack(),
			CanSubmit:  f.CanSubmit(),
		}
	case wizard.ScreenShowing:
		v.Offers = state.Offers
		if state.Request != nil {
			summary := pricing.Summarize(state.Offers, pricing.FactorsFor(*state.Request, s.catalog))
			v.Summary = &summary
		}
	}

	return v
}
