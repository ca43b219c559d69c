package store

import (
	"context"

	"github.com/ougirez/motorquote/internal/wizard"
)

// Transition computes the next state of a session. ok is false when the
// event does not apply, in which case nothing is written.
type Transition func(current wizard.State) (next wizard.State, ok bool)

// SessionStore keeps one wizard state per session id. Entries expire after
// the store's TTL; Load, Update and Delete report constants.ErrSessionNotFound
// for unknown or expired ids.
type SessionStore interface {
	Load(ctx context.Context, id string) (wizard.State, error)
	Save(ctx context.Context, id string, state wizard.State) error
	// Update applies fn to the stored state and saves the result atomically.
	// It returns the state after the call and whether fn applied.
	Update(ctx context.Context, id string, fn Transition) (wizard.State, bool, error)
	Delete(ctx context.Context, id string) error
}
