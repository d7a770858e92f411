package store

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
)

var (
	ErrInvalidProfile = errors.New("store: invalid profile")
	ErrProfileLocked  = errors.New("store: profile already selected")
)

// ProfileGate holds the one-time profile choice. Reset is the only way to
// switch to a different profile.
type ProfileGate struct {
	slot *storage.Slot[model.Profile]
}

func (g *ProfileGate) Profile() model.Profile { return g.slot.Get() }

// Select stores p. Selecting the current profile again is a no-op.
func (g *ProfileGate) Select(p model.Profile) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, p)
	}
	var locked error
	err := g.slot.Mutate(func(prev model.Profile) (model.Profile, bool) {
		if prev == p {
			return prev, false
		}
		if prev != model.ProfileUnset {
			locked = fmt.Errorf("%w: %s", ErrProfileLocked, prev)
			return prev, false
		}
		return p, true
	})
	if locked != nil {
		return locked
	}
	return err
}

func (g *ProfileGate) Reset() error {
	return g.slot.Mutate(func(prev model.Profile) (model.Profile, bool) {
		return model.ProfileUnset, prev != model.ProfileUnset
	})
}

func (g *ProfileGate) IsUniversity() bool { return g.Profile() == model.ProfileUniversity }

func (g *ProfileGate) IsSchool() bool { return g.Profile() == model.ProfileSchool }

func (g *ProfileGate) NeedsSelection() bool { return g.Profile() == model.ProfileUnset }
