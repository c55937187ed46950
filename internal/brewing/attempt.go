package brewing

import (
	"fmt"
	"slices"

	"github.com/feybrew/cauldron/internal/domain"
)

// AttemptState names the phases of one crafting attempt. Transitions that
// skip required validation are rejected.
type AttemptState int

const (
	StateSelecting AttemptState = iota
	StatePairing
	StateChoosing
	StateCommitting
	StateSettled
)

func (s AttemptState) String() string {
	switch s {
	case StateSelecting:
		return "selecting-ingredients"
	case StatePairing:
		return "pairing"
	case StateChoosing:
		return "choosing"
	case StateCommitting:
		return "committing"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Attempt is the state machine driving one brew: ingredient selection,
// pairing, effect resolution, choice gathering, and the handoff to the
// committer. One user-driven interaction stream owns it; no locking.
type Attempt struct {
	state       AttemptState
	characterID string
	selection   []domain.IngredientInstance
	pairing     *Pairing
	effects     []domain.PairedEffect
	category    domain.Category
	choices     map[string]string
}

// NewAttempt starts an attempt for a character, in the selecting state.
func NewAttempt(characterID string) *Attempt {
	return &Attempt{
		state:       StateSelecting,
		characterID: characterID,
		choices:     make(map[string]string),
	}
}

// State returns the current phase.
func (a *Attempt) State() AttemptState { return a.state }

// CharacterID returns the owning character.
func (a *Attempt) CharacterID() string { return a.characterID }

// Effects returns the resolved effects once pairing is finalized.
func (a *Attempt) Effects() []domain.PairedEffect {
	out := make([]domain.PairedEffect, len(a.effects))
	copy(out, a.effects)
	return out
}

// Category returns the validated category once pairing is finalized.
func (a *Attempt) Category() domain.Category { return a.category }

// SelectIngredients records the selection and moves to pairing, building the
// element pool from the selection.
func (a *Attempt) SelectIngredients(selection []domain.IngredientInstance) error {
	if a.state != StateSelecting {
		return a.transitionError("select ingredients")
	}
	a.selection = slices.Clone(selection)
	a.pairing = NewPairing(BuildElementPool(selection))
	a.state = StatePairing
	return nil
}

// Pairing exposes the pairing engine while the attempt is in the pairing
// state.
func (a *Attempt) Pairing() (*Pairing, error) {
	if a.state != StatePairing {
		return nil, a.transitionError("access pairing")
	}
	return a.pairing, nil
}

// FinalizePairing resolves every pair against the catalog and validates the
// combination. A valid result advances to choosing; an invalid one reports
// the reason and stays in pairing so the player can adjust.
func (a *Attempt) FinalizePairing(recipes []domain.Recipe) (CombinationResult, error) {
	if a.state != StatePairing {
		return CombinationResult{}, a.transitionError("finalize pairing")
	}

	effects := AggregateEffects(recipes, a.pairing.Pairs())
	result := ValidateCombination(effects)
	if !result.Valid {
		return result, nil
	}

	a.effects = effects
	a.category = result.Category
	a.state = StateChoosing
	return result, nil
}

// SetChoice resolves one declared choice. Enumerated choices only accept a
// listed option; undeclared names are rejected.
func (a *Attempt) SetChoice(name, value string) error {
	if a.state != StateChoosing {
		return a.transitionError("set choice")
	}

	for _, v := range DeclaredChoices(a.effects) {
		if v.Name != name {
			continue
		}
		if v.Kind == VarEnumChoice && !slices.Contains(v.Options, value) {
			return fmt.Errorf("%w: %q is not an option for %s", domain.ErrInvalidInput, value, name)
		}
		a.choices[name] = value
		return nil
	}
	return fmt.Errorf("%w: no declared choice named %s", domain.ErrInvalidInput, name)
}

// CommitPayload is the validated, filled result handed to the committer.
type CommitPayload struct {
	CharacterID string
	Removals    []domain.IngredientRemoval
	Category    domain.Category
	EffectNames []string
	Description string
	Choices     map[string]string
}

// BeginCommit checks that every declared choice is resolved, fills the
// description, and moves to committing. The payload stays retrievable until
// Settle, so a failed commit can be retried without re-deriving pairs or
// choices.
func (a *Attempt) BeginCommit() (*CommitPayload, error) {
	if a.state != StateChoosing && a.state != StateCommitting {
		return nil, a.transitionError("begin commit")
	}

	if missing := UnresolvedChoices(a.effects, a.choices); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnresolvedChoice, missing)
	}

	a.state = StateCommitting
	choices := make(map[string]string, len(a.choices))
	for k, v := range a.choices {
		choices[k] = v
	}

	return &CommitPayload{
		CharacterID: a.characterID,
		Removals:    domain.ConsolidateRemovals(a.selection),
		Category:    a.category,
		EffectNames: ExpandEffectNames(a.effects),
		Description: BuildDescription(a.effects, a.choices),
		Choices:     choices,
	}, nil
}

// Settle ends the attempt after the committer reported success or a final
// failure. The attempt is discarded afterwards.
func (a *Attempt) Settle() error {
	if a.state != StateCommitting {
		return a.transitionError("settle")
	}
	a.state = StateSettled
	return nil
}

// Reset abandons an in-progress attempt with no persisted effect. Not
// allowed once the committer call has been issued.
func (a *Attempt) Reset() error {
	if a.state == StateCommitting {
		return a.transitionError("reset")
	}
	a.state = StateSelecting
	a.selection = nil
	a.pairing = nil
	a.effects = nil
	a.category = ""
	a.choices = make(map[string]string)
	return nil
}

func (a *Attempt) transitionError(op string) error {
	return fmt.Errorf("%w: cannot %s in state %s", domain.ErrInvalidTransition, op, a.state)
}
