package brewing

import (
	"fmt"
	"math/rand"

	"github.com/feybrew/cauldron/internal/domain"
)

// Roller is the injected random-integer source for outcome trials. Die rolls
// are uniform over 1..sides inclusive. Seedable so trials are reproducible
// in tests.
type Roller interface {
	Roll(sides int) int
}

type seededRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller backed by a seeded PRNG. Game randomness, not
// security critical.
func NewRoller(seed int64) Roller {
	return &seededRoller{rng: rand.New(rand.NewSource(seed))} //nolint:gosec
}

func (r *seededRoller) Roll(sides int) int {
	return r.rng.Intn(sides) + 1
}

// ResolveOutcome performs a single trial: one d20 draw plus the modifier
// compared against threshold. The raw roll, modifier and total all survive
// into the record for display.
func ResolveOutcome(roller Roller, modifier, threshold int) domain.BrewOutcome {
	roll := roller.Roll(BrewDieSides)
	total := roll + modifier
	return domain.BrewOutcome{
		Roll:     roll,
		Modifier: modifier,
		Total:    total,
		Success:  total >= threshold,
	}
}

// ResolveBatch draws size independent trials eagerly, before any commit can
// observe them, and reports the ordered list plus the aggregate success
// count.
func ResolveBatch(roller Roller, modifier, threshold, size int) (domain.BatchResult, error) {
	if size < 1 {
		return domain.BatchResult{}, fmt.Errorf("%w: batch size must be at least 1", domain.ErrInvalidInput)
	}
	if size > MaxBatchSize {
		return domain.BatchResult{}, fmt.Errorf("%w: batch size exceeds %d", domain.ErrInvalidInput, MaxBatchSize)
	}

	result := domain.BatchResult{Outcomes: make([]domain.BrewOutcome, 0, size)}
	for i := 0; i < size; i++ {
		outcome := ResolveOutcome(roller, modifier, threshold)
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Success {
			result.SuccessCount++
		}
	}
	return result, nil
}
