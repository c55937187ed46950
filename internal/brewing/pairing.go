package brewing

import (
	"fmt"
	"iter"
	"sort"

	"github.com/feybrew/cauldron/internal/domain"
)

// Pairing tracks which pool elements the player has combined into pairs.
// The pool is fixed for the attempt; pairs only borrow from it. Single
// logical owner, no internal locking.
type Pairing struct {
	pool  domain.ElementPool
	pairs []domain.ElementPair
}

// NewPairing starts pairing over a fixed element pool.
func NewPairing(pool domain.ElementPool) *Pairing {
	return &Pairing{pool: pool.Clone()}
}

// Pairs returns the pairs in assignment order.
func (p *Pairing) Pairs() []domain.ElementPair {
	out := make([]domain.ElementPair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// AddPair appends a pair drawn from the remaining pool. Both elements must
// currently be available; pairing the same element with itself requires two
// remaining occurrences.
func (p *Pairing) AddPair(a, b domain.Element) error {
	remaining := p.remainingCounts()
	remaining[a]--
	remaining[b]--
	if remaining[a] < 0 {
		return fmt.Errorf("%w: %s", domain.ErrElementUnavailable, a)
	}
	if remaining[b] < 0 {
		return fmt.Errorf("%w: %s", domain.ErrElementUnavailable, b)
	}

	p.pairs = append(p.pairs, domain.ElementPair{First: a, Second: b})
	return nil
}

// RemovePair withdraws the pair at index, returning its elements to the
// remaining pool.
func (p *Pairing) RemovePair(index int) error {
	if index < 0 || index >= len(p.pairs) {
		return fmt.Errorf("%w: index %d", domain.ErrPairNotFound, index)
	}
	p.pairs = append(p.pairs[:index], p.pairs[index+1:]...)
	return nil
}

// Remaining yields the pool minus all currently paired elements, in element
// order. Elements with no remaining count are omitted. The sequence is
// restartable; each range walks a fresh snapshot.
func (p *Pairing) Remaining() iter.Seq2[domain.Element, int] {
	return func(yield func(domain.Element, int) bool) {
		remaining := p.remainingCounts()

		keys := make([]string, 0, len(remaining))
		for e := range remaining {
			keys = append(keys, string(e))
		}
		sort.Strings(keys)

		for _, k := range keys {
			e := domain.Element(k)
			if remaining[e] <= 0 {
				continue
			}
			if !yield(e, remaining[e]) {
				return
			}
		}
	}
}

// RemainingCount returns how many occurrences of e are still unpaired.
func (p *Pairing) RemainingCount(e domain.Element) int {
	n := p.remainingCounts()[e]
	if n < 0 {
		return 0
	}
	return n
}

func (p *Pairing) remainingCounts() domain.ElementPool {
	remaining := p.pool.Clone()
	for _, pair := range p.pairs {
		remaining[pair.First]--
		remaining[pair.Second]--
	}
	return remaining
}
