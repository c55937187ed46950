package domain

// Element is an abstract ingredient tag used for pairing.
// The vocabulary is small and fixed; values outside it never match a recipe.
type Element string

const (
	ElementFire     Element = "fire"
	ElementWater    Element = "water"
	ElementEarth    Element = "earth"
	ElementAir      Element = "air"
	ElementPositive Element = "positive"
	ElementNegative Element = "negative"
)

// ElementPool maps an element to its available count for one brewing attempt.
type ElementPool map[Element]int

// Clone returns an independent copy of the pool.
func (p ElementPool) Clone() ElementPool {
	out := make(ElementPool, len(p))
	for e, n := range p {
		out[e] = n
	}
	return out
}

// Total returns the summed count across all elements.
func (p ElementPool) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// ElementPair is two elements combined by the player into one resolvable unit.
// First/Second record assignment order; equality is order-independent.
type ElementPair struct {
	First  Element `json:"first"`
	Second Element `json:"second"`
}

// Matches reports whether the pair equals the unordered set {a, b}.
func (p ElementPair) Matches(a, b Element) bool {
	return (p.First == a && p.Second == b) || (p.First == b && p.Second == a)
}

// Key returns an order-independent lookup key for the pair.
func (p ElementPair) Key() string {
	a, b := string(p.First), string(p.Second)
	if a > b {
		a, b = b, a
	}
	return a + "+" + b
}
