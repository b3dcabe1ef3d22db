package technique

import "math/big"

// Dynamic builds the sequence bottom-up in a full table. It trades O(n)
// memory for O(1) incremental work per step, illustrating classic dynamic
// programming next to the space-optimized variants.
type Dynamic struct {
	indexState
	table []*big.Int
}

// NewDynamic creates a dynamic programming technique with an empty table.
func NewDynamic() *Dynamic {
	return &Dynamic{}
}

// Describe returns the static metadata for the technique.
func (t *Dynamic) Describe() Descriptor {
	return Descriptor{
		Name:            "dynamic",
		Summary:         "Bottom-up dynamic programming over a full table",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}
}

// Reset discards the table and rewinds to F(0).
func (t *Dynamic) Reset() {
	t.table = nil
	t.resetIndex()
}

// Step extends the table by one entry and returns it.
func (t *Dynamic) Step() (StepResult, error) {
	n := t.nextIndex()
	switch n {
	case 0:
		t.table = append(t.table, big.NewInt(0))
	case 1:
		t.table = append(t.table, big.NewInt(1))
	default:
		t.table = append(t.table, new(big.Int).Add(t.table[n-1], t.table[n-2]))
	}
	t.commit(n)
	return StepResult{Index: n, Value: clone(t.table[n])}, nil
}

var _ Technique = (*Dynamic)(nil)
