package cost

import (
	"github.com/katalvlaran/keychain/paths"
)

// BaseTable is PairCost at level 0: for every ordered pair of keys, the
// shortest move count plus one confirm press. It never changes once built.
type BaseTable struct {
	table *paths.Table
	costs map[[2]rune]int
}

// NewBaseTable precomputes the level-0 cost of every pair in table.
func NewBaseTable(table *paths.Table) (*BaseTable, error) {
	keys := table.Keypad().Keys()
	b := &BaseTable{table: table, costs: make(map[[2]rune]int, len(keys)*len(keys))}
	for _, from := range keys {
		for _, to := range keys {
			n, err := table.Shortest(from, to)
			if err != nil {
				return nil, err
			}
			b.costs[[2]rune{from, to}] = n
		}
	}
	return b, nil
}

// Cost returns the level-0 cost of moving from a to b and confirming.
func (b *BaseTable) Cost(from, to rune) (int, error) {
	c, ok := b.costs[[2]rune{from, to}]
	if !ok {
		kp := b.table.Keypad()
		if !kp.Contains(from) {
			return 0, unknownKey(kp, from)
		}
		return 0, unknownKey(kp, to)
	}
	return c, nil
}
