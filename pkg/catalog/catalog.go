// Package catalog describes the bits32 puzzles: the operators each may use,
// its operator budget, rating and worked examples, and a native reference to
// check it against.
package catalog

import (
	"fmt"
	"math"

	"github.com/henderiw/bitpuzzle/pkg/bits32"
	"github.com/henderiw/bitpuzzle/pkg/bits32/ref"
	"github.com/henderiw/bitpuzzle/pkg/idxtable"
	"k8s.io/apimachinery/pkg/labels"
)

type Catalog struct {
	table idxtable.Table[Puzzle]
}

// New returns the catalog of all puzzles, keyed by id 1 to 12.
func New() (*Catalog, error) {
	puzzles := definitions()
	entries := make(map[int64]Puzzle, len(puzzles))
	for _, p := range puzzles {
		if _, ok := entries[p.ID]; ok {
			return nil, fmt.Errorf("duplicate puzzle id %d", p.ID)
		}
		entries[p.ID] = p
	}
	// id 0 is never used
	table, err := idxtable.NewTable[Puzzle](int64(len(entries)+1), entries, validatePuzzle)
	if err != nil {
		return nil, err
	}
	iter := table.Iterate()
	for iter.Next() {
		if iter.ID() != 1 && !iter.IsConsecutive() {
			return nil, fmt.Errorf("puzzle ids are not consecutive at %d", iter.ID())
		}
	}
	return &Catalog{table: table}, nil
}

func (r *Catalog) Get(id int64) (Puzzle, error) {
	p, err := r.table.Get(id)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return p, nil
}

// Lookup finds a puzzle by its name or by the name of its bits32 function.
func (r *Catalog) Lookup(name string) (Puzzle, error) {
	iter := r.table.Iterate()
	for iter.Next() {
		if p := iter.Value(); p.Name == name || p.Func == name {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// All returns every puzzle in id order.
func (r *Catalog) All() []Puzzle {
	puzzles := make([]Puzzle, 0, r.table.Count())
	iter := r.table.Iterate()
	for iter.Next() {
		puzzles = append(puzzles, iter.Value())
	}
	return puzzles
}

func (r *Catalog) Select(selector labels.Selector) []Puzzle {
	return r.table.GetByLabel(selector)
}

func (r *Catalog) Count() int {
	return r.table.Count()
}

func allOps() OpSet {
	return NewOpSet(OpLogicalNot, OpNot, OpAnd, OpXor, OpOr, OpAdd, OpShl, OpShr)
}

func allOpsButNot() OpSet {
	return NewOpSet(OpNot, OpAnd, OpXor, OpOr, OpAdd, OpShl, OpShr)
}

func definitions() []Puzzle {
	return []Puzzle{
		{
			ID: 1, Name: "bitAnd", Func: "BitwiseAnd", Arity: 2, Rating: 1, MaxOps: 8,
			Legal:    NewOpSet(OpNot, OpOr),
			Examples: []Example{{Args: []int32{6, 5}, Want: 4}},
			fn:       binary(bits32.BitwiseAnd),
			ref:      binary(ref.And),
		},
		{
			ID: 2, Name: "getByte", Func: "GetByte", Arity: 2, Rating: 2, MaxOps: 6,
			Legal:    allOps(),
			Examples: []Example{{Args: []int32{0x12345678, 1}, Want: 0x56}},
			domain:   secondBetween(0, 3),
			fn:       binary(bits32.GetByte),
			ref:      binary(ref.Byte),
		},
		{
			ID: 3, Name: "logicalShift", Func: "LogicalShiftRight", Arity: 2, Rating: 3, MaxOps: 20,
			Legal: allOpsButNot(),
			// 0x87654321 >> 4
			Examples: []Example{{Args: []int32{-0x789abcdf, 4}, Want: 0x08765432}},
			domain:   secondBetween(0, 31),
			fn:       binary(bits32.LogicalShiftRight),
			ref:      binary(ref.LogicalShiftRight),
		},
		{
			ID: 4, Name: "bitCount", Func: "PopCount", Arity: 1, Rating: 4, MaxOps: 40,
			Legal: allOps(),
			Examples: []Example{
				{Args: []int32{5}, Want: 2},
				{Args: []int32{7}, Want: 3},
			},
			fn:  unary(bits32.PopCount),
			ref: unary(ref.PopCount),
		},
		{
			ID: 5, Name: "bang", Func: "LogicalNot", Arity: 1, Rating: 4, MaxOps: 12,
			Legal: allOpsButNot(),
			Examples: []Example{
				{Args: []int32{3}, Want: 0},
				{Args: []int32{0}, Want: 1},
			},
			fn:  unary(bits32.LogicalNot),
			ref: unary(ref.LogicalNot),
		},
		{
			ID: 6, Name: "tmin", Func: "MinInt", Arity: 0, Rating: 1, MaxOps: 4,
			Legal:    allOps(),
			Examples: []Example{{Args: []int32{}, Want: math.MinInt32}},
			fn:       nullary(bits32.MinInt),
			ref:      nullary(ref.MinInt),
		},
		{
			ID: 7, Name: "fitsBits", Func: "FitsInBits", Arity: 2, Rating: 2, MaxOps: 15,
			Legal: allOps(),
			Examples: []Example{
				{Args: []int32{5, 3}, Want: 0},
				{Args: []int32{-4, 3}, Want: 1},
			},
			domain: secondBetween(1, 32),
			fn:     binary(bits32.FitsInBits),
			ref:    binary(ref.FitsInBits),
		},
		{
			ID: 8, Name: "divpwr2", Func: "DivPow2", Arity: 2, Rating: 2, MaxOps: 15,
			Legal: allOps(),
			Examples: []Example{
				{Args: []int32{15, 1}, Want: 7},
				{Args: []int32{-33, 4}, Want: -2},
			},
			domain: secondBetween(0, 30),
			fn:     binary(bits32.DivPow2),
			ref:    binary(ref.DivPow2),
		},
		{
			ID: 9, Name: "negate", Func: "Negate", Arity: 1, Rating: 2, MaxOps: 5,
			Legal:    allOps(),
			Examples: []Example{{Args: []int32{1}, Want: -1}},
			fn:       unary(bits32.Negate),
			ref:      unary(ref.Negate),
		},
		{
			ID: 10, Name: "isPositive", Func: "IsPositive", Arity: 1, Rating: 3, MaxOps: 8,
			Legal: allOps(),
			Examples: []Example{
				{Args: []int32{-1}, Want: 0},
				{Args: []int32{0}, Want: 0},
			},
			fn:  unary(bits32.IsPositive),
			ref: unary(ref.IsPositive),
		},
		{
			ID: 11, Name: "isLessOrEqual", Func: "IsLessOrEqual", Arity: 2, Rating: 3, MaxOps: 24,
			Legal:    allOps(),
			Examples: []Example{{Args: []int32{4, 5}, Want: 1}},
			fn:       binary(bits32.IsLessOrEqual),
			ref:      binary(ref.IsLessOrEqual),
		},
		{
			ID: 12, Name: "ilog2", Func: "Log2Floor", Arity: 1, Rating: 4, MaxOps: 90,
			Legal:    allOps(),
			Examples: []Example{{Args: []int32{16}, Want: 4}},
			domain:   func(args []int32) bool { return args[0] > 0 },
			fn:       unary(bits32.Log2Floor),
			ref:      unary(ref.Log2Floor),
		},
	}
}
