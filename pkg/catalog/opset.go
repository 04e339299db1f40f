package catalog

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Op is one of the operators a puzzle may be allowed to use.
type Op uint

const (
	OpLogicalNot Op = iota // !
	OpNot                  // ~
	OpAnd                  // &
	OpXor                  // ^
	OpOr                   // |
	OpAdd                  // +
	OpShl                  // <<
	OpShr                  // >>
	numOps
)

var opSymbols = [numOps]string{"!", "~", "&", "^", "|", "+", "<<", ">>"}

func (o Op) String() string {
	if o >= numOps {
		return fmt.Sprintf("Op(%d)", uint(o))
	}
	return opSymbols[o]
}

// ParseOp returns the operator spelled by s.
func ParseOp(s string) (Op, error) {
	for i, sym := range opSymbols {
		if sym == s {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// OpSet is an immutable set of operators.
type OpSet struct {
	set *bitset.BitSet
}

func NewOpSet(ops ...Op) OpSet {
	set := bitset.New(uint(numOps))
	for _, op := range ops {
		set.Set(uint(op))
	}
	return OpSet{set: set}
}

// ParseOpSet parses a space separated operator list such as "~ |".
func ParseOpSet(s string) (OpSet, error) {
	var ops []Op
	for _, f := range strings.Fields(s) {
		op, err := ParseOp(f)
		if err != nil {
			return OpSet{}, err
		}
		ops = append(ops, op)
	}
	return NewOpSet(ops...), nil
}

func (r OpSet) Has(op Op) bool {
	return r.set != nil && r.set.Test(uint(op))
}

func (r OpSet) Len() int {
	if r.set == nil {
		return 0
	}
	return int(r.set.Count())
}

// Ops returns the operators in the set in canonical order.
func (r OpSet) Ops() []Op {
	if r.set == nil {
		return nil
	}
	ops := make([]Op, 0, r.set.Count())
	for i, ok := r.set.NextSet(0); ok; i, ok = r.set.NextSet(i + 1) {
		ops = append(ops, Op(i))
	}
	return ops
}

func (r OpSet) String() string {
	syms := make([]string, 0, r.Len())
	for _, op := range r.Ops() {
		syms = append(syms, op.String())
	}
	return strings.Join(syms, " ")
}
