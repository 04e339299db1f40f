package catalog

import (
	"fmt"
	"strconv"

	"k8s.io/apimachinery/pkg/labels"
)

// Example is a worked call of a puzzle and its expected result.
type Example struct {
	Args []int32
	Want int32
}

// Puzzle describes one bit manipulation puzzle: the operators it may use,
// its operator budget and difficulty, and how to evaluate it.
type Puzzle struct {
	ID       int64
	Name     string
	Func     string
	Arity    int
	Rating   int
	MaxOps   int
	Legal    OpSet
	Examples []Example

	domain func(args []int32) bool
	fn     func(args []int32) int32
	ref    func(args []int32) int32
}

func (r Puzzle) Labels() labels.Set {
	return labels.Set{
		"name":   r.Name,
		"func":   r.Func,
		"arity":  strconv.Itoa(r.Arity),
		"rating": strconv.Itoa(r.Rating),
		"maxops": strconv.Itoa(r.MaxOps),
	}
}

func (r Puzzle) String() string {
	return fmt.Sprintf("%d %s (%s), rating: %d, max ops: %d, legal ops: %s", r.ID, r.Name, r.Func, r.Rating, r.MaxOps, r.Legal)
}

// Eval runs the restricted-operator puzzle. Arguments outside the documented
// domain are not rejected, see InDomain.
func (r Puzzle) Eval(args ...int32) (int32, error) {
	if err := r.checkArity(args); err != nil {
		return 0, err
	}
	return r.fn(args), nil
}

// Reference runs the native Go equivalent of the puzzle. Unlike Eval it may
// panic on arguments outside the domain.
func (r Puzzle) Reference(args ...int32) (int32, error) {
	if err := r.checkArity(args); err != nil {
		return 0, err
	}
	return r.ref(args), nil
}

// InDomain reports whether args satisfy the puzzle's precondition.
func (r Puzzle) InDomain(args ...int32) bool {
	if len(args) != r.Arity {
		return false
	}
	if r.domain == nil {
		return true
	}
	return r.domain(args)
}

func (r Puzzle) checkArity(args []int32) error {
	if len(args) != r.Arity {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, r.Name, r.Arity, len(args))
	}
	return nil
}

func validatePuzzle(id int64, p Puzzle) error {
	switch {
	case p.ID != id:
		return fmt.Errorf("puzzle %s registered under id %d, has id %d", p.Name, id, p.ID)
	case p.Name == "" || p.Func == "":
		return fmt.Errorf("puzzle %d has no name", id)
	case p.Arity < 0 || p.Arity > 2:
		return fmt.Errorf("puzzle %s arity %d, must be between 0 and 2", p.Name, p.Arity)
	case p.Rating < 1 || p.Rating > 4:
		return fmt.Errorf("puzzle %s rating %d, must be between 1 and 4", p.Name, p.Rating)
	case p.MaxOps < 1:
		return fmt.Errorf("puzzle %s has no operator budget", p.Name)
	case p.Legal.Len() == 0:
		return fmt.Errorf("puzzle %s has no legal operators", p.Name)
	case p.fn == nil || p.ref == nil:
		return fmt.Errorf("puzzle %s is missing an implementation", p.Name)
	}
	for _, e := range p.Examples {
		if len(e.Args) != p.Arity {
			return fmt.Errorf("puzzle %s example %v does not match arity %d", p.Name, e.Args, p.Arity)
		}
	}
	return nil
}

func nullary(f func() int32) func([]int32) int32 {
	return func([]int32) int32 { return f() }
}

func unary(f func(int32) int32) func([]int32) int32 {
	return func(args []int32) int32 { return f(args[0]) }
}

func binary(f func(int32, int32) int32) func([]int32) int32 {
	return func(args []int32) int32 { return f(args[0], args[1]) }
}

// secondBetween accepts a second argument in [lo, hi].
func secondBetween(lo, hi int32) func([]int32) bool {
	return func(args []int32) bool { return args[1] >= lo && args[1] <= hi }
}
