package catalog

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	assert.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newCatalog(t)
	assert.Equal(t, 12, c.Count())

	var names []string
	for _, p := range c.All() {
		names = append(names, p.Name)
	}
	want := []string{
		"bitAnd", "getByte", "logicalShift", "bitCount", "bang", "tmin",
		"fitsBits", "divpwr2", "negate", "isPositive", "isLessOrEqual", "ilog2",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestGetAndLookup(t *testing.T) {
	c := newCatalog(t)

	cases := map[string]struct {
		id          int64
		name        string
		expectedFn  string
		expectedErr bool
	}{
		"ByOriginalName": {id: 4, name: "bitCount", expectedFn: "PopCount"},
		"ByFuncName":     {id: 12, name: "Log2Floor", expectedFn: "Log2Floor"},
		"Unknown":        {id: 13, name: "conditional", expectedErr: true},
		"Zero":           {id: 0, name: "", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			byID, err := c.Get(tc.id)
			byName, errName := c.Lookup(tc.name)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrNotFound)
				assert.ErrorIs(t, errName, ErrNotFound)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, errName)
			assert.Equal(t, tc.expectedFn, byID.Func)
			assert.Equal(t, byID.ID, byName.ID)
		})
	}
}

func TestSelect(t *testing.T) {
	c := newCatalog(t)

	cases := map[string]struct {
		selector string
		names    []string
	}{
		"Rating4": {
			selector: "rating=4",
			names:    []string{"bitCount", "bang", "ilog2"},
		},
		"Nullary": {
			selector: "arity=0",
			names:    []string{"tmin"},
		},
		"UnaryCheap": {
			selector: "arity=1,maxops<10",
			names:    []string{"negate", "isPositive"},
		},
		"ByFunc": {
			selector: "func in (GetByte,DivPow2)",
			names:    []string{"getByte", "divpwr2"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			selector, err := labels.Parse(tc.selector)
			assert.NoError(t, err)

			var names []string
			for _, p := range c.Select(selector) {
				names = append(names, p.Name)
			}
			if diff := cmp.Diff(tc.names, names); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestExamples(t *testing.T) {
	for _, p := range newCatalog(t).All() {
		t.Run(p.Name, func(t *testing.T) {
			assert.NotEmpty(t, p.Examples)
			for _, e := range p.Examples {
				assert.True(t, p.InDomain(e.Args...), "%s%v", p.Name, e.Args)

				got, err := p.Eval(e.Args...)
				assert.NoError(t, err)
				assert.Equal(t, e.Want, got, "%s%v", p.Name, e.Args)

				want, err := p.Reference(e.Args...)
				assert.NoError(t, err)
				assert.Equal(t, e.Want, want, "reference %s%v", p.Name, e.Args)
			}
		})
	}
}

func TestArity(t *testing.T) {
	p, err := newCatalog(t).Lookup("isLessOrEqual")
	assert.NoError(t, err)

	_, err = p.Eval(1)
	assert.ErrorIs(t, err, ErrArity)
	_, err = p.Reference(1, 2, 3)
	assert.ErrorIs(t, err, ErrArity)
	assert.False(t, p.InDomain(1))

	got, err := p.Eval(-3, -3)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), got)
}

func TestDomain(t *testing.T) {
	c := newCatalog(t)

	cases := map[string]struct {
		name     string
		args     []int32
		inDomain bool
	}{
		"GetByteLow":         {name: "getByte", args: []int32{1, 0}, inDomain: true},
		"GetByteHigh":        {name: "getByte", args: []int32{1, 4}},
		"ShiftNegative":      {name: "logicalShift", args: []int32{1, -1}},
		"FitsBitsZero":       {name: "fitsBits", args: []int32{1, 0}},
		"FitsBitsFull":       {name: "fitsBits", args: []int32{1, 32}, inDomain: true},
		"DivPwr2TooLarge":    {name: "divpwr2", args: []int32{1, 31}},
		"Ilog2Zero":          {name: "ilog2", args: []int32{0}},
		"Ilog2MaxInt":        {name: "ilog2", args: []int32{math.MaxInt32}, inDomain: true},
		"NegateAnything":     {name: "negate", args: []int32{math.MinInt32}, inDomain: true},
		"TminNoArguments":    {name: "tmin", args: nil, inDomain: true},
		"BitAndUnrestricted": {name: "bitAnd", args: []int32{-1, math.MinInt32}, inDomain: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := c.Lookup(tc.name)
			assert.NoError(t, err)
			assert.Equal(t, tc.inDomain, p.InDomain(tc.args...))
		})
	}
}

// TestAgainstReference samples each puzzle's domain and compares it with the
// native implementation.
func TestAgainstReference(t *testing.T) {
	edges := []int32{0, 1, -1, math.MinInt32, math.MaxInt32}
	r := rand.New(rand.NewPCG(7, 11))

	word := func() int32 {
		if r.IntN(4) == 0 {
			return edges[r.IntN(len(edges))]
		}
		return int32(r.Uint32())
	}
	small := func() int32 { return int32(r.IntN(40)) - 4 }

	for _, p := range newCatalog(t).All() {
		t.Run(p.Name, func(t *testing.T) {
			checked := 0
			for i := 0; i < 20000; i++ {
				args := make([]int32, p.Arity)
				for j := range args {
					args[j] = word()
					if j == 1 && i%2 == 0 {
						args[j] = small()
					}
				}
				if !p.InDomain(args...) {
					continue
				}
				checked++
				got, err := p.Eval(args...)
				assert.NoError(t, err)
				want, err := p.Reference(args...)
				assert.NoError(t, err)
				if got != want {
					t.Fatalf("%s%v: -want %d, +got %d", p.Name, args, want, got)
				}
			}
			assert.Greater(t, checked, 0)
		})
	}
}
