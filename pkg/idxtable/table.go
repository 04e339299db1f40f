package idxtable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"k8s.io/apimachinery/pkg/labels"
)

// Labeler is implemented by entries that can be selected by label.
type Labeler interface {
	Labels() labels.Set
}

type Table[T1 any] interface {
	Get(id int64) (T1, error)
	Claim(id int64, d T1) error

	Iterate() *Iterator[T1]

	Count() int
	Has(id int64) bool

	GetAll() map[int64]T1
	GetByLabel(selector labels.Selector) []T1
}

type ValidationFn[T1 any] func(id int64, d T1) error

func NewTable[T1 any](s int64, initEntries map[int64]T1, v ValidationFn[T1]) (Table[T1], error) {
	r := &table[T1]{
		m:          new(sync.RWMutex),
		table:      map[int64]T1{},
		size:       s,
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T1 any] struct {
	m          *sync.RWMutex
	table      map[int64]T1
	size       int64
	validateFn ValidationFn[T1]
}

func (r *table[T1]) validate(id int64, d T1) error {
	if id < 0 || id > r.size-1 {
		return fmt.Errorf("id %d is outside the allowed entries: 0 to %d", id, r.size-1)
	}
	if r.validateFn != nil {
		if err := r.validateFn(id, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if id < 0 || id > r.size-1 {
		return d, fmt.Errorf("id %d is outside the allowed entries: 0 to %d", id, r.size-1)
	}

	d, ok := r.table[id]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table[T1]) Claim(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d)
}

func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

// iterate snapshots the table, later claims are not visible to the iterator.
func (r *table[T1]) iterate() *Iterator[T1] {
	keys := make([]int64, 0, len(r.table))
	snapshot := make(map[int64]T1, len(r.table))
	for key, d := range r.table {
		keys = append(keys, key)
		snapshot[key] = d
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator[T1]{current: -1, keys: keys, table: snapshot}
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table[T1]) add(id int64, d T1) error {
	if err := r.validate(id, d); err != nil {
		return err
	}
	if _, ok := r.table[id]; ok {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = d
	return nil
}

func (r *table[T1]) GetAll() map[int64]T1 {
	entries := make(map[int64]T1, r.Count())

	iter := r.Iterate()
	for iter.Next() {
		entries[iter.ID()] = iter.Value()
	}
	return entries
}

// GetByLabel returns the entries, in id order, whose labels match the
// selector. Entries that do not implement Labeler never match.
func (r *table[T1]) GetByLabel(selector labels.Selector) []T1 {
	var entries []T1

	iter := r.Iterate()
	for iter.Next() {
		l, ok := any(iter.Value()).(Labeler)
		if !ok {
			continue
		}
		if selector.Matches(l.Labels()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}
