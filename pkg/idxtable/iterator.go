package idxtable

type Iterator[T1 any] struct {
	current int64
	keys    []int64
	table   map[int64]T1
}

func (r *Iterator[T1]) Value() T1 {
	return r.table[r.keys[r.current]]
}

func (r *Iterator[T1]) ID() int64 {
	return r.keys[r.current]
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < int64(len(r.keys))
}

// IsConsecutive reports whether the current id directly follows the previous one.
func (r *Iterator[T1]) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	return r.keys[r.current-1] == r.keys[r.current]-1
}
