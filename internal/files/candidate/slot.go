package candidate

// slot is a lazily computed value. ok is false until the value is loaded,
// so a cached value and its presence can never disagree.
type slot[T any] struct {
	value T
	ok    bool
}

func (s *slot[T]) get(load func() T) T {
	if !s.ok {
		s.value = load()
		s.ok = true
	}
	return s.value
}

func (s *slot[T]) set(v T) {
	s.value = v
	s.ok = true
}

func (s *slot[T]) clear() {
	var zero T
	s.value = zero
	s.ok = false
}
