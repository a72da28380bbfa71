package reconcile

import "sync"

type Status int

const (
	Unloaded Status = iota
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unloaded"
	}
}

// Token marks one mount of a view. A token stays live until the view is
// unmounted or mounted again.
type Token struct {
	epoch uint64
}

// View holds the state a page owns for the lifetime of a mount. The value is
// only ever replaced as a whole.
type View[T any] struct {
	mu      sync.Mutex
	value   T
	status  Status
	epoch   uint64
	mounted bool
}

func NewView[T any]() *View[T] {
	return &View[T]{}
}

func (v *View[T]) Mount() Token {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.epoch++
	v.mounted = true

	return Token{epoch: v.epoch}
}

func (v *View[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.epoch++
	v.mounted = false
}

func (v *View[T]) IsLive(token Token) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.isLive(token)
}

// Apply replaces the value when token is still live and reports whether it did.
func (v *View[T]) Apply(token Token, value T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.isLive(token) {
		return false
	}

	v.value = value
	v.status = Loaded

	return true
}

// Fail records a failed attempt. A previously loaded value is kept.
func (v *View[T]) Fail(token Token) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.isLive(token) {
		return false
	}

	if v.status != Loaded {
		v.status = Failed
	}

	return true
}

func (v *View[T]) Snapshot() (T, Status) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value, v.status
}

func (v *View[T]) isLive(token Token) bool {
	return v.mounted && token.epoch != 0 && token.epoch == v.epoch
}
