package home

import "sync"

// ViewportWidthProvider exposes the current viewport width and notifies
// subscribers on every change.
type ViewportWidthProvider interface {
	Width() int
	// Subscribe registers fn and returns the function that removes it.
	Subscribe(fn func(width int)) (unsubscribe func())
}

type subscription struct {
	id int
	fn func(width int)
}

// Viewport is an in-memory ViewportWidthProvider. SetWidth notifies
// subscribers synchronously, in subscription order, without debouncing.
type Viewport struct {
	mu     sync.Mutex
	width  int
	nextID int
	subs   []subscription
}

var _ ViewportWidthProvider = (*Viewport)(nil)

// NewViewport creates a Viewport with an initial width.
func NewViewport(width int) *Viewport {
	return &Viewport{width: width}
}

// Width returns the current width in pixels.
func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// SetWidth records a resize and notifies every subscriber.
func (v *Viewport) SetWidth(width int) {
	v.mu.Lock()
	v.width = width
	subs := make([]subscription, len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(width)
	}
}

// Subscribe registers fn. The returned function is safe to call more than once.
func (v *Viewport) Subscribe(fn func(width int)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscription{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

// Subscribers returns the number of registered listeners.
func (v *Viewport) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *Viewport) remove(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
			return
		}
	}
}

// StudioSummary keeps the word-limited studio description in sync with a
// viewport. It subscribes on creation; Close unsubscribes.
type StudioSummary struct {
	mu          sync.RWMutex
	text        string
	policy      WordLimitPolicy
	limit       int
	summary     string
	unsubscribe func()
}

// NewStudioSummary computes the summary for the provider's current width and
// recomputes it on every width change until Close.
func NewStudioSummary(text string, policy WordLimitPolicy, viewport ViewportWidthProvider) *StudioSummary {
	s := &StudioSummary{text: text, policy: policy}
	s.resize(viewport.Width())
	s.unsubscribe = viewport.Subscribe(s.resize)
	return s
}

func (s *StudioSummary) resize(width int) {
	limit := s.policy.Limit(width)
	summary := LimitWords(s.text, limit)

	s.mu.Lock()
	s.limit = limit
	s.summary = summary
	s.mu.Unlock()
}

// Text returns the current summary.
func (s *StudioSummary) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Limit returns the current word budget.
func (s *StudioSummary) Limit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limit
}

// Truncated reports whether the current summary cuts the description.
func (s *StudioSummary) Truncated() bool {
	return IsTruncated(s.text, s.Limit())
}

// Close stops listening to the viewport.
func (s *StudioSummary) Close() {
	s.unsubscribe()
}
