package placement

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/model-picker/internal/model"
)

// Transition errors
var (
	ErrInvalidTransition = errors.New("invalid placement transition")
	ErrNilDescriptor     = errors.New("descriptor is nil")
)

// Controller is the single owner of the placement state.
type Controller struct {
	mu    sync.Mutex
	state model.PlacementState

	subscribers map[int]func(model.PlacementState)
	nextID      int

	// deliveries queued behind the current drain pass
	queue    []delivery
	draining bool
}

// delivery targets subscriber ids; ids unsubscribed before delivery are skipped
type delivery struct {
	state   model.PlacementState
	targets []int
}

// NewController returns a controller in the Browsing state.
func NewController() *Controller {
	return &Controller{
		subscribers: make(map[int]func(model.PlacementState)),
	}
}

// State returns the current snapshot.
func (c *Controller) State() model.PlacementState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for state snapshots. fn first receives the current
// state, then every later change. Call the returned function to unsubscribe.
func (c *Controller) Subscribe(fn func(model.PlacementState)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.enqueueLocked(c.state, []int{id})
	c.mu.Unlock()

	c.drain()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Select highlights d and enters placement mode.
func (c *Controller) Select(d *model.ModelDescriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	return c.transition("select", model.PhaseBrowsing, func(s *model.PlacementState) {
		s.Selected = d
		s.PlacementActive = true
		log.Printf("placement: selected model %s", d.Name)
	})
}

// Cancel leaves placement mode without confirming.
func (c *Controller) Cancel() error {
	return c.transition("cancel", model.PhasePlacing, func(s *model.PlacementState) {
		log.Printf("placement: placement of %s cancelled", s.Selected.Name)
		reset(s)
	})
}

// Confirm hands the selected model over for placement and returns to Browsing.
func (c *Controller) Confirm() error {
	return c.transition("confirm", model.PhasePlacing, func(s *model.PlacementState) {
		if s.Confirmed != nil {
			log.Printf("placement: warning: unconsumed confirmation for %s replaced", s.Confirmed.Name)
		}
		s.Confirmed = s.Selected
		log.Printf("placement: placement of %s confirmed", s.Selected.Name)
		reset(s)
	})
}

// TakeConfirmed returns the pending confirmation and clears it. Only one
// caller can take a given confirmation; later calls report false until the
// next Confirm.
func (c *Controller) TakeConfirmed() (*model.ModelDescriptor, bool) {
	c.mu.Lock()
	d := c.state.Confirmed
	if d == nil {
		c.mu.Unlock()
		return nil, false
	}
	c.state.Confirmed = nil
	c.enqueueLocked(c.state, c.targetsLocked())
	c.mu.Unlock()

	c.drain()
	return d, true
}

func reset(s *model.PlacementState) {
	s.Selected = nil
	s.PlacementActive = false
}

// transition applies mutate when the current phase is from.
func (c *Controller) transition(name string, from model.Phase, mutate func(*model.PlacementState)) error {
	c.mu.Lock()
	if phase := c.state.Phase(); phase != from {
		c.mu.Unlock()
		return fmt.Errorf("%s while %s: %w", name, phase, ErrInvalidTransition)
	}
	next := c.state
	mutate(&next)
	c.state = next
	c.enqueueLocked(next, c.targetsLocked())
	c.mu.Unlock()

	c.drain()
	return nil
}

func (c *Controller) targetsLocked() []int {
	targets := make([]int, 0, len(c.subscribers))
	for id := 0; id < c.nextID; id++ {
		if _, ok := c.subscribers[id]; ok {
			targets = append(targets, id)
		}
	}
	return targets
}

func (c *Controller) enqueueLocked(s model.PlacementState, targets []int) {
	if len(targets) == 0 {
		return
	}
	c.queue = append(c.queue, delivery{state: s, targets: targets})
}

// drain delivers queued snapshots unless another drain pass is running, in
// which case that pass picks them up. Subscribers that mutate the controller
// therefore never see nested deliveries. A panicking subscriber ends the
// pass; snapshots still queued go out with the next drain.
func (c *Controller) drain() {
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	defer func() {
		c.draining = false
		c.mu.Unlock()
	}()

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		for _, id := range next.targets {
			if fn, ok := c.subscribers[id]; ok {
				c.callUnlocked(fn, next.state)
			}
		}
	}
}

// callUnlocked runs fn without holding mu and reacquires it, even if fn panics.
func (c *Controller) callUnlocked(fn func(model.PlacementState), s model.PlacementState) {
	c.mu.Unlock()
	defer c.mu.Lock()
	fn(s)
}
