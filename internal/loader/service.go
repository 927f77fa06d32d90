package loader

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/scene"
)

// Parallelism limits
const (
	DefaultMaxParallelLoads = 4
	MaxParallelLoads        = 16
)

// ErrNoEntity is reported when a loader returns neither an entity nor an error.
var ErrNoEntity = errors.New("loader returned no entity")

type loadResult struct {
	future *Future
	entity *scene.Entity
	err    error
}

var _ AssetLoader = (*Service)(nil)

// Service handles asynchronous entity loads
type Service struct {
	entityLoader EntityLoader
	mu           sync.RWMutex
	maxParallel  int
	onUpdate     func(*model.ModelDescriptor) // callback for UI updates
	loaded       int
	failed       int

	results   chan loadResult
	mergeOnce sync.Once
	pending   sync.WaitGroup
}

// NewService creates a new asset load service
func NewService(entityLoader EntityLoader, maxParallel int) *Service {
	return &Service{
		entityLoader: entityLoader,
		maxParallel:  clampParallel(maxParallel),
		results:      make(chan loadResult),
	}
}

func clampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxParallelLoads {
		return MaxParallelLoads
	}
	return n
}

// SetUpdateCallback sets the callback invoked after each merged result
func (s *Service) SetUpdateCallback(callback func(*model.ModelDescriptor)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetMaxParallelLoads sets the maximum number of concurrent loads
func (s *Service) SetMaxParallelLoads(max int) {
	s.mu.Lock()
	s.maxParallel = clampParallel(max)
	s.mu.Unlock()
}

// MaxParallelLoads returns the current concurrency bound
func (s *Service) MaxParallelLoads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxParallel
}

// Start begins one fire-and-forget load per descriptor and returns their
// futures in the same order. Loads are not retried.
func (s *Service) Start(ctx context.Context, descriptors []*model.ModelDescriptor) []*Future {
	s.mergeOnce.Do(func() { go s.merge() })

	sem := make(chan struct{}, s.MaxParallelLoads())
	futures := make([]*Future, 0, len(descriptors))
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		f := newFuture(d)
		futures = append(futures, f)

		s.pending.Add(1)
		go func(f *Future) {
			var entity *scene.Entity
			var err error
			select {
			case sem <- struct{}{}:
				entity, err = s.entityLoader.Load(ctx, f.descriptor.AssetPath)
				<-sem
			case <-ctx.Done():
				err = ctx.Err()
			}
			s.results <- loadResult{future: f, entity: entity, err: err}
		}(f)
	}
	return futures
}

// Wait blocks until every started load has been merged
func (s *Service) Wait() {
	s.pending.Wait()
}

// Stats returns the number of merged successes and failures
func (s *Service) Stats() (loaded, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded, s.failed
}

// merge is the single writer of descriptor entity slots
func (s *Service) merge() {
	for r := range s.results {
		d := r.future.descriptor
		if r.err == nil && r.entity == nil {
			r.err = ErrNoEntity
		}

		if d.Resolve(r.entity, r.err) {
			s.mu.Lock()
			if r.err != nil {
				s.failed++
			} else {
				s.loaded++
			}
			s.mu.Unlock()

			if r.err != nil {
				log.Printf("loader: unable to load entity for %s: %v", d.Name, r.err)
			} else {
				log.Printf("loader: loaded entity for %s", d.Name)
			}
		}

		r.future.complete(r.entity, r.err)
		s.notifyUpdate(d)
		s.pending.Done()
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(d *model.ModelDescriptor) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(d)
	}
}
