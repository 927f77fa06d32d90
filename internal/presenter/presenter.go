package presenter

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/scene"
)

// Presenter errors
var (
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrEntityNotLoaded    = errors.New("entity not loaded")
	ErrNilDescriptor      = errors.New("descriptor is nil")
)

// ConfirmationSource is the part of the placement controller the presenter consumes.
type ConfirmationSource interface {
	Subscribe(fn func(model.PlacementState)) func()
	TakeConfirmed() (*model.ModelDescriptor, bool)
}

// Presenter inserts confirmed models into a scene session.
type Presenter struct {
	session scene.Session
	config  scene.TrackingConfig

	mu          sync.Mutex
	initialized bool
	placements  []*scene.Anchor
	onPlaced    func(*model.ModelDescriptor, *scene.Anchor)
	onFailure   func(*model.ModelDescriptor, error)
}

// New creates a presenter for session. cfg is the requested tracking
// configuration; mesh reconstruction is dropped at initialization if the
// session cannot provide it.
func New(session scene.Session, cfg scene.TrackingConfig) *Presenter {
	return &Presenter{
		session: session,
		config:  cfg,
	}
}

// SetPlacedCallback sets the callback invoked after a model is inserted.
func (p *Presenter) SetPlacedCallback(callback func(*model.ModelDescriptor, *scene.Anchor)) {
	p.mu.Lock()
	p.onPlaced = callback
	p.mu.Unlock()
}

// SetFailureCallback sets the callback invoked when a confirmed model cannot be inserted.
func (p *Presenter) SetFailureCallback(callback func(*model.ModelDescriptor, error)) {
	p.mu.Lock()
	p.onFailure = callback
	p.mu.Unlock()
}

// InitializeSession runs the session with the tracking configuration. It may
// be called once; later calls return ErrAlreadyInitialized.
func (p *Presenter) InitializeSession() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return ErrAlreadyInitialized
	}

	cfg := p.config
	if cfg.SceneReconstruction != scene.ReconstructionNone &&
		!p.session.SupportsSceneReconstruction(cfg.SceneReconstruction) {
		log.Printf("presenter: %s reconstruction unsupported, running without it", cfg.SceneReconstruction)
		cfg.SceneReconstruction = scene.ReconstructionNone
	}

	if err := p.session.Run(cfg); err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}
	p.config = cfg
	p.initialized = true
	return nil
}

// Config returns the tracking configuration in effect.
func (p *Presenter) Config() scene.TrackingConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// OnConfirmedSelection anchors a copy of d's entity to a detected plane.
// If the entity has not loaded nothing is inserted and the failure callback
// receives ErrEntityNotLoaded.
func (p *Presenter) OnConfirmedSelection(d *model.ModelDescriptor) (*scene.Anchor, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}

	entity, ok := d.Entity()
	if !ok {
		err := fmt.Errorf("place %q: %w", d.Name, ErrEntityNotLoaded)
		p.fail(d, err)
		return nil, err
	}

	anchor := scene.NewPlaneAnchor(scene.AlignmentAny)
	anchor.AddChild(entity)
	placed := anchor.Clone(true)

	if err := p.session.AddAnchor(placed); err != nil {
		err = fmt.Errorf("place %q: %w", d.Name, err)
		p.fail(d, err)
		return nil, err
	}

	p.mu.Lock()
	p.placements = append(p.placements, placed)
	callback := p.onPlaced
	p.mu.Unlock()

	log.Printf("presenter: placed %s (anchor %s)", d.Name, placed.ID)
	if callback != nil {
		callback(d, placed)
	}
	return placed, nil
}

func (p *Presenter) fail(d *model.ModelDescriptor, err error) {
	log.Printf("presenter: %v", err)

	p.mu.Lock()
	callback := p.onFailure
	p.mu.Unlock()

	if callback != nil {
		callback(d, err)
	}
}

// Attach subscribes to source and inserts every confirmation it publishes.
// The returned function detaches the presenter.
func (p *Presenter) Attach(source ConfirmationSource) func() {
	return source.Subscribe(func(s model.PlacementState) {
		if !s.HasConfirmation() {
			return
		}
		d, ok := source.TakeConfirmed()
		if !ok {
			// consumed by an earlier delivery
			return
		}
		_, _ = p.OnConfirmedSelection(d)
	})
}

// Placements returns the anchors inserted so far, oldest first.
func (p *Presenter) Placements() []*scene.Anchor {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*scene.Anchor, len(p.placements))
	copy(out, p.placements)
	return out
}
