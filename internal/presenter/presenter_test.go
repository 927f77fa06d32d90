package presenter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/placement"
	"github.com/ytget/model-picker/internal/scene"
)

type failingSession struct {
	scene.Session
	runs int
}

func (s *failingSession) SupportsSceneReconstruction(scene.Reconstruction) bool { return true }

func (s *failingSession) Run(scene.TrackingConfig) error {
	s.runs++
	return errors.New("camera unavailable")
}

func loaded(name string) *model.ModelDescriptor {
	d := model.NewModelDescriptor(name, name+".glb")
	d.Resolve(scene.NewEntity(name), nil)
	return d
}

func meshConfig() scene.TrackingConfig {
	cfg := scene.NewWorldTrackingConfig()
	cfg.SceneReconstruction = scene.ReconstructionMesh
	return cfg
}

func TestInitializeSession(t *testing.T) {
	graph := scene.NewGraph(scene.WithMeshReconstruction(true))
	p := New(graph, meshConfig())

	require.NoError(t, p.InitializeSession())

	cfg, running := graph.Config()
	assert.True(t, running)
	assert.Equal(t, scene.ReconstructionMesh, cfg.SceneReconstruction)
	assert.True(t, cfg.PlaneDetection.Has(scene.PlaneDetectionHorizontal|scene.PlaneDetectionVertical))
	assert.True(t, cfg.EnvironmentTexturing)
}

func TestInitializeSession_DowngradesUnsupportedMesh(t *testing.T) {
	graph := scene.NewGraph(scene.WithMeshReconstruction(false))
	p := New(graph, meshConfig())

	require.NoError(t, p.InitializeSession())

	cfg, _ := graph.Config()
	assert.Equal(t, scene.ReconstructionNone, cfg.SceneReconstruction)
	assert.Equal(t, scene.ReconstructionNone, p.Config().SceneReconstruction)
}

func TestInitializeSession_OnlyOnce(t *testing.T) {
	p := New(scene.NewGraph(), scene.NewWorldTrackingConfig())

	require.NoError(t, p.InitializeSession())
	assert.ErrorIs(t, p.InitializeSession(), ErrAlreadyInitialized)
}

func TestInitializeSession_RunError(t *testing.T) {
	session := &failingSession{}
	p := New(session, scene.NewWorldTrackingConfig())

	assert.Error(t, p.InitializeSession())
	// a failed run leaves the presenter uninitialized
	assert.Error(t, p.InitializeSession())
	assert.Equal(t, 2, session.runs)
}

func TestOnConfirmedSelection_InsertsClone(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	d := loaded("lamp")
	source, _ := d.Entity()

	anchor, err := p.OnConfirmedSelection(d)
	require.NoError(t, err)

	require.Len(t, graph.Anchors(), 1)
	assert.Same(t, anchor, graph.Anchors()[0])
	assert.Equal(t, scene.AlignmentAny, anchor.Alignment)
	assert.True(t, anchor.Resolved())
	require.Len(t, anchor.Children, 1)
	assert.Equal(t, "lamp", anchor.Children[0].Name)
	assert.NotSame(t, source, anchor.Children[0])
	assert.NotEqual(t, source.ID, anchor.Children[0].ID)
	assert.Equal(t, []*scene.Anchor{anchor}, p.Placements())
}

func TestOnConfirmedSelection_SameModelTwice(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	d := loaded("chair")
	first, err := p.OnConfirmedSelection(d)
	require.NoError(t, err)
	second, err := p.OnConfirmedSelection(d)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Position(), second.Position())
	assert.Len(t, p.Placements(), 2)
}

func TestOnConfirmedSelection_EntityNotLoaded(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	var failed *model.ModelDescriptor
	var failure error
	p.SetFailureCallback(func(d *model.ModelDescriptor, err error) {
		failed, failure = d, err
	})

	d := model.NewModelDescriptor("chair", "chair.glb")
	anchor, err := p.OnConfirmedSelection(d)

	assert.Nil(t, anchor)
	assert.ErrorIs(t, err, ErrEntityNotLoaded)
	assert.Same(t, d, failed)
	assert.ErrorIs(t, failure, ErrEntityNotLoaded)
	assert.Empty(t, graph.Anchors())
	assert.Empty(t, p.Placements())
}

func TestOnConfirmedSelection_SessionNotRunning(t *testing.T) {
	p := New(scene.NewGraph(), scene.NewWorldTrackingConfig())

	_, err := p.OnConfirmedSelection(loaded("chair"))
	assert.ErrorIs(t, err, scene.ErrSessionNotRunning)
	assert.Empty(t, p.Placements())
}

func TestOnConfirmedSelection_Nil(t *testing.T) {
	p := New(scene.NewGraph(), scene.NewWorldTrackingConfig())

	_, err := p.OnConfirmedSelection(nil)
	assert.ErrorIs(t, err, ErrNilDescriptor)
}

func TestAttach_ConsumesConfirmation(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	var placed []string
	p.SetPlacedCallback(func(d *model.ModelDescriptor, _ *scene.Anchor) {
		placed = append(placed, d.Name)
	})

	c := placement.NewController()
	detach := p.Attach(c)
	defer detach()

	lamp := loaded("lamp")
	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	assert.Equal(t, []string{"lamp"}, placed)
	assert.Len(t, graph.Anchors(), 1)
	assert.Nil(t, c.State().Confirmed)
}

func TestAttach_FailedInsertClearsSlot(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	failures := 0
	p.SetFailureCallback(func(*model.ModelDescriptor, error) { failures++ })

	c := placement.NewController()
	p.Attach(c)

	require.NoError(t, c.Select(model.NewModelDescriptor("chair", "chair.glb")))
	require.NoError(t, c.Confirm())

	assert.Equal(t, 1, failures)
	assert.Empty(t, graph.Anchors())
	assert.Nil(t, c.State().Confirmed)
}

// Two presenters attached to one controller see the same confirmed snapshot;
// only one of them wins the take.
func TestAttach_DuplicateNotificationsInsertOnce(t *testing.T) {
	graph := scene.NewGraph()
	first := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, first.InitializeSession())
	second := New(graph, scene.NewWorldTrackingConfig())

	c := placement.NewController()
	first.Attach(c)
	second.Attach(c)

	require.NoError(t, c.Select(loaded("lamp")))
	require.NoError(t, c.Confirm())

	assert.Len(t, graph.Anchors(), 1)
	assert.Len(t, first.Placements(), 1)
	assert.Empty(t, second.Placements())
}

func TestAttach_Detach(t *testing.T) {
	graph := scene.NewGraph()
	p := New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())

	c := placement.NewController()
	p.Attach(c)()

	require.NoError(t, c.Select(loaded("lamp")))
	require.NoError(t, c.Confirm())

	assert.Empty(t, graph.Anchors())
	assert.NotNil(t, c.State().Confirmed)
}
