package placement

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/model-picker/internal/model"
)

func TestNewController(t *testing.T) {
	c := NewController()
	s := c.State()

	assert.False(t, s.PlacementActive)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Confirmed)
	assert.Equal(t, model.PhaseBrowsing, s.Phase())
}

func TestSelectThenCancel(t *testing.T) {
	c := NewController()
	chair := model.NewModelDescriptor("chair", "chair.glb")

	require.NoError(t, c.Select(chair))
	s := c.State()
	assert.True(t, s.PlacementActive)
	assert.Same(t, chair, s.Selected)

	require.NoError(t, c.Cancel())
	s = c.State()
	assert.False(t, s.PlacementActive)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Confirmed)
}

func TestSelectThenConfirm(t *testing.T) {
	c := NewController()
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")

	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	s := c.State()
	assert.Same(t, lamp, s.Confirmed)
	assert.Nil(t, s.Selected)
	assert.False(t, s.PlacementActive)
	assert.Equal(t, model.PhaseBrowsing, s.Phase())
}

func TestTakeConfirmedIsOneShot(t *testing.T) {
	c := NewController()
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")
	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	got, ok := c.TakeConfirmed()
	assert.True(t, ok)
	assert.Same(t, lamp, got)
	assert.Nil(t, c.State().Confirmed)

	got, ok = c.TakeConfirmed()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Nil(t, c.State().Confirmed)
}

func TestInvalidTransitions(t *testing.T) {
	c := NewController()
	chair := model.NewModelDescriptor("chair", "chair.glb")

	assert.ErrorIs(t, c.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, c.Confirm(), ErrInvalidTransition)
	assert.ErrorIs(t, c.Select(nil), ErrNilDescriptor)

	require.NoError(t, c.Select(chair))
	assert.ErrorIs(t, c.Select(model.NewModelDescriptor("lamp", "lamp.glb")), ErrInvalidTransition)
	assert.Same(t, chair, c.State().Selected, "failed transition must not change state")
}

func TestConfirmReplacesUnconsumedConfirmation(t *testing.T) {
	c := NewController()
	chair := model.NewModelDescriptor("chair", "chair.glb")
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")

	require.NoError(t, c.Select(chair))
	require.NoError(t, c.Confirm())
	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	assert.Same(t, lamp, c.State().Confirmed)
}

func TestSubscribeReceivesSnapshotsInOrder(t *testing.T) {
	c := NewController()
	chair := model.NewModelDescriptor("chair", "chair.glb")

	var phases []model.Phase
	unsubscribe := c.Subscribe(func(s model.PlacementState) {
		phases = append(phases, s.Phase())
	})

	require.NoError(t, c.Select(chair))
	require.NoError(t, c.Cancel())
	unsubscribe()
	require.NoError(t, c.Select(chair))

	assert.Equal(t, []model.Phase{model.PhaseBrowsing, model.PhasePlacing, model.PhaseBrowsing}, phases)
}

func TestReentrantSubscriberIsNotNested(t *testing.T) {
	c := NewController()
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")

	var log []string
	var taken []*model.ModelDescriptor
	c.Subscribe(func(s model.PlacementState) {
		if s.Confirmed == nil {
			log = append(log, "state:empty")
			return
		}
		log = append(log, "state:"+s.Confirmed.Name)
		// a stale duplicate of this snapshot must not take twice
		if d, ok := c.TakeConfirmed(); ok {
			taken = append(taken, d)
			log = append(log, "took:"+d.Name)
		}
		log = append(log, "end")
	})

	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	assert.Equal(t, []*model.ModelDescriptor{lamp}, taken)
	assert.Nil(t, c.State().Confirmed)
	assert.Equal(t, []string{
		"state:empty", // initial
		"state:empty", // placing
		"state:lamp",
		"took:lamp",
		"end",
		"state:empty", // cleared, delivered after the pass above finished
	}, log)
}

func TestPanickingSubscriberDoesNotStallDelivery(t *testing.T) {
	c := NewController()
	chair := model.NewModelDescriptor("chair", "chair.glb")
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")

	var phases []model.Phase
	panicked := false
	c.Subscribe(func(s model.PlacementState) {
		phases = append(phases, s.Phase())
		if s.Phase() == model.PhasePlacing && !panicked {
			panicked = true
			panic("render failed")
		}
	})

	assert.Panics(t, func() { _ = c.Select(chair) })
	require.NoError(t, c.Cancel())
	require.NoError(t, c.Select(lamp))

	assert.Equal(t, []model.Phase{
		model.PhaseBrowsing,
		model.PhasePlacing,
		model.PhaseBrowsing,
		model.PhasePlacing,
	}, phases)
	assert.Same(t, lamp, c.State().Selected)
}

func TestUnsubscribeDropsQueuedDeliveries(t *testing.T) {
	c := NewController()
	lamp := model.NewModelDescriptor("lamp", "lamp.glb")

	var unsubscribeDetached func()
	c.Subscribe(func(s model.PlacementState) {
		if s.Confirmed == nil {
			return
		}
		_, _ = c.TakeConfirmed()
		unsubscribeDetached()
	})

	var seen []model.PlacementState
	unsubscribeDetached = c.Subscribe(func(s model.PlacementState) {
		seen = append(seen, s)
		if _, ok := c.TakeConfirmed(); ok {
			t.Error("detached subscriber took a confirmation")
		}
	})

	require.NoError(t, c.Select(lamp))
	require.NoError(t, c.Confirm())

	require.Len(t, seen, 2)
	assert.Equal(t, model.PhaseBrowsing, seen[0].Phase())
	assert.Equal(t, model.PhasePlacing, seen[1].Phase())
	for _, s := range seen {
		assert.Nil(t, s.Confirmed)
	}
	assert.Nil(t, c.State().Confirmed)
}

func TestStateInvariantHoldsUnderRandomEvents(t *testing.T) {
	c := NewController()
	models := []*model.ModelDescriptor{
		model.NewModelDescriptor("chair", "chair.glb"),
		model.NewModelDescriptor("lamp", "lamp.glb"),
	}

	c.Subscribe(func(s model.PlacementState) {
		if !s.Valid() {
			t.Errorf("invalid state published: %+v", s)
		}
	})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		before := c.State()
		switch rng.Intn(4) {
		case 0:
			_ = c.Select(models[rng.Intn(len(models))])
		case 1:
			_ = c.Cancel()
		case 2:
			if err := c.Confirm(); err == nil {
				assert.Same(t, before.Selected, c.State().Confirmed)
			}
		case 3:
			c.TakeConfirmed()
		}
		assert.True(t, c.State().Valid())
	}
}

func TestConcurrentTakeConfirmed(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Select(model.NewModelDescriptor("chair", "chair.glb")))
	require.NoError(t, c.Confirm())

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.TakeConfirmed(); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
