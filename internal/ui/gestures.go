package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name for logs
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns a press-move-release sequence into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	tracking   bool
	startTime  time.Time
	startPos   fyne.Position
	currentPos fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Classify maps a movement of (dx, dy) over duration d to a gesture.
func (gh *GestureHandler) Classify(dx, dy float32, d time.Duration) GestureType {
	distanceSq := dx*dx + dy*dy
	thresholdSq := gh.swipeThreshold * gh.swipeThreshold

	if distanceSq < thresholdSq {
		if d >= gh.longPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// Begin starts tracking at pos
func (gh *GestureHandler) Begin(pos fyne.Position) {
	gh.tracking = true
	gh.startTime = time.Now()
	gh.startPos = pos
	gh.currentPos = pos
}

// Move updates the tracked position
func (gh *GestureHandler) Move(pos fyne.Position) {
	if gh.tracking {
		gh.currentPos = pos
	}
}

// End finishes tracking and reports the gesture
func (gh *GestureHandler) End() {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	dx := gh.currentPos.X - gh.startPos.X
	dy := gh.currentPos.Y - gh.startPos.Y
	gesture := gh.Classify(dx, dy, time.Since(gh.startTime))
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// Reset drops the current sequence without reporting
func (gh *GestureHandler) Reset() {
	gh.tracking = false
}

// SwipeArea wraps content and reports gestures made over it, from mouse
// drags on desktop and touches on mobile.
type SwipeArea struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
}

var (
	_ fyne.Draggable   = (*SwipeArea)(nil)
	_ mobile.Touchable = (*SwipeArea)(nil)
)

// NewSwipeArea creates a gesture-aware wrapper around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content:        content,
		gestureHandler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer creates the widget renderer
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// Dragged handles drag events
func (sa *SwipeArea) Dragged(event *fyne.DragEvent) {
	if !sa.gestureHandler.tracking {
		sa.gestureHandler.Begin(event.Position.Subtract(event.Dragged))
	}
	sa.gestureHandler.Move(event.Position)
}

// DragEnd handles the end of a drag
func (sa *SwipeArea) DragEnd() {
	sa.gestureHandler.End()
}

// TouchDown handles touch down events
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.gestureHandler.Begin(event.Position)
}

// TouchUp handles touch up events
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.gestureHandler.Move(event.Position)
	sa.gestureHandler.End()
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(*mobile.TouchEvent) {
	sa.gestureHandler.Reset()
}
