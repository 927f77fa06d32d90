package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/model-picker/internal/scene"
)

// placedModel is one row of the anchor list
type placedModel struct {
	name   string
	anchor *scene.Anchor
}

// SceneView stands in for the camera view: it summarizes tracking, lists the
// anchors placed so far and shows a notification line.
type SceneView struct {
	localization *Localization

	tracking   scene.TrackingConfig
	placing    string
	placements []placedModel

	// UI components
	background        *canvas.Rectangle
	trackingLabel     *widget.Label
	statusLabel       *widget.Label
	anchorList        *widget.List
	notificationLabel *widget.Label
	notificationIcon  *widget.Label
	notification      *fyne.Container
	content           *SwipeArea

	notifyMu  sync.Mutex
	notifySeq int
}

// NewSceneView creates the scene view. onGesture receives gestures made over it.
func NewSceneView(localization *Localization, onGesture func(GestureType)) *SceneView {
	sv := &SceneView{localization: localization}

	sv.background = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))

	sv.trackingLabel = widget.NewLabel("")
	sv.trackingLabel.TextStyle = fyne.TextStyle{Bold: true}
	sv.trackingLabel.Truncation = fyne.TextTruncateEllipsis

	sv.statusLabel = widget.NewLabel("")

	sv.notificationIcon = widget.NewLabel(IconError)
	sv.notificationLabel = widget.NewLabel("")
	sv.notificationLabel.Wrapping = fyne.TextWrapWord
	sv.notification = container.NewBorder(nil, nil, sv.notificationIcon, nil, sv.notificationLabel)
	sv.notification.Hide()

	sv.anchorList = widget.NewList(
		func() int { return len(sv.placements) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(sv.placements) {
				return
			}
			obj.(*widget.Label).SetText(sv.describe(sv.placements[id]))
		},
	)

	header := container.NewVBox(sv.trackingLabel, sv.statusLabel, sv.notification)
	body := container.NewBorder(header, nil, nil, nil, sv.anchorList)
	sv.content = NewSwipeArea(container.NewStack(sv.background, body), onGesture)

	sv.RefreshTexts()
	return sv
}

// Container returns the view's canvas object
func (sv *SceneView) Container() fyne.CanvasObject {
	return sv.content
}

// SetTracking shows the running tracking configuration
func (sv *SceneView) SetTracking(cfg scene.TrackingConfig) {
	sv.tracking = cfg
	sv.trackingLabel.SetText(sv.trackingText())
}

// SetPlacing shows the model being placed; an empty name shows the placement count.
func (sv *SceneView) SetPlacing(name string) {
	sv.placing = name
	sv.statusLabel.SetText(sv.statusText())
}

// AddPlacement appends a placed model to the anchor list
func (sv *SceneView) AddPlacement(name string, anchor *scene.Anchor) {
	sv.placements = append(sv.placements, placedModel{name: name, anchor: anchor})
	sv.anchorList.Refresh()
	sv.statusLabel.SetText(sv.statusText())
}

// PlacementCount returns the number of rows in the anchor list
func (sv *SceneView) PlacementCount() int {
	return len(sv.placements)
}

// ShowNotification displays a message; errors get an icon. The line hides
// itself after NotificationAutoHide unless replaced.
func (sv *SceneView) ShowNotification(message string, isError bool) {
	sv.notifyMu.Lock()
	sv.notifySeq++
	seq := sv.notifySeq
	sv.notifyMu.Unlock()

	sv.notificationLabel.SetText(message)
	if isError {
		sv.notificationIcon.Show()
	} else {
		sv.notificationIcon.Hide()
	}
	sv.notification.Show()
	sv.notification.Refresh()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			sv.notifyMu.Lock()
			current := sv.notifySeq == seq
			sv.notifyMu.Unlock()
			if current {
				sv.HideNotification()
			}
		})
	})
}

// HideNotification hides the notification line
func (sv *SceneView) HideNotification() {
	sv.notification.Hide()
}

// Notification returns the visible notification text, or "" when hidden
func (sv *SceneView) Notification() string {
	if !sv.notification.Visible() {
		return ""
	}
	return sv.notificationLabel.Text
}

// RefreshTexts re-renders localized labels
func (sv *SceneView) RefreshTexts() {
	sv.trackingLabel.SetText(sv.trackingText())
	sv.statusLabel.SetText(sv.statusText())
	sv.anchorList.Refresh()
}

func (sv *SceneView) trackingText() string {
	return sv.localization.GetTextf(KeyTracking, map[string]interface{}{
		"Planes":         sv.tracking.PlaneDetection.String(),
		"Reconstruction": string(sv.tracking.SceneReconstruction),
	})
}

func (sv *SceneView) statusText() string {
	if sv.placing != "" {
		return sv.localization.GetTextf(KeyPlacing, map[string]interface{}{"Name": sv.placing})
	}
	return sv.localization.GetPlural(KeyPlacedCount, len(sv.placements))
}

func (sv *SceneView) describe(p placedModel) string {
	if !p.anchor.Resolved() {
		return IconAnchor + " " + p.name + MiddleDotSeparator + sv.localization.GetText(KeyUnresolvedAnchor)
	}
	pos := p.anchor.Position()
	return fmt.Sprintf("%s %s%s%s (%.2f, %.2f, %.2f)",
		IconAnchor, p.name, MiddleDotSeparator, p.anchor.Surface.Alignment, pos.X(), pos.Y(), pos.Z())
}
