package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// PlacementButtons holds the cancel and confirm controls shown while placing
type PlacementButtons struct {
	CancelButton  *widget.Button
	ConfirmButton *widget.Button
	content       *fyne.Container
}

// NewPlacementButtons creates the ✕ and ✓ buttons as square touch targets
func NewPlacementButtons(onCancel, onConfirm func()) *PlacementButtons {
	pb := &PlacementButtons{
		CancelButton:  widget.NewButton(IconCancel, onCancel),
		ConfirmButton: widget.NewButton(IconConfirm, onConfirm),
	}
	pb.CancelButton.Importance = widget.DangerImportance
	pb.ConfirmButton.Importance = widget.SuccessImportance

	square := fyne.NewSize(PlacementButtonSize, PlacementButtonSize)
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(PlacementButtonSpacing, PlacementButtonSize))

	pb.content = container.NewHBox(
		layout.NewSpacer(),
		container.NewGridWrap(square, pb.CancelButton),
		gap,
		container.NewGridWrap(square, pb.ConfirmButton),
		layout.NewSpacer(),
	)
	return pb
}

// Container returns the buttons' canvas object
func (pb *PlacementButtons) Container() *fyne.Container {
	return pb.content
}
