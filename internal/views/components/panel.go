package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var (
	// PanelColor is white at 80% opacity
	PanelColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
	// BackdropTop and BackdropBottom tint the window background
	BackdropTop    = color.NRGBA{R: 0xff, G: 0xb3, B: 0x47, A: 0xff}
	BackdropBottom = color.NRGBA{R: 0xe8, G: 0x4a, B: 0x27, A: 0xff}
)

// NewPanel stacks content on a translucent white rectangle
func NewPanel(content fyne.CanvasObject) *fyne.Container {
	bg := canvas.NewRectangle(PanelColor)
	bg.CornerRadius = 6
	return container.NewStack(bg, content)
}

// NewBackdrop fills the area behind content with a warm gradient
func NewBackdrop(content fyne.CanvasObject) *fyne.Container {
	gradient := canvas.NewVerticalGradient(BackdropTop, BackdropBottom)
	return container.NewStack(gradient, content)
}
