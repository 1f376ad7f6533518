package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	HeaderTextSize   = 28
	TitleTextSize    = 32
	SubtitleTextSize = 20
)

// Header is a bold screen title on a translucent strip
type Header struct {
	container *fyne.Container
	title     *canvas.Text
}

// NewHeader creates a header with the given title and text size
func NewHeader(title string, size float32) *Header {
	h := &Header{}
	h.title = canvas.NewText(title, color.Black)
	h.title.TextSize = size
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.container = container.NewPadded(NewPanel(container.NewPadded(h.title)))
	return h
}

func (h *Header) Title() string {
	return h.title.Text
}

// GetContainer returns the header container
func (h *Header) GetContainer() *fyne.Container {
	return h.container
}
