package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/model"
)

// galleryCell renders one thumbnail in the grid. It holds the request token
// of the rendition it last asked for; results carrying any other token are
// dropped so a recycled cell never shows a stale thumbnail.
type galleryCell struct {
	widget.BaseWidget

	lib      library.Library
	metrics  *gridMetrics
	dispatch func(func())

	image *canvas.Image
	back  *canvas.Rectangle

	asset model.Asset
	token string
}

func newGalleryCell(lib library.Library, metrics *gridMetrics, dispatch func(func())) *galleryCell {
	c := &galleryCell{
		lib:      lib,
		metrics:  metrics,
		dispatch: dispatch,
		image:    canvas.NewImageFromImage(nil),
		back:     canvas.NewRectangle(color.NRGBA{R: 0x22, G: 0x22, B: 0x24, A: 0xff}),
	}
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScaleFastest
	c.ExtendBaseWidget(c)
	return c
}

func (c *galleryCell) MinSize() fyne.Size {
	return c.metrics.cellSize()
}

func (c *galleryCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.back, c.image))
}

// SetAsset points the cell at a new asset and requests a fresh rendition
// sized to the current cell side. The previous content is cleared first so
// the old thumbnail never lingers under a new asset.
func (c *galleryCell) SetAsset(asset model.Asset) {
	c.asset = asset
	c.token = uuid.NewString()
	c.image.Image = nil
	c.image.Refresh()

	if asset.IsZero() {
		return
	}
	size := c.metrics.cellSize()
	req := library.RenditionRequest{
		Asset:  asset,
		Width:  int(size.Width),
		Height: int(size.Height),
		Mode:   library.ContentModeAspectFill,
		Token:  c.token,
	}
	c.lib.RequestRendition(req, func(res library.RenditionResult) {
		c.dispatch(func() {
			if res.Token != c.token || !res.OK() {
				return
			}
			c.image.Image = res.Image
			c.image.Refresh()
		})
	})
}
