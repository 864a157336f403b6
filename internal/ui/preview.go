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

// PreviewPanel shows the selected asset at full quality inside a scroll
// container. The image zooms between PreviewMinZoom and PreviewMaxZoom via
// scroll steps or a double tap; switching assets snaps the zoom back to 1x
// before the new rendition is requested.
type PreviewPanel struct {
	widget.BaseWidget

	lib      library.Library
	dispatch func(func())

	image  *canvas.Image
	scroll *container.Scroll

	asset model.Asset
	token string
	base  fyne.Size
	zoom  float32
}

func NewPreviewPanel(lib library.Library, dispatch func(func())) *PreviewPanel {
	p := &PreviewPanel{
		lib:      lib,
		dispatch: dispatch,
		image:    canvas.NewImageFromImage(nil),
		zoom:     PreviewMinZoom,
	}
	p.image.FillMode = canvas.ImageFillContain
	p.scroll = container.NewScroll(p.image)
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer stacks a transparent zoom catcher above the scroll. The
// inner scroll is itself scrollable and would otherwise swallow wheel
// events before they reach the panel; the catcher claims wheel and
// double-tap input while drags still fall through for panning.
func (p *PreviewPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.scroll, newZoomCatcher(p)))
}

// Asset returns the asset currently shown, or a zero asset when none is.
func (p *PreviewPanel) Asset() model.Asset {
	return p.asset
}

// Zoom returns the current zoom factor.
func (p *PreviewPanel) Zoom() float32 {
	return p.zoom
}

// SetAsset switches the panel to a new asset. The zoom resets to 1x right
// away, then a fill rendition sized to the visible area is requested;
// results for a previously shown asset are discarded by token.
func (p *PreviewPanel) SetAsset(asset model.Asset) {
	p.asset = asset
	p.token = uuid.NewString()
	p.setZoom(PreviewMinZoom)
	p.image.Image = nil
	p.image.Refresh()

	if asset.IsZero() {
		return
	}
	area := p.viewArea()
	req := library.RenditionRequest{
		Asset:  asset,
		Width:  int(area.Width),
		Height: int(area.Height),
		Mode:   library.ContentModeAspectFill,
		Token:  p.token,
	}
	p.lib.RequestRendition(req, func(res library.RenditionResult) {
		p.dispatch(func() {
			if res.Token != p.token || !res.OK() {
				return
			}
			bounds := res.Image.Bounds()
			p.base = fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
			p.image.Image = res.Image
			p.applyZoom()
		})
	})
}

// Scrolled zooms in or out by one step per wheel notch.
func (p *PreviewPanel) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		p.setZoom(p.zoom + PreviewZoomStep)
	} else if ev.Scrolled.DY < 0 {
		p.setZoom(p.zoom - PreviewZoomStep)
	}
}

// DoubleTapped toggles between the minimum and maximum zoom.
func (p *PreviewPanel) DoubleTapped(*fyne.PointEvent) {
	if p.zoom > PreviewMinZoom {
		p.setZoom(PreviewMinZoom)
	} else {
		p.setZoom(PreviewMaxZoom)
	}
}

func (p *PreviewPanel) setZoom(z float32) {
	if z < PreviewMinZoom {
		z = PreviewMinZoom
	}
	if z > PreviewMaxZoom {
		z = PreviewMaxZoom
	}
	p.zoom = z
	p.applyZoom()
}

func (p *PreviewPanel) applyZoom() {
	if p.base.IsZero() {
		return
	}
	p.image.SetMinSize(fyne.NewSize(p.base.Width*p.zoom, p.base.Height*p.zoom))
	p.image.Refresh()
	p.scroll.Refresh()
}

func (p *PreviewPanel) viewArea() fyne.Size {
	size := p.scroll.Size()
	if size.Width < 1 || size.Height < 1 {
		return fyne.NewSize(800, 600)
	}
	return size
}

// zoomCatcher is an invisible widget sitting above the preview's scroll
// container. It forwards wheel and double-tap input to the panel's zoom
// handling; everything else passes through to the scroll below.
type zoomCatcher struct {
	widget.BaseWidget
	panel *PreviewPanel
}

func newZoomCatcher(panel *PreviewPanel) *zoomCatcher {
	c := &zoomCatcher{panel: panel}
	c.ExtendBaseWidget(c)
	return c
}

func (c *zoomCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (c *zoomCatcher) Scrolled(ev *fyne.ScrollEvent) {
	c.panel.Scrolled(ev)
}

func (c *zoomCatcher) DoubleTapped(ev *fyne.PointEvent) {
	c.panel.DoubleTapped(ev)
}
