package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/model"
)

func newTestPreview(lib *fakeLibrary) *PreviewPanel {
	return NewPreviewPanel(lib, func(f func()) { f() })
}

func almostEqual(a, b float32) bool {
	diff := a - b
	return diff < 0.001 && diff > -0.001
}

func TestPreviewZoomClamped(t *testing.T) {
	p := newTestPreview(newFakeLibrary(library.AuthAuthorized))

	p.setZoom(5)
	if p.Zoom() != PreviewMaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", p.Zoom(), PreviewMaxZoom)
	}
	p.setZoom(0.2)
	if p.Zoom() != PreviewMinZoom {
		t.Errorf("zoom = %v, want clamped to %v", p.Zoom(), PreviewMinZoom)
	}
}

func TestPreviewScrollSteps(t *testing.T) {
	p := newTestPreview(newFakeLibrary(library.AuthAuthorized))

	up := &fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}}
	p.Scrolled(up)
	p.Scrolled(up)
	if !almostEqual(p.Zoom(), PreviewMinZoom+2*PreviewZoomStep) {
		t.Errorf("zoom after two steps up = %v, want %v", p.Zoom(), PreviewMinZoom+2*PreviewZoomStep)
	}

	down := &fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}}
	p.Scrolled(down)
	if !almostEqual(p.Zoom(), PreviewMinZoom+PreviewZoomStep) {
		t.Errorf("zoom after step down = %v, want %v", p.Zoom(), PreviewMinZoom+PreviewZoomStep)
	}
}

func TestPreviewWheelZoomsThroughCanvas(t *testing.T) {
	test.NewApp()
	p := newTestPreview(newFakeLibrary(library.AuthAuthorized))
	w := test.NewWindow(p)
	defer w.Close()
	w.Resize(fyne.NewSize(300, 300))

	// Dispatch through the canvas so the wheel event takes the real hit
	// path, past the inner scroll container.
	test.Scroll(w.Canvas(), fyne.NewPos(150, 150), 0, 1)
	if !almostEqual(p.Zoom(), PreviewMinZoom+PreviewZoomStep) {
		t.Errorf("zoom after canvas wheel = %v, want %v", p.Zoom(), PreviewMinZoom+PreviewZoomStep)
	}

	test.Scroll(w.Canvas(), fyne.NewPos(150, 150), 0, -1)
	if !almostEqual(p.Zoom(), PreviewMinZoom) {
		t.Errorf("zoom after wheel down = %v, want %v", p.Zoom(), PreviewMinZoom)
	}
}

func TestPreviewDoubleTapToggles(t *testing.T) {
	p := newTestPreview(newFakeLibrary(library.AuthAuthorized))

	p.DoubleTapped(nil)
	if p.Zoom() != PreviewMaxZoom {
		t.Errorf("zoom after double tap = %v, want %v", p.Zoom(), PreviewMaxZoom)
	}
	p.DoubleTapped(nil)
	if p.Zoom() != PreviewMinZoom {
		t.Errorf("zoom after second double tap = %v, want %v", p.Zoom(), PreviewMinZoom)
	}

	// From any intermediate zoom a double tap returns to 1x first.
	p.setZoom(1.3)
	p.DoubleTapped(nil)
	if p.Zoom() != PreviewMinZoom {
		t.Errorf("zoom after double tap at 1.3 = %v, want %v", p.Zoom(), PreviewMinZoom)
	}
}

func TestPreviewSetAssetResetsZoomAndRequestsFill(t *testing.T) {
	lib := newFakeLibrary(library.AuthAuthorized)
	p := newTestPreview(lib)

	p.setZoom(2)
	asset := model.Asset{ID: "a.jpg", Path: "/pics/a.jpg", CreatedAt: time.Unix(100, 0)}
	p.SetAsset(asset)

	if p.Zoom() != PreviewMinZoom {
		t.Errorf("zoom after SetAsset = %v, want %v", p.Zoom(), PreviewMinZoom)
	}
	if p.Asset().ID != "a.jpg" {
		t.Errorf("asset = %q, want %q", p.Asset().ID, "a.jpg")
	}
	if len(lib.renditions) != 1 {
		t.Fatalf("rendition requests = %d, want 1", len(lib.renditions))
	}
	if lib.renditions[0].Mode != library.ContentModeAspectFill {
		t.Errorf("rendition mode = %v, want aspect fill", lib.renditions[0].Mode)
	}
	if p.image.Image == nil {
		t.Error("preview image not installed after rendition delivery")
	}
}

func TestPreviewDropsStaleRendition(t *testing.T) {
	lib := newFakeLibrary(library.AuthAuthorized)
	lib.deferRenditions = true
	p := newTestPreview(lib)

	p.SetAsset(model.Asset{ID: "old.jpg", Path: "/pics/old.jpg"})
	firstToken := p.token
	p.SetAsset(model.Asset{ID: "new.jpg", Path: "/pics/new.jpg"})

	if p.token == firstToken {
		t.Fatal("token not rotated on SetAsset")
	}
	// The stale completion must be dropped, the current one installed.
	lib.deliverNextRendition()
	if p.image.Image != nil {
		t.Error("stale rendition was installed")
	}
	lib.deliverNextRendition()
	if p.image.Image == nil {
		t.Error("current rendition was dropped")
	}
	if p.Asset().ID != "new.jpg" {
		t.Errorf("asset = %q, want %q", p.Asset().ID, "new.jpg")
	}
}
