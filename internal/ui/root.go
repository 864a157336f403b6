package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/photogrid/photo-gallery/internal/authz"
	"github.com/photogrid/photo-gallery/internal/config"
	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/logging"
	"github.com/photogrid/photo-gallery/internal/model"
	"github.com/photogrid/photo-gallery/internal/platform"
)

// RootUI represents the gallery screen: an action button and a column
// selector on top, the thumbnail grid and the preview panel below.
type RootUI struct {
	window   fyne.Window
	lib      library.Library
	settings *config.Settings
	log      logging.Logger
	dispatch func(func())

	tracker *authz.Tracker

	actionBtn    *widget.Button
	columnSelect *widget.Select
	grid         *widget.GridWrap
	gridHost     *gridHost
	preview      *PreviewPanel
	metrics      *gridMetrics

	result     *library.FetchResult
	columns    int
	observerID string
}

// NewRootUI creates and initializes the gallery screen.
func NewRootUI(window fyne.Window, app fyne.App, lib library.Library, log logging.Logger) *RootUI {
	return newRootUI(window, config.NewSettings(app), lib, log, fyne.Do)
}

func newRootUI(window fyne.Window, settings *config.Settings, lib library.Library, log logging.Logger, dispatch func(func())) *RootUI {
	if log == nil {
		log = logging.Default()
	}
	ui := &RootUI{
		window:   window,
		lib:      lib,
		settings: settings,
		log:      log.With("component", "ui"),
		dispatch: dispatch,
		metrics:  newGridMetrics(),
		columns:  settings.GetColumnCount(),
	}

	ui.tracker = authz.NewTracker(lib, authz.Options{
		Dispatch: dispatch,
		OnStatus: ui.onAccessStatusChanged,
		OnFetch:  ui.fetchAssets,
		Logger:   log,
	})

	window.SetTitle("Photo Gallery")
	ui.setupUI()

	ui.observerID = lib.RegisterChangeObserver(ui)
	window.SetOnClosed(ui.teardown)
	return ui
}

// Start performs the initial authorization check. Call once the window is
// about to show.
func (ui *RootUI) Start() {
	ui.tracker.CheckStatus()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.actionBtn = widget.NewButton(LabelFetchPhotos, ui.onActionTapped)
	ui.actionBtn.Importance = widget.HighImportance

	options := make([]string, 0, len(model.ColumnCountOptions()))
	for _, n := range model.ColumnCountOptions() {
		options = append(options, strconv.Itoa(n))
	}
	ui.columnSelect = widget.NewSelect(options, func(sel string) {
		n, err := strconv.Atoi(sel)
		if err != nil {
			return
		}
		ui.setColumnCount(n)
	})
	ui.columnSelect.SetSelected(strconv.Itoa(ui.columns))

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Columns"), ui.columnSelect),
		nil,
		ui.actionBtn,
	)

	ui.grid = widget.NewGridWrap(
		func() int {
			if ui.result == nil {
				return 0
			}
			return ui.result.Count()
		},
		func() fyne.CanvasObject {
			return newGalleryCell(ui.lib, ui.metrics, ui.dispatch)
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			cell, ok := obj.(*galleryCell)
			if !ok || ui.result == nil {
				return
			}
			cell.SetAsset(ui.result.At(id))
		},
	)
	ui.grid.OnSelected = ui.onCellSelected

	ui.gridHost = newGridHost(ui.grid, func(width float32) {
		ui.metrics.setSide(CellSide(width, ui.columns))
	})

	ui.preview = NewPreviewPanel(ui.lib, ui.dispatch)

	split := container.NewHSplit(ui.gridHost, ui.preview)
	split.SetOffset(0.62)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, split))
	ui.window.Resize(DefaultWindowSize)
}

// onActionTapped drives the action button: it requests access while
// undetermined, opens the limited picker while limited, and jumps to the
// system privacy settings while denied.
func (ui *RootUI) onActionTapped() {
	switch ui.tracker.Status() {
	case model.AccessUndetermined:
		ui.tracker.RequestAccess()
	case model.AccessLimited:
		ui.presentLimitedPicker()
	case model.AccessDenied:
		if err := platform.OpenSystemSettings(); err != nil {
			ui.log.Error("failed to open system settings", "error", err)
		}
	}
}

// onAccessStatusChanged relabels the action button for the new status. The
// button stays visible in every state except full access, where no further
// action is available.
func (ui *RootUI) onAccessStatusChanged(status model.AccessStatus) {
	switch status {
	case model.AccessAllowed:
		ui.actionBtn.Hide()
	case model.AccessLimited:
		ui.actionBtn.SetText(LabelAddMorePhotos)
		ui.actionBtn.Show()
	case model.AccessDenied:
		ui.actionBtn.SetText(LabelOpenSettings)
		ui.actionBtn.Show()
	default:
		ui.actionBtn.SetText(LabelFetchPhotos)
		ui.actionBtn.Show()
	}
}

// fetchAssets queries the library off the UI context and installs the
// snapshot when it arrives.
func (ui *RootUI) fetchAssets() {
	go func() {
		result := ui.lib.QueryImageAssets()
		ui.dispatch(func() {
			ui.setFetchResult(result)
		})
	}()
}

func (ui *RootUI) setFetchResult(result *library.FetchResult) {
	ui.result = result
	count := 0
	if result != nil {
		count = result.Count()
	}
	ui.log.Info("assets fetched", "count", count)
	ui.grid.Refresh()
}

// LibraryDidChange implements library.ChangeObserver. The held snapshot is
// swapped only when the change actually affects it.
func (ui *RootUI) LibraryDidChange(details *library.ChangeDetails) {
	ui.dispatch(func() {
		next, affected := details.ChangesFor(ui.result)
		if !affected {
			return
		}
		ui.setFetchResult(next)
	})
}

func (ui *RootUI) onCellSelected(id widget.GridWrapItemID) {
	if ui.result == nil {
		return
	}
	asset := ui.result.At(id)
	if asset.IsZero() {
		return
	}
	ui.preview.SetAsset(asset)
	ui.grid.UnselectAll()
}

// setColumnCount reflows the grid and persists the choice.
func (ui *RootUI) setColumnCount(n int) {
	n = model.ClampColumnCount(n)
	if n == ui.columns {
		return
	}
	ui.columns = n
	ui.settings.SetColumnCount(n)
	ui.metrics.setSide(CellSide(ui.gridHost.Size().Width, n))
	ui.grid.Refresh()
}

// presentLimitedPicker lets the user extend the limited selection with more
// files from disk.
func (ui *RootUI) presentLimitedPicker() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.Error("limited picker failed", "error", err)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		go func() {
			if err := ui.lib.AddToLimitedSelection([]string{path}); err != nil {
				ui.log.Error("failed to extend limited selection", "error", err, "path", path)
			}
		}()
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Show()
}

func (ui *RootUI) teardown() {
	if ui.observerID != "" {
		ui.lib.UnregisterChangeObserver(ui.observerID)
		ui.observerID = ""
	}
}

// gridHost wraps the grid so column metrics can track the host's width. Fyne
// reports size changes through Resize, which is the only hook needed.
type gridHost struct {
	widget.BaseWidget
	content   fyne.CanvasObject
	onResized func(width float32)
}

func newGridHost(content fyne.CanvasObject, onResized func(width float32)) *gridHost {
	h := &gridHost{content: content, onResized: onResized}
	h.ExtendBaseWidget(h)
	return h
}

func (h *gridHost) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.content)
}

func (h *gridHost) Resize(size fyne.Size) {
	h.BaseWidget.Resize(size)
	if h.onResized != nil {
		h.onResized(size.Width)
	}
}
