package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/photogrid/photo-gallery/internal/library"
)

// promptDialog is the modal asking the user for library access.
type promptDialog struct {
	dialog  dialog.Dialog
	full    *widget.Button
	limited *widget.Button
	deny    *widget.Button
}

func newPromptDialog(win fyne.Window, respond func(library.Authorization)) *promptDialog {
	p := &promptDialog{}

	answer := func(auth library.Authorization) {
		p.dialog.Hide()
		go respond(auth)
	}

	p.full = widget.NewButton(PromptAllowFull, func() { answer(library.AuthAuthorized) })
	p.full.Importance = widget.HighImportance
	p.limited = widget.NewButton(PromptAllowSelect, func() { answer(library.AuthLimited) })
	p.deny = widget.NewButton(PromptDeny, func() { answer(library.AuthDenied) })

	content := container.NewVBox(
		widget.NewLabel(PromptMessage),
		p.full,
		p.limited,
		p.deny,
	)
	p.dialog = dialog.NewCustomWithoutButtons(PromptTitle, content, win)
	return p
}

func (p *promptDialog) Show() {
	p.dialog.Show()
}

// NewAuthorizationPrompt returns a prompt that asks the user for library
// access with a modal dialog. The library invokes the prompt off the UI
// context, so all widget work is marshaled back through fyne.Do; only the
// respond hop stays off-thread, letting the grant persist without blocking
// the UI.
func NewAuthorizationPrompt(win fyne.Window) library.AuthorizationPrompt {
	return func(respond func(library.Authorization)) {
		fyne.Do(func() {
			newPromptDialog(win, respond).Show()
		})
	}
}
