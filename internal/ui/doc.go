// Package ui contains the Fyne-based gallery screen. It wires the
// authorization tracker to the action button, renders the asset grid with a
// selectable column count, and shows a zoomable preview of the selected
// asset. All shared state is mutated on the UI-owning context.
package ui
