package model

// Package model defines domain data structures used across the app: photo
// assets, the library access status enum, and grid column constraints.
// Structures are designed for direct use in the UI and explicit state
// transitions.
