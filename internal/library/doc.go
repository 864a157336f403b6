package library

// Package library implements the photo library service the gallery talks to:
// authorization state, asset queries, asynchronous renditions, and library
// change notifications, backed by a local image directory. Authorization
// grants and the limited-selection set are the only state it persists.
