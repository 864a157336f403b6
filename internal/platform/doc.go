package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// image file detection, and opening the system settings surface.
