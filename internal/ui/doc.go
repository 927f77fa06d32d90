package ui

// Package ui contains the Fyne user interface for the application.
// It renders placement controller state as a thumbnail strip or a pair of
// cancel/confirm buttons over the scene view, forwards taps and gestures to the
// controller, and reports load and placement failures in a notification line.
// All UI strings are localized via Localization.
