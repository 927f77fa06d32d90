package model

// Package model defines the domain data shared across the app: placeable model
// descriptors with their asynchronous load status, and the immutable placement
// state published by the selection controller.
