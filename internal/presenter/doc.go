// Package presenter connects confirmed selections to the tracked scene.
//
// A Presenter configures the tracking session once and inserts each
// confirmed model under a fresh plane anchor. It consumes the confirmation
// through an atomic take, so repeated notifications for the same
// confirmation insert the model only once.
package presenter
