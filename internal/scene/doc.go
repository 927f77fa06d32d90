package scene

// Package scene is the boundary to the augmented-reality/rendering engine. It
// defines the tracking configuration, renderable entities and anchors, the
// Session interface the presenter drives, a headless world-tracking Graph that
// implements it, and a glTF loader that turns bundled assets into entities.
