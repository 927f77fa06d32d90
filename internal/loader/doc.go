package loader

// Package loader runs the asynchronous entity load for every catalog entry.
// Each load is represented by a Future; completed loads are merged into their
// descriptors by a single merge goroutine, which is the only writer of
// descriptor entity slots, and then reported through the update callback.
