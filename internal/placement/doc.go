package placement

// Package placement owns the model selection/placement state machine:
// Browsing → Placing on select, Placing → Browsing on cancel or confirm, with
// confirm leaving a one-shot confirmation for the scene presenter to take.
// Subscribers receive immutable snapshots, serialized in mutation order.
