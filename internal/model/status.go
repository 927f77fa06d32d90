package model

// LoadStatus represents the state of a descriptor's asynchronous entity load
type LoadStatus string

const (
	// LoadStatusPending means the entity load has not completed yet
	LoadStatusPending LoadStatus = "Pending"

	// LoadStatusLoaded means the entity is available for placement
	LoadStatusLoaded LoadStatus = "Loaded"

	// LoadStatusFailed means the load finished without an entity
	LoadStatusFailed LoadStatus = "Failed"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsFinished returns true once the load has completed either way
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusLoaded || ls == LoadStatusFailed
}
