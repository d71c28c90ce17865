package game

// DebugState holds global debug flags that persist across test runs
type DebugState struct {
	ShowTouch bool // Show the last touch point, its cell and the mark switch
}

// Global debug state instance
var globalDebugState = &DebugState{
	ShowTouch: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
