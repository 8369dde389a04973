package game

// DebugState holds the F1 overlay toggle
type DebugState struct {
	ShowHUD bool // Overlay puzzle path, block counts and the block under the cursor
}

// Shared by Update (toggle) and Draw (overlay)
var globalDebugState = &DebugState{
	ShowHUD: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
