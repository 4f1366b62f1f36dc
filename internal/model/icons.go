package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconTarget    = "◆" // Diamond for the managed directory
	IconDuplicate = "≈" // Almost equal (duplicate)
	IconMissing   = "✗" // Thin X (directory missing)
	IconOK        = " " // Space (OK - no icon to reduce noise)
)
