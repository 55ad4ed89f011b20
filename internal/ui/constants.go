package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconVideo    = "🎬"
	IconPDF      = "📕"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	FileListMinWidth  float32 = 260
	ViewerMinWidth    float32 = 480
	SplitOffset               = 0.3
	PageSpacing       float32 = 8
	SettingsDialogW   float32 = 520
	SettingsDialogH   float32 = 360
	CategorySelectMin float32 = 200
)

// Debounce durations
const (
	RefreshDebounce = 500 * time.Millisecond
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)
