package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the dark theme
var (
	ColorBackground = color.RGBA{R: 0x28, G: 0x2c, B: 0x34, A: 255}
	ColorInput      = color.RGBA{R: 0x21, G: 0x25, B: 0x2b, A: 255}
	ColorForeground = color.RGBA{R: 0xab, G: 0xb2, B: 0xbf, A: 255}
	ColorHover      = color.RGBA{R: 0x2c, G: 0x31, B: 0x3a, A: 255}
	ColorSelection  = color.RGBA{R: 0x3e, G: 0x44, B: 0x51, A: 255}
)

// CompactTheme is a dark theme with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors. The palette is always dark.
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorBackground
	case theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return ColorInput
	case theme.ColorNameForeground:
		return ColorForeground
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNameSelection:
		return ColorSelection
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0x98, G: 0xc3, B: 0x79, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 0xe0, G: 0x6c, B: 0x75, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 0xe5, G: 0xc0, B: 0x7b, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x61, G: 0xaf, B: 0xef, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	return theme.DefaultTheme().Size(name)
}
