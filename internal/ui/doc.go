// Package ui contains the Fyne desktop interface of the resource browser.
// It feeds user actions into browser.Browser, renders the resulting state
// (category listing, PDF pages, playback status) and keeps settings in
// Fyne preferences. All UI strings are localized via Localization.
package ui
