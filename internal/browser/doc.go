// Package browser holds the GUI-independent side of the resource browser:
// the category catalog, per-extension open dispatch, the selection state
// machine and a filesystem watcher that keeps listings fresh.
package browser
