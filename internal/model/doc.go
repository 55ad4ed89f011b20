package model

// Package model defines domain data structures used across the app: the
// resource manifest, categories, synchronization tasks and their status.
// A Manifest is treated as an immutable value once loaded.
