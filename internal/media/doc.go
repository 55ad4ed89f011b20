// Package media renders PDF pages with MuPDF (github.com/gen2brain/go-fitz)
// and hands videos to an external player. ffprobe supplies video durations.
package media
