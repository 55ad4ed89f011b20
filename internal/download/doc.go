// Package download implements the resource synchronizer. It walks a manifest
// and makes sure every declared PDF, video, archive bundle and repository
// mirror exists under the base directory, fetching only what is missing.
// Videos go through yt-dlp (github.com/lrstanley/go-ytdlp), PDFs through
// net/http or github.com/melbahja/got.
package download
