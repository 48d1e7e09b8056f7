// Package engine drives the external download engine (yt-dlp) through
// github.com/lrstanley/go-ytdlp.
//
// YTDLP maps a job.Spec onto yt-dlp options one to one, runs it against a
// single URL and converts a non-zero exit into *DownloadError so callers can
// tell an engine rejection from a local failure. Byte transfer, segmenting and
// transcoding stay with the tools yt-dlp delegates to.
package engine
