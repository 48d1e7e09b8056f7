// Package preflight checks that the filesystem locations a download job
// writes to are usable before yt-dlp is started.
//
// A path that does not exist yet passes when its nearest existing parent is a
// writable directory, because the job creates it on demand.
package preflight
