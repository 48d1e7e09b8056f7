// Package main hosts the ytfetch CLI entrypoint and command graph.
//
// Running ytfetch without arguments starts an interactive session: required
// tools are checked, the operator answers a short series of prompts, and the
// resulting job is handed to yt-dlp with aria2c as the segment downloader.
// The deps and config subcommands expose the same tool check and the
// configuration file outside a session.
//
// Keep this package thin. Behaviour lives in the internal packages and is
// only wired and rendered here.
package main
