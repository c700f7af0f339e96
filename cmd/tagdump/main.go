package main

import (
	"fmt"
	"io"
	"os"
)

var (
	// Version is set at build time via ldflags
	// Example: go build -ldflags="-X main.Version=v1.2.3"
	Version = "dev"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `tagdump - Dump embedded metadata tags from a media file

USAGE:
    tagdump [flags] <file>

FLAGS:
    -config <path>    Path to YAML configuration file
    -width <n>        Force wrap width (0 = detect from terminal)
    -interactive      Pause for Enter after output (TTY only)
    -log-path <path>  Write JSON diagnostics to this file
    -version          Show version information
    -h, --help        Show this help message

EXAMPLES:
    tagdump song.mp3
    tagdump -width 72 album.flac
    tagdump -config tagdump.yaml -interactive song.mp3
`)
}
