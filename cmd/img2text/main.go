// Command img2text prints an image as true-color text-art, one glyph per
// pixel.
//
//	img2text -i photo.jpg -c '#' -x 0.25
package main

import "os"

// Set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
