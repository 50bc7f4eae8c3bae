package main

import (
	"fmt"
	"os"

	"github.com/mt32kit/romset"
)

// Small diagnostic tool: identify ROM files from the command line and
// report which hardware-variant slot each would land in.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: romscan <file> [file...]")
		os.Exit(1)
	}

	exit := 0
	for _, path := range os.Args[1:] {
		desc, err := romset.Identify(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}
		fmt.Printf("%-40s %-8s %8d  %s\n", path, desc.Type, desc.Size, desc)
	}
	os.Exit(exit)
}
