// Command imgfetch runs the image fetch pipeline without the GUI.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
