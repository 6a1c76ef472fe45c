// Command tactile replays gesture scripts through the recognizer without a
// display and prints what it recognized.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
