// Command stdinfuzz feeds mutated variants of a seed input to a command's
// standard input and stops at the first one it exits non-zero on.
package main

import (
	"os"

	"github.com/mouse-blink/stdinfuzz/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
