// Command palettes compiles palette declarations into Go packages.
package main

import (
	"os"

	"github.com/opencode-ai/palettes/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
