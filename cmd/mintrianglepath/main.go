// Command mintrianglepath prints the minimal top-to-bottom path through a
// triangle of numbers read from a file or standard input.
package main

import (
	"os"

	"github.com/katalvlaran/trianglepath/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
