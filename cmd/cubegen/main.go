// cubegen prints the cublet identifier lookup tables used by the cube solver.
package main

import (
	"github.com/SeamusWaldron/cubegen/internal/cli"
)

func main() {
	cli.Execute()
}
