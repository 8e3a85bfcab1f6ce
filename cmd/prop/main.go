// Command prop is a tool for working with propositional formulas and
// their truth tables.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
