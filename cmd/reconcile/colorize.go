package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

// colorizeCommand renders a command for terminal diagnostics, coloring it
// by classification: green for a constructor, red for a destructor, yellow
// for an edit. core stays free of any presentation concern; this is the
// only place in the repository that colors a Command.
func colorizeCommand(c core.Command) string {
	text := c.String()
	if rootConfiguration.noColor {
		return text
	}
	switch {
	case c.IsConstructor():
		return color.GreenString(text)
	case c.IsDestructor():
		return color.RedString(text)
	case c.IsEdit():
		return color.YellowString(text)
	default:
		return text
	}
}

func printCommandSet(set core.CommandSet) {
	for _, c := range set.Slice() {
		fmt.Println(colorizeCommand(c))
	}
}
