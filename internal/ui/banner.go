package ui

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Banner prints title as ASCII art.
func (c *Console) Banner(title string) {
	art := strings.TrimRight(figure.NewFigure(title, "", true).String(), "\n")
	fmt.Fprintln(c.Out, c.out.primary.Render(art))
}
