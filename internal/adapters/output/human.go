package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/mikey-austin/showcase/internal/core"
)

// HumanPrinter prints a titled section per demo.
type HumanPrinter struct {
	Writer  io.Writer
	NoColor bool
	Quiet   bool
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	switch data := v.(type) {
	case core.DemoResult:
		return p.printDemo(data)
	case core.AllResult:
		for i, demo := range data.Demos {
			if i > 0 && !p.Quiet {
				if _, err := fmt.Fprintln(p.writer()); err != nil {
					return err
				}
			}
			if err := p.printDemo(demo); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(p.writer(), "ok")
		return err
	}
}

func (p HumanPrinter) printDemo(result core.DemoResult) error {
	w := p.writer()
	if !p.Quiet {
		heading := color.New(color.FgCyan, color.Bold)
		if p.NoColor {
			heading.DisableColor()
		}
		if _, err := heading.Fprintln(w, result.Name); err != nil {
			return err
		}
		rule := strings.Repeat("─", runewidth.StringWidth(result.Name))
		if _, err := fmt.Fprintln(w, rule); err != nil {
			return err
		}
	}
	for _, line := range result.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p HumanPrinter) writer() io.Writer {
	if p.Writer == nil {
		return os.Stdout
	}
	return p.Writer
}
