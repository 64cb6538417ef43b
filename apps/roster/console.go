package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/edcentre/core"
)

// console is the terminal side of core.Prompter.
type console struct {
	in    *bufio.Reader
	out   io.Writer
	color *color.Color
}

var _ core.Prompter = (*console)(nil)

func newConsole(in io.Reader, out io.Writer, colored bool) *console {
	c := color.New()
	if !colored {
		c.Disable()
	}
	return &console{in: bufio.NewReader(in), out: out, color: c}
}

func (c *console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, "read input")
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return "", core.NewShutdownError("input closed")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *console) Warn(msg string) {
	fmt.Fprintln(c.out, c.color.Red(msg))
}

func (c *console) Success(msg string) {
	fmt.Fprintln(c.out, c.color.Green(msg))
}

func (c *console) Title(msg string) {
	fmt.Fprintln(c.out, c.color.Cyan(msg))
}

// Clear wipes the terminal and moves the cursor home.
func (c *console) Clear() {
	fmt.Fprint(c.out, "\033[H\033[2J")
}
