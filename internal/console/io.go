package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

// prompt writes the question and reads one trimmed line
// before, if set, is printed ahead of the question. io.EOF is returned once the input is exhausted.
func (c *Console) prompt(question string, before func()) (string, error) {
	if before != nil {
		before()
	}

	c.print(question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}

		c.println("")
		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) print(s string) {
	_, _ = fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) warn(msg string) {
	if c.opts.Color {
		c.print(pterm.Warning.Sprintln(msg))
		return
	}

	c.println(msg)
}

func (c *Console) success(msg string) {
	if c.opts.Color {
		c.print(pterm.Success.Sprintln(msg))
		return
	}

	c.println(msg)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
