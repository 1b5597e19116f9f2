// Package console provides minimal line-oriented prompting. The
// reader and writer are injectable so tests can script a session.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console reads answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Default is bound to the process stdin and stdout.
var Default = New(os.Stdin, os.Stdout)

// ReadLine writes prompt and returns one line of input without the
// trailing terminator. EOF with a partial line returns that line; EOF
// with nothing read is an error.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm writes prompt and interprets the reply: y or yes in any case
// means yes, everything else means no.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadLine prompts on the Default console.
func ReadLine(prompt string) (string, error) {
	return Default.ReadLine(prompt)
}

// Confirm prompts on the Default console.
func Confirm(prompt string) (bool, error) {
	return Default.Confirm(prompt)
}
