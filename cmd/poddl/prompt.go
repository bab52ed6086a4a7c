package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// prompt reads episode selections from the terminal.
type prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ChooseOne prints the options and reads a 1-based selection from the input,
// asking again on invalid input. Returns the selected option string.
func (p *prompt) ChooseOne(options []string) (string, error) {
	fmt.Fprintln(p.out, "Select an episode to download:")
	for _, option := range options {
		fmt.Fprintln(p.out, option)
	}

	for {
		fmt.Fprintf(p.out, "Enter a number between 1 and %d: ", len(options))

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", errors.Wrap(err, "failed to read selection")
			}

			return "", errors.New("selection aborted")
		}

		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, "Invalid selection, try again.")
			continue
		}

		return options[n-1], nil
	}
}
