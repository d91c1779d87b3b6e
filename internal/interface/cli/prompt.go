// Package cli implements the interactive roster menu. It is a thin I/O
// wrapper: all acceptance logic lives in the domain, and the prompts only
// relay validation failures back to the user and re-ask.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// clearMark lets the user empty an optional field during an edit, since a
// blank answer keeps the current value.
const clearMark = "-"

// Prompter reads and parses raw user input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Line prints the label and reads one trimmed line. Returns "" on EOF.
func (p *Prompter) Line(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Valid prompts until validate accepts the input, echoing each failure.
func (p *Prompter) Valid(label string, validate func(string) error) string {
	for {
		input := p.Line(label)
		if err := validate(input); err != nil {
			fmt.Fprintf(p.out, "  invalid: %v\n", err)
			continue
		}
		return input
	}
}

// Keep prompts with the current value shown; a blank answer keeps it and the
// clear mark empties it. Any other answer must pass validate.
func (p *Prompter) Keep(label, current string, validate func(string) error) string {
	for {
		input := p.Line(fmt.Sprintf("%s [%s]", label, current))
		if input == "" {
			return current
		}
		if input == clearMark && validate == nil {
			return ""
		}
		if validate != nil {
			if err := validate(input); err != nil {
				fmt.Fprintf(p.out, "  invalid: %v\n", err)
				continue
			}
		}
		return input
	}
}

// Replace prompts with the current value shown and reports whether the user
// typed a replacement. A blank answer keeps the current value untouched, so
// callers holding a typed value never re-parse a display string the user did
// not enter.
func (p *Prompter) Replace(label, current string, validate func(string) error) (string, bool) {
	for {
		input := p.Line(fmt.Sprintf("%s [%s]", label, current))
		if input == "" {
			return current, false
		}
		if validate != nil {
			if err := validate(input); err != nil {
				fmt.Fprintf(p.out, "  invalid: %v\n", err)
				continue
			}
		}
		return input, true
	}
}

// Int prompts until the input parses as an integer and passes validate.
func (p *Prompter) Int(label string, validate func(int) error) int {
	for {
		input := p.Line(label)
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(p.out, "  invalid: enter a whole number")
			continue
		}
		if validate != nil {
			if err := validate(value); err != nil {
				fmt.Fprintf(p.out, "  invalid: %v\n", err)
				continue
			}
		}
		return value
	}
}

// Float prompts until the input parses as a number and passes validate.
func (p *Prompter) Float(label string, validate func(float64) error) float64 {
	for {
		input := p.Line(label)
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintln(p.out, "  invalid: enter a number")
			continue
		}
		if validate != nil {
			if err := validate(value); err != nil {
				fmt.Fprintf(p.out, "  invalid: %v\n", err)
				continue
			}
		}
		return value
	}
}

// YesNo prompts for a y/n answer.
func (p *Prompter) YesNo(label string) bool {
	for {
		switch strings.ToLower(p.Line(label + " (y/n)")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, "  invalid: answer y or n")
	}
}
