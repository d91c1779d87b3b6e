package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestLine_TrimsInput(t *testing.T) {
	p, _ := newTestPrompter("  hello  \n")
	assert.Equal(t, "hello", p.Line("label"))
}

func TestLine_EOFReturnsEmpty(t *testing.T) {
	p, _ := newTestPrompter("")
	assert.Equal(t, "", p.Line("label"))
}

func TestValid_RepromptsUntilAccepted(t *testing.T) {
	calls := 0
	p, out := newTestPrompter("bad\nbad\ngood\n")

	result := p.Valid("value", func(s string) error {
		calls++
		if s != "good" {
			return errors.New("not good")
		}
		return nil
	})

	assert.Equal(t, "good", result)
	assert.Equal(t, 3, calls)
	assert.Contains(t, out.String(), "invalid: not good")
}

func TestKeep_BlankKeepsCurrent(t *testing.T) {
	p, _ := newTestPrompter("\n")
	assert.Equal(t, "current", p.Keep("value", "current", nil))
}

func TestKeep_ClearMarkEmptiesOptionalField(t *testing.T) {
	p, _ := newTestPrompter("-\n")
	assert.Equal(t, "", p.Keep("subject", "Math", nil))
}

func TestKeep_ValidatesReplacement(t *testing.T) {
	p, out := newTestPrompter("bad\nnew\n")

	result := p.Keep("value", "current", func(s string) error {
		if s == "bad" {
			return errors.New("nope")
		}
		return nil
	})

	assert.Equal(t, "new", result)
	assert.Contains(t, out.String(), "invalid: nope")
}

func TestReplace_BlankReportsKept(t *testing.T) {
	p, _ := newTestPrompter("\n")

	result, replaced := p.Replace("salary", "1234.567", nil)

	assert.Equal(t, "1234.567", result)
	assert.False(t, replaced)
}

func TestReplace_ValidatesReplacement(t *testing.T) {
	p, out := newTestPrompter("bad\n1500\n")

	result, replaced := p.Replace("salary", "1234.567", func(s string) error {
		if s == "bad" {
			return errors.New("nope")
		}
		return nil
	})

	assert.Equal(t, "1500", result)
	assert.True(t, replaced)
	assert.Contains(t, out.String(), "invalid: nope")
}

func TestInt_RepromptsOnGarbage(t *testing.T) {
	p, out := newTestPrompter("abc\n42\n")
	assert.Equal(t, 42, p.Int("n", nil))
	assert.Contains(t, out.String(), "whole number")
}

func TestFloat_AppliesValidator(t *testing.T) {
	p, _ := newTestPrompter("-5\n10.5\n")
	result := p.Float("salary", func(f float64) error {
		if f < 0 {
			return errors.New("negative")
		}
		return nil
	})
	assert.Equal(t, 10.5, result)
}

func TestYesNo(t *testing.T) {
	p, _ := newTestPrompter("maybe\nYES\n")
	assert.True(t, p.YesNo("full time"))

	p, _ = newTestPrompter("n\n")
	assert.False(t, p.YesNo("full time"))
}
