package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vipcxj/intervals/internal/shell"
)

// choiceValue is a pflag.Value restricted to a fixed set of words.
type choiceValue struct {
	value   string
	allowed []string
	typ     string
}

func newChoiceValue(typ string, def string, allowed ...string) *choiceValue {
	return &choiceValue{value: def, allowed: allowed, typ: typ}
}

func (c *choiceValue) String() string { return c.value }

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(c.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, ", "))
	}
	c.value = s
	return nil
}

func (c *choiceValue) Type() string { return c.typ }

const (
	numberInt   = "int"
	numberFloat = "float"
)

func newNumberTypeValue() *choiceValue {
	return newChoiceValue("type", numberInt, numberInt, numberFloat)
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newOutputValue() *choiceValue {
	return newChoiceValue("output", outputText, outputText, outputJSON, outputYAML)
}

// shellValue adapts shell.ShellType to pflag.
type shellValue struct {
	shell.ShellType
}

func (s *shellValue) Set(v string) error {
	st, err := shell.ShellTypeString(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(shell.ShellTypeStrings(), ", "))
	}
	s.ShellType = st
	return nil
}

func (s *shellValue) Type() string { return "shell" }
