package action

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CheckSyntax parses command as shell and returns the first syntax
// error, or nil. Proposed commands that fail the check are still
// offered to the user; the result only feeds an advisory warning.
func CheckSyntax(command string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	return err
}
