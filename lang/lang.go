// Package lang renders counts and lists for combat reports.
package lang

import (
	"fmt"
	"strings"

	"github.com/gertd/go-pluralize"
)

const (
	DefaultPattern   = "%s"
	DefaultSeparator = ","
	DefaultOperator  = "and"
)

var plural = pluralize.NewClient()

// Card returns n followed by noun, pluralized unless n is 1. Zero reads as "no".
func Card(n int, noun string) string {
	if n == 0 {
		return "no " + plural.Plural(noun)
	}
	return plural.Pluralize(noun, n, true)
}

// Enumerator joins elements as an English list: "a", "a and b", "a, b and c".
type Enumerator struct {
	Pattern   string
	Separator string
	Operator  string
}

func (e Enumerator) Do(elements ...string) string {
	pattern, separator, operator := DefaultPattern, DefaultSeparator, DefaultOperator
	if e.Pattern != "" {
		pattern = e.Pattern
	}
	if e.Separator != "" {
		separator = e.Separator
	}
	if e.Operator != "" {
		operator = e.Operator
	}
	b := &strings.Builder{}
	for idx, element := range elements {
		fmt.Fprintf(b, pattern, element)
		switch {
		case idx+2 < len(elements):
			fmt.Fprintf(b, "%s ", separator)
		case idx+1 < len(elements):
			fmt.Fprintf(b, " %s ", operator)
		}
	}
	return b.String()
}
