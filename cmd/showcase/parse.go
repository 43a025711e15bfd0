package main

import (
	"math"
	"strconv"
)

// parseValues turns command-line words into typed values: integers first,
// then finite floats, then true/false, otherwise text.
func parseValues(args []string, raw bool) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = parseValue(arg, raw)
	}
	return values
}

func parseValue(arg string, raw bool) any {
	if raw {
		return arg
	}
	if v, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(arg, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}
	switch arg {
	case "true":
		return true
	case "false":
		return false
	}
	return arg
}
