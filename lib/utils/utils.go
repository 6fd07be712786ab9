package utils

import (
	"math"
	"strconv"
)

// ToCmdLine converts strings to a command line
func ToCmdLine(cmd ...string) [][]byte {
	args := make([][]byte, len(cmd))
	for i, s := range cmd {
		args[i] = []byte(s)
	}
	return args
}

// ToCmdLine2 converts a command name and its string arguments to a command line
func ToCmdLine2(commandName string, args ...string) [][]byte {
	result := make([][]byte, len(args)+1)
	result[0] = []byte(commandName)
	for i, s := range args {
		result[i+1] = []byte(s)
	}
	return result
}

// Prepend returns head followed by tail, used to flatten variadic arguments
func Prepend(tail []string, head ...string) []string {
	result := make([]string, 0, len(head)+len(tail))
	result = append(result, head...)
	return append(result, tail...)
}

// FormatFloat renders a score the way the server parses it, including infinities
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
