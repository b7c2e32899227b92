package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptLine reads one line of input, returning def when the answer is empty.
func promptLine(in *bufio.Reader, out io.Writer, label, def string) string {
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// promptInt reads an integer answer, returning def on empty or invalid input.
func promptInt(in *bufio.Reader, out io.Writer, label string, def int) int {
	answer := promptLine(in, out, label, strconv.Itoa(def))
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// promptConfirm asks a yes/no question, returning def on empty input.
func promptConfirm(in *bufio.Reader, out io.Writer, label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(out, "%s [%s]: ", label, hint)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// promptChoice presents a numbered menu and returns the chosen 1-based index,
// falling back to def on empty or out-of-range input.
func promptChoice(in *bufio.Reader, out io.Writer, label string, choices []string, def int) int {
	fmt.Fprintln(out, label)
	for i, c := range choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}
	answer := promptLine(in, out, "Enter choice", strconv.Itoa(def))
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(choices) {
		return def
	}
	return n
}
