package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a [y/N] prompt and reads one line. Only "y" or "yes"
// (any case) count as confirmation; everything else, including EOF,
// declines.
func Confirm(out io.Writer, in io.Reader, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
