// Package confirm prompts for destructive command-line actions.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Ask prints the warning and reads a y/N answer. Anything other than an
// explicit yes declines.
func Ask(w io.Writer, r io.Reader, message string) bool {
	fmt.Fprintf(w, "%s This cannot be undone. Continue? [y/N]: ", message)
	answer, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
