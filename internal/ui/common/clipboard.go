package common

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// ErrNothingToCopy is returned when the text is blank once styling is removed.
var ErrNothingToCopy = errors.New("nothing to copy")

var writeClipboard = clipboard.WriteAll

// CopyLine copies text to the system clipboard as a single plain line and
// returns what was copied. Styling is stripped and line breaks fold to spaces.
func CopyLine(text string) (string, error) {
	line := strings.Join(strings.Fields(ansi.Strip(text)), " ")
	if line == "" {
		return "", ErrNothingToCopy
	}
	if err := writeClipboard(line); err != nil {
		return "", err
	}
	return line, nil
}
