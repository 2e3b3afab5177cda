package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrorLog is a Sink appending one line per message to the error output
// file. The file is never truncated, so diagnostics accumulate across runs.
type ErrorLog struct {
	path string
}

// NewErrorLog creates an ErrorLog inside the given processing folder.
func NewErrorLog(root string) *ErrorLog {
	return &ErrorLog{path: filepath.Join(root, ErrorFile)}
}

// Log appends one line to the error file. Failures to write the log itself
// are reported on stderr; they must not take down the batch.
func (l *ErrorLog) Log(message string) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create error log folder: %v\n", err)
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open error log: %v\n", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, message); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write error log: %v\n", err)
	}
}
