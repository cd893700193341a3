// Package debuglog provides the diagnostics logger shared by the picker packages.
// Output is discarded until Open or SetOutput is called.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger = log.New(io.Discard, "", log.Ltime|log.Lshortfile)
)

// Open appends diagnostics to the file at path.
// The returned closer should be closed when the program exits.
func Open(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	SetOutput(f)
	return f, nil
}

// SetOutput redirects diagnostics to w. A nil writer discards them.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	logger.SetOutput(w)
	mu.Unlock()
}

// Printf writes a diagnostics line attributed to the caller.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Output(2, fmt.Sprintf(format, args...))
}
