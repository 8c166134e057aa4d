// Package clipboard delivers an encoded capture to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var writeMu sync.Mutex

// Init prepares the system clipboard. It fails when no clipboard is
// available, e.g. in a session without a display.
func Init() error {
	return clipboard.Init()
}

// WriteImage performs a mutex-guarded clipboard write of PNG-encoded image
// data. Clipboard image targets expect PNG regardless of the output format
// chosen for files.
func WriteImage(png []byte) error {
	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
