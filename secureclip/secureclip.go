package secureclip

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout is how long copied text stays on the clipboard.
const DefaultTimeout = 30 * time.Second

var (
	lastClip    atomic.Int64
	clipTimeout atomic.Int64

	readAll  = clipboard.ReadAll
	writeAll = clipboard.WriteAll
)

func init() {
	clipTimeout.Store(int64(DefaultTimeout))
}

// SetTimeout changes how long text stays on the clipboard. Non-positive
// durations are ignored.
func SetTimeout(d time.Duration) {
	if d > 0 {
		clipTimeout.Store(int64(d))
	}
}

// Timeout returns the current clearing timeout.
func Timeout() time.Duration {
	return time.Duration(clipTimeout.Load())
}

// Clip copies `text` to the clipboard. The clipboard is cleared once the
// timeout has passed since the last Clip call, unless something else has
// been copied over it in the meantime.
func Clip(text string) error {
	if err := writeAll(text); err != nil {
		return err
	}
	lastClip.Store(time.Now().UnixNano())
	timeout := Timeout()
	go func() {
		time.Sleep(timeout)
		if time.Since(time.Unix(0, lastClip.Load())) < timeout {
			return
		}
		if current, err := readAll(); err == nil && current == text {
			writeAll("")
		}
	}()
	return nil
}

// Clear clears the clipboard.
func Clear() error {
	return writeAll("")
}
