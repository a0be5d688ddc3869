package logwatch

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const defaultRetryDelay = 500 * time.Millisecond

// Follower turns one open file into a live sequence of complete,
// terminator-stripped lines, starting at the handle's current position.
// It recognizes "\r\n", "\n" and bare "\r" as line terminators.
type Follower struct {
	file  afero.File
	delay time.Duration

	// trailing is set while the last read stopped mid-line or at end of
	// data. When set, a read that returns nothing but a terminator is
	// leftover formatting from the previous line, not an empty line, and
	// is swallowed.
	trailing bool
}

// NewFollower returns a Follower over file with the default retry delay.
func NewFollower(file afero.File) *Follower {
	return newFollower(file, defaultRetryDelay)
}

func newFollower(file afero.File, delay time.Duration) *Follower {
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	return &Follower{
		file:     file,
		delay:    delay,
		trailing: startsAfterTerminator(file),
	}
}

// startsAfterTerminator reports whether the handle's current position sits
// immediately past a line terminator, as it does for a file seeked to the
// end of content that already finishes with a newline.
func startsAfterTerminator(file afero.File) bool {
	pos, err := file.Seek(0, io.SeekCurrent)
	if err != nil || pos == 0 {
		return false
	}
	var b [1]byte
	if _, err := file.ReadAt(b[:], pos-1); err != nil {
		return false
	}
	return b[0] == '\n' || b[0] == '\r'
}

// Lines streams every complete line appended to the file, in file order.
// The stream never ends on its own; it closes only when ctx is cancelled.
func (f *Follower) Lines(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for {
			line, ok := f.next(ctx)
			if !ok {
				return
			}
			select {
			case <-ctx.Done():
				return
			case out <- line:
			}
		}
	}()
	return out
}

// next blocks until one complete line is available. A read that stops before
// a terminator leaves the position where it started so the partial bytes are
// re-read once the writer finishes the line.
func (f *Follower) next(ctx context.Context) (string, bool) {
	for {
		pos, err := f.file.Seek(0, io.SeekCurrent)
		if err != nil {
			return "", false
		}
		data, terminated := f.readLine()
		if !terminated {
			if _, err := f.file.Seek(pos, io.SeekStart); err != nil {
				return "", false
			}
			f.trailing = true
			select {
			case <-ctx.Done():
				return "", false
			case <-time.After(f.delay):
			}
			continue
		}
		wasTrailing := f.trailing
		f.trailing = false
		line, bare := stripTerminator(data)
		if wasTrailing && bare {
			continue
		}
		return line, true
	}
}

// readLine reads from the current position up to and including one line
// terminator, or up to the end of the currently available data, reporting
// whether a terminator was reached.
func (f *Follower) readLine() (string, bool) {
	var buf []byte
	var b [1]byte
	for {
		n, _ := f.file.Read(b[:])
		if n == 0 {
			return string(buf), false
		}
		buf = append(buf, b[0])
		switch b[0] {
		case '\n':
			return string(buf), true
		case '\r':
			// A "\r\n" pair counts as one terminator; pull in the
			// "\n" when it is already there, otherwise put back
			// whatever followed.
			if n, _ := f.file.Read(b[:]); n > 0 {
				if b[0] == '\n' {
					buf = append(buf, '\n')
				} else {
					f.file.Seek(-1, io.SeekCurrent)
				}
			}
			return string(buf), true
		}
	}
}

// stripTerminator removes exactly one trailing terminator, reporting whether
// data was nothing but the terminator itself.
func stripTerminator(data string) (line string, bare bool) {
	switch {
	case strings.HasSuffix(data, "\r\n"):
		line = data[:len(data)-2]
	case strings.HasSuffix(data, "\n"), strings.HasSuffix(data, "\r"):
		line = data[:len(data)-1]
	default:
		return data, false
	}
	return line, line == ""
}
