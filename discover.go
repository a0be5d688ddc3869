package logwatch

import (
	"io"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// seekPolicy controls where newly discovered files start reading. It moves
// from seekInitial to seekPastInitial once and never back.
type seekPolicy int

const (
	seekInitial seekPolicy = iota
	seekPastInitial
)

// TailedFile is an open, positioned file. Ownership passes from the
// discovery loop to exactly one follower goroutine; nobody else reads from
// or seeks within it afterwards.
type TailedFile struct {
	path string
	file afero.File
}

// Path returns the file path used as the output grouping key.
func (t *TailedFile) Path() string { return t.path }

// Discoverer finds files under a set of roots whose base name matches a
// pattern and which have not been handed out before. It is not safe for
// concurrent use: all of its state belongs to the single discovery loop.
type Discoverer struct {
	fs          afero.Fs
	roots       []string
	namePattern *regexp.Regexp
	policy      seekPolicy
	seen        map[string]struct{}
	sink        *Sink
	logger      *slog.Logger
}

// NewDiscoverer returns a Discoverer over roots. When fromEnd is true, files
// found during the first call to Discover are positioned at end-of-file;
// every later call opens files at the beginning regardless.
func NewDiscoverer(fsys afero.Fs, roots []string, namePattern *regexp.Regexp, fromEnd bool, sink *Sink, logger *slog.Logger) *Discoverer {
	if fsys == nil {
		fsys = defaultFS
	}
	if logger == nil {
		logger = slog.Default()
	}
	policy := seekPastInitial
	if fromEnd {
		policy = seekInitial
	}
	return &Discoverer{
		fs:          fsys,
		roots:       roots,
		namePattern: namePattern,
		policy:      policy,
		seen:        make(map[string]struct{}),
		sink:        sink,
		logger:      logger,
	}
}

// Discover walks the roots and returns every newly qualifying file, opened
// and positioned according to the current seek policy. A path that fails to
// open is reported on the error stream and stays unseen, so it is retried on
// the next cycle. After the batch is assembled the seek policy becomes
// seekPastInitial for the rest of the process lifetime.
func (d *Discoverer) Discover() []*TailedFile {
	var found []*TailedFile
	expandPaths(d.fs, d.roots, func(path string) {
		if !d.namePattern.MatchString(filepath.Base(path)) {
			return
		}
		if _, ok := d.seen[path]; ok {
			return
		}
		f, err := d.fs.Open(path)
		if err != nil {
			d.sink.Warnf("<!> cannot open file %s", path)
			return
		}
		d.seen[path] = struct{}{}
		if d.policy == seekInitial {
			if _, err := f.Seek(0, io.SeekEnd); err != nil {
				d.logger.Warn("seek to end failed", "path", path, "error", err)
			}
		}
		found = append(found, &TailedFile{path: path, file: f})
	})
	d.policy = seekPastInitial
	d.logger.Debug("discovery cycle finished", "new", len(found), "seen", len(d.seen))
	return found
}
