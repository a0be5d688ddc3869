package logwatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/spf13/afero"
)

// Options configures a Watcher. Zero values fall back to the OS filesystem,
// stdout/stderr, the default slog logger, a one second poll interval and the
// default follower retry delay.
type Options struct {
	FS         afero.Fs
	Out        io.Writer
	Err        io.Writer
	Logger     *slog.Logger
	Interval   time.Duration
	RetryDelay time.Duration
	FromEnd    bool
}

// Watcher discovers files under a set of roots and follows each one in its
// own goroutine, printing the lines that match a pattern to a shared,
// source-grouped sink.
type Watcher struct {
	linePattern *regexp.Regexp
	disc        *Discoverer
	sink        *Sink
	logger      *slog.Logger
	interval    time.Duration
	delay       time.Duration
}

// New returns a Watcher over roots. namePattern is matched against file base
// names during discovery, linePattern against the content of appended lines.
func New(roots []string, namePattern, linePattern *regexp.Regexp, opts Options) *Watcher {
	if opts.FS == nil {
		opts.FS = defaultFS
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	sink := NewSink(opts.Out, opts.Err)
	return &Watcher{
		linePattern: linePattern,
		disc:        NewDiscoverer(opts.FS, roots, namePattern, opts.FromEnd, sink, opts.Logger),
		sink:        sink,
		logger:      opts.Logger,
		interval:    opts.Interval,
		delay:       opts.RetryDelay,
	}
}

// Run drives the discovery loop on the calling goroutine until ctx is
// cancelled. Every discovered file gets one follower goroutine that runs for
// the rest of the process lifetime; followers are never joined and their
// number only grows. On cancellation Run returns without draining them.
func (w *Watcher) Run(ctx context.Context) {
	for tf := range Poll(ctx, w.interval, w.disc.Discover) {
		w.sink.Notice(fmt.Sprintf("observing %s", tf.path))
		w.logger.Debug("starting follower", "path", tf.path)
		go w.follow(ctx, tf)
	}
}

func (w *Watcher) follow(ctx context.Context, tf *TailedFile) {
	lines := newFollower(tf.file, w.delay).Lines(ctx)
	for line := range FilterLines(w.linePattern, lines) {
		w.sink.Emit(tf.path, line)
	}
}
