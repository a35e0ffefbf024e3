package editor

import (
	"log/slog"
	"os"
)

// Option defines a functional option for configuring the Surface.
type Option func(*Surface)

// WithDir places scratch files in dir instead of the OS temp directory
// (useful for testing resource release).
func WithDir(dir string) Option {
	return func(s *Surface) {
		s.dir = dir
	}
}

// WithLogger sets the logger for the surface.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Surface) {
		s.logger = logger
	}
}

// WithIO redirects the editor's terminal. Defaults to the process's own
// stdin/stdout/stderr, which is what interactive editors need.
func WithIO(stdin, stdout, stderr *os.File) Option {
	return func(s *Surface) {
		s.stdin = stdin
		s.stdout = stdout
		s.stderr = stderr
	}
}
