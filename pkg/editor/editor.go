// Package editor runs an external text editor against a scoped scratch
// file: seed the file, block until the editor exits, read the result back,
// and always delete the file.
package editor

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// DefaultProgram is used when no editor is configured and $EDITOR is unset.
const DefaultProgram = "nano"

// Surface launches an external editor on temporary buffers.
type Surface struct {
	program string
	dir     string
	logger  *slog.Logger
	stdin   *os.File
	stdout  *os.File
	stderr  *os.File
}

// New creates a Surface for the given editor program. An empty program
// falls back to $EDITOR, then to nano.
func New(program string, opts ...Option) *Surface {
	if program == "" {
		program = os.Getenv("EDITOR")
	}
	if program == "" {
		program = DefaultProgram
	}
	s := &Surface{
		program: program,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Edit writes initial to a fresh scratch file with the given extension
// (e.g. ".md"), runs the editor on it, and returns the file's final
// contents. The scratch file is removed on every exit path, including
// editor launch and read-back failures.
func (s *Surface) Edit(initial, ext string) (final string, err error) {
	f, err := os.CreateTemp(s.dir, "well-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := f.Name()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove scratch file: %w", rmErr)
		}
	}()

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to seed scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close scratch file: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("launching editor", "program", s.program, "path", path)
	}

	stopWatch := s.watchSaves(path)
	cmd := exec.Command(s.program, path)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	runErr := cmd.Run()
	stopWatch()
	if runErr != nil {
		return "", fmt.Errorf("editor %s failed: %w", s.program, runErr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file back: %w", err)
	}
	return string(data), nil
}
