// Package adapter contains infrastructure adapters for the stdinfuzz CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// ErrTargetNotFound is returned when the command's program cannot be found.
var ErrTargetNotFound = errors.New("target not found")

// WorkspaceAdapter hides the file system checks made before a run starts so
// the workflow can be tested without touching the disk.
type WorkspaceAdapter interface {
	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ResolveTarget checks that dir is a directory and that the program named
	// by the first word of command exists relative to dir or on PATH.
	ResolveTarget(dir m.Path, command string) (m.Target, error)

	// ReadSeed loads a seed from a file. The content is used verbatim.
	ReadSeed(path m.Path) (string, error)
}

// LocalWorkspaceAdapter is the os-backed WorkspaceAdapter.
type LocalWorkspaceAdapter struct {
	lookPath func(file string) (string, error)
}

// NewLocalWorkspaceAdapter constructs a LocalWorkspaceAdapter.
func NewLocalWorkspaceAdapter() *LocalWorkspaceAdapter {
	return &LocalWorkspaceAdapter{lookPath: exec.LookPath}
}

// FileInfo implements WorkspaceAdapter.
func (a *LocalWorkspaceAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ResolveTarget implements WorkspaceAdapter.
func (a *LocalWorkspaceAdapter) ResolveTarget(dir m.Path, command string) (m.Target, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return m.Target{}, fmt.Errorf("%w: empty command", ErrTargetNotFound)
	}

	if dir == "" {
		dir = "."
	}

	info, err := a.FileInfo(dir)
	if err != nil {
		return m.Target{}, fmt.Errorf("working directory error: %w", err)
	}

	if !info.IsDir() {
		return m.Target{}, fmt.Errorf("working directory %s is not a directory", dir)
	}

	program := programOf(command)

	if strings.ContainsRune(program, '/') || strings.ContainsRune(program, filepath.Separator) {
		path := program
		if !filepath.IsAbs(path) {
			path = filepath.Join(string(dir), path)
		}

		if _, err := a.FileInfo(m.Path(path)); err != nil {
			return m.Target{}, fmt.Errorf("%w: could not find command %q in %s", ErrTargetNotFound, program, dir)
		}

		return m.Target{Command: command, Dir: dir}, nil
	}

	if _, err := a.FileInfo(m.Path(filepath.Join(string(dir), program))); err == nil {
		return m.Target{Command: command, Dir: dir}, nil
	}

	if _, err := a.lookPath(program); err != nil {
		return m.Target{}, fmt.Errorf("%w: could not find command %q", ErrTargetNotFound, program)
	}

	return m.Target{Command: command, Dir: dir}, nil
}

// ReadSeed implements WorkspaceAdapter.
func (a *LocalWorkspaceAdapter) ReadSeed(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to read seed %s: %w", path, err)
	}

	return string(data), nil
}

// programOf returns the first word of a shell command line, honouring a
// leading single or double quoted word.
func programOf(command string) string {
	if command == "" {
		return ""
	}

	if quote := command[0]; quote == '"' || quote == '\'' {
		if end := strings.IndexByte(command[1:], quote); end >= 0 {
			return command[1 : end+1]
		}
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
