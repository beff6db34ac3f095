// Package pid guards against two continuous monitoring sessions
// polling the same controller. BMC HTTP stacks are slow and easily
// saturated, so concurrent pollers degrade both sessions.
package pid

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

// File is an acquired pid file, released with Release.
type File struct {
	path string
}

func pathFor(host string) string {
	name := fmt.Sprintf("tyrone-redfish-%s.pid", strings.ReplaceAll(host, ":", "_"))
	return filepath.Join(os.TempDir(), name)
}

// Acquire writes a pid file for the given host. A stale file left by a
// dead process is replaced; a file owned by a live process fails with
// ErrAlreadyRunning.
func Acquire(host string) (*File, error) {
	path := pathFor(host)

	if raw, err := os.ReadFile(path); err == nil {
		if pid, perr := strconv.Atoi(strings.TrimSpace(string(raw))); perr == nil && processAlive(pid) {
			return nil, errors.New().WithData(errors.ErrAlreadyRunning, struct {
				Host string
				PID  int
			}{
				Host: host,
				PID:  pid,
			})
		}
		logger.Debug().Str("path", path).Msg("Removing stale pid file")
		os.Remove(path)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, errors.New().Wrap(errors.ErrInternal, err).WithData(path)
	}

	return &File{path: path}, nil
}

// Release removes the pid file.
func (f *File) Release() {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		logger.Warn().Str("path", f.path).Err(err).Msg("Pid file removal failed")
	}
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return proc.Signal(syscall.Signal(0)) == nil
}
