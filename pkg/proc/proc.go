// Package proc abstracts the kernel's live process-table view.
package proc

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// Provider exposes the process-table primitives needed to derive per-process
// facts. The table is live: any per-pid call can fail because the process
// exited between enumeration and inspection.
type Provider interface {
	// ListPIDs enumerates all currently visible process IDs.
	ListPIDs() ([]int, error)

	// Owner returns the uid owning the process's metadata entry.
	Owner(pid int) (uint32, error)

	// Command returns the raw argument vector: NUL-terminated byte strings
	// concatenated together. Zombies and kernel threads yield zero bytes.
	Command(pid int) ([]byte, error)

	// FDTargets resolves the symlink target of every open file descriptor.
	// A descriptor closed between listing and resolution comes back as an
	// empty string rather than an error.
	FDTargets(pid int) ([]string, error)
}

// IsGone reports whether err means the process exited between being listed
// and being inspected.
func IsGone(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ESRCH)
}

// IsPermissionDenied reports whether err means the caller lacks the rights
// to inspect the process.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, unix.EACCES) ||
		errors.Is(err, unix.EPERM)
}
