//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// Table is a Provider backed by a procfs mount.
type Table struct {
	root string
	fs   procfs.FS
}

// NewTable returns a Provider over the default /proc mount.
func NewTable() (*Table, error) {
	return NewTableAt(procfs.DefaultMountPoint)
}

// NewTableAt returns a Provider over an alternate procfs mount. Tests use
// this to point at a synthetic tree.
func NewTableAt(root string) (*Table, error) {
	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, fmt.Errorf("opening proc mount %s: %w", root, err)
	}
	return &Table{root: root, fs: fs}, nil
}

// ListPIDs enumerates every numeric entry in the proc mount.
func (t *Table) ListPIDs() ([]int, error) {
	procs, err := t.fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	pids := make([]int, 0, len(procs))
	for _, p := range procs {
		pids = append(pids, p.PID)
	}
	return pids, nil
}

// Owner stats the pid's directory entry and returns its owning uid.
func (t *Table) Owner(pid int) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(t.path(pid), &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: t.path(pid), Err: err}
	}
	return st.Uid, nil
}

// Command reads the raw argument vector from the pid's cmdline entry.
func (t *Table) Command(pid int) ([]byte, error) {
	return os.ReadFile(filepath.Join(t.path(pid), "cmdline"))
}

// FDTargets resolves the symlink target of each open descriptor. Reading
// another user's fd table is what fails with EACCES under unprivileged
// invocation.
func (t *Table) FDTargets(pid int) ([]string, error) {
	p, err := t.fs.Proc(pid)
	if err != nil {
		return nil, err
	}
	return p.FileDescriptorTargets()
}

func (t *Table) path(pid int) string {
	return filepath.Join(t.root, strconv.Itoa(pid))
}
