// Package inotify derives per-process inotify usage facts from the process
// table.
package inotify

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/inotify-instances/pkg/proc"
)

// inotifyTarget is the symlink target the kernel reports for a descriptor
// that refers to an inotify instance rather than a file.
const inotifyTarget = "anon_inode:inotify"

// zombieCommand stands in for processes with an empty argument vector.
const zombieCommand = "<zombie>"

// Fact describes one process's inotify usage at the instant it was
// inspected.
type Fact struct {
	PID       int
	UID       uint32
	Command   string
	Instances int
}

// Collector scans the process table and derives one Fact per inspectable
// process.
type Collector struct {
	table  proc.Provider
	logger *logrus.Logger
}

// New creates a collector over the given process-table provider.
func New(table proc.Provider, logger *logrus.Logger) *Collector {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Collector{table: table, logger: logger}
}

// Scan derives a Fact for every process that exists, is inspectable under
// the caller's privilege, and does not exit mid-inspection. Processes that
// vanish or that the caller may not inspect are routine churn and are
// skipped; any other failure aborts the scan.
func (c *Collector) Scan() ([]Fact, error) {
	pids, err := c.table.ListPIDs()
	if err != nil {
		return nil, err
	}

	facts := make([]Fact, 0, len(pids))
	for _, pid := range pids {
		fact, err := c.collect(pid)
		if err != nil {
			if proc.IsGone(err) || proc.IsPermissionDenied(err) {
				c.logger.WithFields(logrus.Fields{
					"pid":   pid,
					"error": err,
				}).Debug("Skipping process")
				continue
			}
			return nil, fmt.Errorf("inspecting pid %d: %w", pid, err)
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

// collect derives the owner, command name, and inotify-instance count for
// one candidate pid.
func (c *Collector) collect(pid int) (Fact, error) {
	uid, err := c.table.Owner(pid)
	if err != nil {
		return Fact{}, err
	}

	argv, err := c.table.Command(pid)
	if err != nil {
		return Fact{}, err
	}

	targets, err := c.table.FDTargets(pid)
	if err != nil {
		return Fact{}, err
	}

	instances := 0
	for _, target := range targets {
		if target == inotifyTarget {
			instances++
		}
	}

	return Fact{
		PID:       pid,
		UID:       uid,
		Command:   commandName(argv),
		Instances: instances,
	}, nil
}

// WithInstances returns the facts holding at least one inotify instance.
func WithInstances(facts []Fact) []Fact {
	active := make([]Fact, 0, len(facts))
	for _, f := range facts {
		if f.Instances > 0 {
			active = append(active, f)
		}
	}
	return active
}

// commandName derives a display name from a raw argument vector: the
// basename of the first NUL-terminated component, or the whole buffer when
// no NUL is present. An empty vector means a zombie.
func commandName(argv []byte) string {
	if len(argv) == 0 {
		return zombieCommand
	}
	if i := bytes.IndexByte(argv, 0); i >= 0 {
		argv = argv[:i]
	}

	name := filepath.Base(string(argv))
	if !utf8.ValidString(name) {
		// Escape rather than drop invalid bytes; the output must always
		// carry some printable representation.
		quoted := strconv.Quote(name)
		name = quoted[1 : len(quoted)-1]
	}
	return name
}
