package proc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestIsGone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ENOENT in a path error", &os.PathError{Op: "stat", Path: "/proc/1", Err: unix.ENOENT}, true},
		{"ESRCH", unix.ESRCH, true},
		{"wrapped fs.ErrNotExist", fmt.Errorf("listing: %w", fs.ErrNotExist), true},
		{"permission error", unix.EACCES, false},
		{"unrelated error", errors.New("short read"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGone(tt.err))
		})
	}
}

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"EACCES in a path error", &os.PathError{Op: "open", Path: "/proc/1/fd", Err: unix.EACCES}, true},
		{"EPERM", unix.EPERM, true},
		{"wrapped fs.ErrPermission", fmt.Errorf("reading: %w", fs.ErrPermission), true},
		{"ENOENT", unix.ENOENT, false},
		{"unrelated error", errors.New("short read"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPermissionDenied(tt.err))
		})
	}
}
