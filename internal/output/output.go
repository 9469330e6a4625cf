// SPDX-License-Identifier: EPL-2.0

// Package output writes result files so that a failed run never leaves a
// partial file behind.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type pending struct {
	tmp  string
	path string
}

// Files stages several outputs as temp files next to their destinations.
// Nothing appears at a destination path until Commit. The zero value is
// ready to use.
type Files struct {
	staged []pending
}

// Create stages path with a buffered writer.
func (f *Files) Create(path string, write func(w io.Writer) error) error {
	return f.CreateSeek(path, func(ws io.WriteSeeker) error {
		bw := bufio.NewWriter(ws)
		if err := write(bw); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
}

// CreateSeek stages path for encoders that seek back to patch headers,
// such as the go-audio WAV encoder.
func (f *Files) CreateSeek(path string, write func(ws io.WriteSeeker) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	f.staged = append(f.staged, pending{tmp: tmp.Name(), path: path})
	return nil
}

// Commit renames every staged file into place. On a rename error the
// files not yet renamed are removed.
func (f *Files) Commit() error {
	for i, p := range f.staged {
		if err := os.Rename(p.tmp, p.path); err != nil {
			f.staged = f.staged[i:]
			return errors.Join(fmt.Errorf("renaming into %s: %w", p.path, err), f.Discard())
		}
	}
	f.staged = nil
	return nil
}

// Discard removes every staged file. It is a no-op after Commit.
func (f *Files) Discard() error {
	var errs []error
	for _, p := range f.staged {
		if err := os.Remove(p.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	f.staged = nil
	return errors.Join(errs...)
}

// WriteFile writes a single file through a temp file and renames it into
// place only if write and the flush succeed.
func WriteFile(path string, write func(w io.Writer) error) error {
	var f Files
	if err := f.Create(path, write); err != nil {
		return err
	}
	return f.Commit()
}
