// Package report writes ledger summaries to their plain-text sink.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/budgetbuddy/internal/ledger"
)

// DefaultFile is where summaries are saved unless configured otherwise.
const DefaultFile = "output.txt"

// Write writes every summary line to w in order, each followed by a newline.
func Write(w io.Writer, s ledger.Summary) error {
	bw := bufio.NewWriter(w)
	for _, line := range s {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save replaces the file at path with the summary. The lines go to a
// temporary file in the same directory which is renamed over path once
// complete, so a failed save leaves any previous file untouched.
func Save(path string, s ledger.Summary) error {
	return save(path, func(w io.Writer) error { return Write(w, s) })
}

func save(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("opening summary file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing summary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing summary file: %w", err)
	}
	return nil
}
