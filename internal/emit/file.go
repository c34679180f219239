package emit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// ErrStale is returned by Check when the file on disk does not match.
var ErrStale = errors.New("generated table is stale")

// WriteFile replaces path with data. The bytes go to a temporary file in the
// same directory first, so readers never observe a partial table.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Check compares the file at path with data. A missing or different file
// yields an error wrapping ErrStale; the message lists every differing line.
func Check(path string, data []byte) error {
	current, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrStale, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.Equal(current, data) {
		return nil
	}
	var r lineReporter
	cmp.Equal(splitLines(current), splitLines(data), cmp.Reporter(&r))
	return fmt.Errorf("%w: %s differs from regenerated output (-on disk +generated):\n%s", ErrStale, path, r.String())
}

func splitLines(b []byte) []string {
	return strings.Split(string(b), "\n")
}

// lineReporter collects unequal lines whole, one entry per line number.
type lineReporter struct {
	path cmp.Path
	out  strings.Builder
}

func (r *lineReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *lineReporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}
	idx, ok := r.path.Last().(cmp.SliceIndex)
	if !ok {
		return
	}
	ix, iy := idx.SplitKeys()
	vx, vy := idx.Values()
	switch {
	case vx.IsValid() && vy.IsValid():
		fmt.Fprintf(&r.out, "line %d:\n- %s\n+ %s\n", ix+1, vx.String(), vy.String())
	case vx.IsValid():
		fmt.Fprintf(&r.out, "line %d:\n- %s\n", ix+1, vx.String())
	case vy.IsValid():
		fmt.Fprintf(&r.out, "line %d:\n+ %s\n", iy+1, vy.String())
	}
}

func (r *lineReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *lineReporter) String() string {
	return r.out.String()
}
