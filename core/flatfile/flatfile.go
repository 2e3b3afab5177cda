package flatfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table reads and writes delimited row tables inside a processing folder.
// Row slices are positional; callers interpret columns by index.
type Table interface {
	// ReadAll returns every non-blank line of the named file split into
	// fields. The first row is by convention a header row.
	ReadAll(name string) ([][]string, error)

	// WriteAll replaces the named file with a header row followed by one
	// row per record.
	WriteAll(name string, header []string, rows [][]string) error
}

// Sink receives one diagnostic line per rejected row or fatal condition.
type Sink interface {
	Log(message string)
}

// Dir is a Table over a processing folder on the local filesystem.
type Dir struct {
	root      string
	delimiter rune
}

// NewDir creates a Dir rooted at the given processing folder.
func NewDir(root string, cfg Config) *Dir {
	return &Dir{
		root:      root,
		delimiter: cfg.DelimiterRune(),
	}
}

// ReadAll reads the named delimited file. Blank lines are skipped and rows
// may have varying field counts; validation of row shape is the caller's
// concern. A missing or unreadable file is a structural error.
func (d *Dir) ReadAll(name string) ([][]string, error) {
	path := filepath.Join(d.root, name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = d.delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return rows, nil
}

// WriteAll writes the named file fresh: header first, then one line per
// row. There is no partial-write protection; a crash mid-write can leave a
// truncated file, which is acceptable for a re-runnable batch tool.
func (d *Dir) WriteAll(name string, header []string, rows [][]string) error {
	path := filepath.Join(d.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output folder for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = d.delimiter

	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file %s: %w", path, err)
	}

	return nil
}
