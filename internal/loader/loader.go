package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/model"
	"github.com/Kalmar41k/goit-algo-hw-05/internal/parser"
)

// Loader reads a log file and parses every line into a Record.
// Load failures are reported on the diagnostic writer instead of being
// returned: callers get an empty slice and cannot distinguish a failed
// load from an empty file.
type Loader struct {
	diag io.Writer
}

// New returns a Loader that writes diagnostics to stdout.
func New() *Loader {
	return &Loader{diag: os.Stdout}
}

// NewWithWriter returns a Loader that writes diagnostics to w.
func NewWithWriter(w io.Writer) *Loader {
	return &Loader{diag: w}
}

// Load reads the file at path and returns its parsed records in file order.
//
// A missing or non-regular path prints a not-found diagnostic and yields an
// empty slice. Any other failure, including a single malformed line, prints
// a generic diagnostic and discards the whole file's records.
func (l *Loader) Load(path string) []model.Record {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		fmt.Fprintf(l.diag, "The file %s does not exist or is not a file.\n", path)
		return nil
	}

	records, err := l.readAll(path)
	if err != nil {
		fmt.Fprintf(l.diag, "An unexpected error occurred: %v\n", err)
		return nil
	}
	return records
}

func (l *Loader) readAll(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []model.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rec, err := parser.ParseLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
