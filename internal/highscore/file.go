// Package highscore keeps high scores in a flat text file, one
// "name, score" record per line.
package highscore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/core"
)

// MaxEntries is the number of records kept on save.
const MaxEntries = 50

// File is a core.ScoreBook backed by a text file. Records are cached after
// the first read.
type File struct {
	path   string
	logger *log.Logger

	mu     sync.Mutex
	cache  []core.ScoreRecord
	loaded bool
}

// Open returns a store for path, expanding a leading ~. The file is created
// on first save.
func Open(path string, logger *log.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("highscore: empty path")
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &File{path: path, logger: logger}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// maxLine bounds a record line. Longer lines are skipped as malformed.
const maxLine = 4096

// Parse reads records from r, best first. Malformed lines are skipped. On a
// read error the records read so far are returned with the error.
func Parse(r io.Reader) ([]core.ScoreRecord, error) {
	var records []core.ScoreRecord
	br := bufio.NewReaderSize(r, maxLine)
	for {
		line, isPrefix, err := br.ReadLine()
		for isPrefix && err == nil {
			line = nil
			_, isPrefix, err = br.ReadLine()
		}
		if err != nil {
			sortRecords(records)
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("highscore: read failed: %w", err)
		}
		if rec, ok := parseLine(string(line)); ok {
			records = append(records, rec)
		}
	}
}

// parseLine splits a "name, score" line at its first comma.
func parseLine(line string) (core.ScoreRecord, bool) {
	name, score, ok := strings.Cut(line, ",")
	if !ok {
		return core.ScoreRecord{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return core.ScoreRecord{}, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(score), 10, 32)
	if err != nil {
		return core.ScoreRecord{}, false
	}
	return core.ScoreRecord{Name: name, Score: uint32(n)}, true
}

func sortRecords(records []core.ScoreRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
}

// Format writes records in file format.
func Format(w io.Writer, records []core.ScoreRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s, %d\n", r.Name, r.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load returns every stored record, best first. A missing file is an empty
// list.
func (f *File) Load() ([]core.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]core.ScoreRecord, len(f.cache))
	copy(out, f.cache)
	return out, nil
}

func (f *File) ensureLoaded() error {
	if f.loaded {
		return nil
	}
	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f.cache = nil
	case err != nil:
		return fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	default:
		records, err := Parse(bytes.NewReader(data))
		if err != nil {
			f.logger.Warn("score file partly read", "path", f.path, "kept", len(records), "error", err)
		}
		f.cache = records
	}
	f.loaded = true
	return nil
}

// Add inserts a record, keeps the best MaxEntries and rewrites the file.
func (f *File) Add(name string, score uint32) error {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\n", " "))
	if name == "" {
		return errors.New("highscore: empty name")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureLoaded(); err != nil {
		return err
	}
	records := make([]core.ScoreRecord, 0, len(f.cache)+1)
	records = append(records, f.cache...)
	records = append(records, core.ScoreRecord{Name: name, Score: score})
	sortRecords(records)
	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}

	var buf bytes.Buffer
	if err := Format(&buf, records); err != nil {
		return fmt.Errorf("highscore: format failed: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil { //#nosec G306 -- score list is not secret
		return fmt.Errorf("highscore: cannot write %s: %w", f.path, err)
	}

	f.cache = records
	return nil
}

// SaveScore implements core.ScoreBook. Failures are logged.
func (f *File) SaveScore(name string, score uint32) {
	if err := f.Add(name, score); err != nil {
		f.logger.Warn("score not saved", "path", f.path, "player", name, "score", score, "error", err)
		return
	}
	f.logger.Info("score saved", "path", f.path, "player", name, "score", score)
}

// TopScores implements core.ScoreBook.
func (f *File) TopScores(n int) []core.ScoreRecord {
	records, err := f.Load()
	if err != nil {
		f.logger.Warn("cannot load scores", "path", f.path, "error", err)
		return nil
	}
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records
}

var _ core.ScoreBook = (*File)(nil)
