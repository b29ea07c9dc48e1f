package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// DefaultDir is used when New is given an empty directory.
const DefaultDir = "output_data"

// Store reads and writes dataset versions in a single directory.
type Store struct {
	dir         string
	logger      *slog.Logger
	now         func() time.Time
	prefixMatch bool
}

// Option configures a Store.
type Option func(*Store)

// New creates a Store rooted at dir. The directory is created on first Save.
func New(dir string, opts ...Option) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	s := &Store{
		dir:    dir,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock sets the time source used to stamp saved files.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithPrefixMatch makes lookups accept any .csv file whose name starts with
// the dataset name, as older tooling did. Use it only for directories where
// no dataset name is a prefix of another.
func WithPrefixMatch() Option {
	return func(s *Store) {
		s.prefixMatch = true
	}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes each dataframe to {dir}/{name}_{timestamp}.csv with a header
// row and no index column. All files in one call share a timestamp.
//
// Datasets are written in name order. A failure stops the batch and is
// returned unchanged; files already written are left in place.
func (s *Store) Save(datasets map[string]dataframe.DataFrame) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	ts := s.now()

	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := validateName(name); err != nil {
			return err
		}
		path := filepath.Join(s.dir, FileName(name, ts))
		if err := writeFrame(path, datasets[name]); err != nil {
			return err
		}
		s.logger.Info("saved dataset", "name", name, "path", path)
	}

	return nil
}

// Load returns the newest stored version of each name. Names without any
// stored file are logged and left out of the result.
func (s *Store) Load(names []string) (map[string]dataframe.DataFrame, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]dataframe.DataFrame, len(names))
	for _, name := range names {
		if err := validateName(name); err != nil {
			return nil, err
		}

		files := s.matching(name, entries)
		if len(files) == 0 {
			s.logger.Info("dataset not found", "name", name, "dir", s.dir)
			continue
		}

		path := filepath.Join(s.dir, files[0])
		df, err := readFrame(path)
		if err != nil {
			return nil, err
		}
		loaded[name] = df
		s.logger.Info("loaded dataset", "name", name, "path", path)
	}

	return loaded, nil
}

// Latest loads the newest version of a single dataset. The bool result is
// false when no version exists.
func (s *Store) Latest(name string) (dataframe.DataFrame, bool, error) {
	loaded, err := s.Load([]string{name})
	if err != nil {
		return dataframe.DataFrame{}, false, err
	}
	df, ok := loaded[name]
	return df, ok, nil
}

// Version is one stored file of a dataset.
type Version struct {
	Name string
	Path string
	// Timestamp is zero when the file name carries no parsable suffix,
	// which only happens under WithPrefixMatch.
	Timestamp time.Time
}

// Versions lists the stored versions of name, newest first.
func (s *Store) Versions(name string) ([]Version, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	files := s.matching(name, entries)
	versions := make([]Version, 0, len(files))
	for _, f := range files {
		ts, _ := parseTimestamp(f, time.Local)
		versions = append(versions, Version{
			Name:      name,
			Path:      filepath.Join(s.dir, f),
			Timestamp: ts,
		})
	}
	return versions, nil
}

// matching returns the regular files for name in descending lexical order.
func (s *Store) matching(name string, entries []os.DirEntry) []string {
	var m matcher = newExactMatcher(name)
	if s.prefixMatch {
		m = prefixMatcher{name: name}
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !m.match(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files
}
