package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the second-resolution suffix embedded in file names.
// Its fixed width makes lexical order match chronological order.
const TimestampLayout = "20060102_150405"

// Ext is the extension of stored files.
const Ext = ".csv"

// ErrInvalidName is returned for dataset names that cannot be used as a
// file name fragment.
var ErrInvalidName = errors.New("invalid dataset name")

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// FileName returns the stored file name for name at t.
func FileName(name string, t time.Time) string {
	return name + "_" + t.Format(TimestampLayout) + Ext
}

// matcher decides which files in a directory belong to a dataset.
type matcher interface {
	match(file string) bool
}

// exactMatcher accepts only {name}_YYYYMMDD_HHMMSS.csv.
type exactMatcher struct {
	re *regexp.Regexp
}

func newExactMatcher(name string) exactMatcher {
	return exactMatcher{re: regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `_\d{8}_\d{6}` + regexp.QuoteMeta(Ext) + `$`)}
}

func (m exactMatcher) match(file string) bool {
	return m.re.MatchString(file)
}

// prefixMatcher accepts any .csv file starting with name. A dataset "a"
// also picks up files written for "abc".
type prefixMatcher struct {
	name string
}

func (m prefixMatcher) match(file string) bool {
	return strings.HasPrefix(file, m.name) && strings.HasSuffix(file, Ext)
}

// parseTimestamp extracts the timestamp suffix from a stored file name.
// It returns false when the name does not end in one.
func parseTimestamp(file string, loc *time.Location) (time.Time, bool) {
	base := strings.TrimSuffix(file, Ext)
	if len(base) < len(TimestampLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(TimestampLayout, base[len(base)-len(TimestampLayout):], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
