package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// nanValues are the cells read back as missing. Missing cells are written empty.
var nanValues = []string{"", "NA", "NaN", "<nil>"}

func writeFrame(path string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeRecords(f, frameRecords(df)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeRecords is csv.Writer.WriteAll, except that a record holding one
// empty field is written as `""`. A bare empty line would be skipped on read.
func writeRecords(out io.Writer, records [][]string) error {
	w := csv.NewWriter(out)
	for _, rec := range records {
		if len(rec) == 1 && rec[0] == "" {
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(out, "\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// frameRecords renders df as a header row plus one record per row.
// gota's own Records truncates floats to six decimals, so cells are
// formatted here.
func frameRecords(df dataframe.DataFrame) [][]string {
	names := df.Names()
	nrow := df.Nrow()

	records := make([][]string, nrow+1)
	records[0] = names
	for i := 1; i <= nrow; i++ {
		records[i] = make([]string, len(names))
	}

	for j, name := range names {
		col := df.Col(name)
		for i := 0; i < nrow; i++ {
			records[i+1][j] = formatCell(col.Type(), col.Elem(i))
		}
	}
	return records
}

func formatCell(t series.Type, e series.Element) string {
	if e.IsNA() {
		return ""
	}
	if t == series.Float {
		return formatFloat(e.Float())
	}
	return e.String()
}

// formatFloat writes the shortest exact representation. Integral values
// keep a ".0" so the column is read back as float.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIn") {
		s += ".0"
	}
	return s
}

// readFrame parses a stored file, inferring int, float, bool or string per column.
// A header without rows yields an empty frame with those columns.
func readFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, io.ErrUnexpectedEOF
	}
	if len(records) == 1 {
		return emptyFrame(records[0]), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	return df, nil
}

func emptyFrame(header []string) dataframe.DataFrame {
	cols := make([]series.Series, len(header))
	for i, name := range header {
		cols[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(cols...)
}
