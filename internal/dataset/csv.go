package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads a dataset from CSV.
//
// CSV Format:
//
//	x1,x2,y
//	0,0,0
//	0,1,1
//
// The first row is a header and is skipped. Each remaining row holds
// inputWidth input values followed by at least one expected output value;
// every row must have the same number of columns.
func LoadCSV(r io.Reader, inputWidth int) (Dataset, error) {
	if inputWidth <= 0 {
		return nil, errors.Errorf("input width must be positive, got %d", inputWidth)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) < 2 {
		return nil, errors.Wrap(ErrEmptyDataset, "CSV has no rows after the header")
	}

	header := records[0]
	if len(header) <= inputWidth {
		return nil, errors.Errorf("CSV has %d columns, need %d inputs plus at least one output", len(header), inputWidth)
	}

	d := make(Dataset, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		values := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %d", line, j+1)
			}
			values[j] = v
		}
		d = append(d, Example{
			Input:    values[:inputWidth:inputWidth],
			Expected: values[inputWidth:],
		})
	}

	return d, nil
}

// LoadCSVFile reads a dataset from a CSV file. See LoadCSV.
func LoadCSVFile(path string, inputWidth int) (Dataset, error) {
	//nolint:gosec // G304: dataset path comes from the user on purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer f.Close()

	d, err := LoadCSV(f, inputWidth)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}
