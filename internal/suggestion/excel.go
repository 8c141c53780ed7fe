package suggestion

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/xuri/excelize/v2"
)

// ReadTerms loads search terms from a local xlsx file or an http(s) URL:
// first sheet, column A starting at row 2 (row 1 is the header), trimmed,
// empty cells skipped, order preserved.
func ReadTerms(pathOrURL string) ([]string, error) {
	if pathOrURL == "" {
		return nil, errors.New("no valid file path or URL provided for Excel file")
	}

	var (
		f   *excelize.File
		err error
	)
	if strings.HasPrefix(pathOrURL, "http") {
		resp, rerr := resty.New().R().Get(pathOrURL)
		if rerr != nil {
			return nil, fmt.Errorf("download excel %q: %w", pathOrURL, rerr)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("download excel %q: %s", pathOrURL, resp.Status())
		}
		f, err = excelize.OpenReader(bytes.NewReader(resp.Body()))
	} else {
		f, err = excelize.OpenFile(pathOrURL)
	}
	if err != nil {
		return nil, fmt.Errorf("open excel %q: %w", pathOrURL, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read excel sheet: %w", err)
	}

	terms := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if v := strings.TrimSpace(row[0]); v != "" {
			terms = append(terms, v)
		}
	}
	return terms, nil
}
