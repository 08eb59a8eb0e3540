package sheet_client

import (
	"context"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type SheetClient struct {
}

func NewSheetClient() *SheetClient {
	return &SheetClient{}
}

// GetRows downloads a csv document and returns its rows keyed by the header
// row. Short rows are padded with empty values.
func (sc *SheetClient) GetRows(ctx context.Context, URL string) (rows []map[string]string, err error) {

	client := http.Client{
		Timeout: time.Second * 5,
	}

	req, err := http.NewRequest("GET", URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get sheet failed with status code: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "GetRows")
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
				continue
			}
			row[name] = ""
		}
		rows = append(rows, row)
	}

	return
}
