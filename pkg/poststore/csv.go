package poststore

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/abustany/back-blog/pkg/types"
)

// LoadFromCSV loads the contents of a CSV file into a Store, and return the
// number of posts inserted.
//
// The CSV records must have 5 columns: id, title, content, author, date (in
// YYYY-MM-DD format).
func LoadFromCSV(store Store, data io.Reader, hasHeader bool) (uint, error) {
	reader := csv.NewReader(data)

	// Id, title, content, author, date
	reader.FieldsPerRecord = 5
	reader.ReuseRecord = true

	counter := uint(0)

	for {
		record, err := reader.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return counter, errors.Wrap(err, "Error while decoding CSV file")
		}

		counter++

		if hasHeader && counter == 1 {
			hasHeader = false
			counter = 0
			continue
		}

		if _, err := time.Parse(types.DateFormat, record[4]); err != nil {
			return counter, errors.Wrapf(err, "Error while parsing date of record %d", counter)
		}

		post := types.Post{
			ID:      record[0],
			Title:   record[1],
			Content: record[2],
			Author:  record[3],
			Date:    record[4],
		}

		if err := store.Add(post); err != nil {
			return counter, errors.Wrapf(err, "Error while inserting post for record %d", counter)
		}
	}

	return counter, nil
}
