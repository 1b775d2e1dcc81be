package movie

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

type csvColumns struct {
	title, genre, year, director int
}

// ReadCSV loads a collection from CSV with a title,genre,year,director header
// in any column order. Rows that are too short or carry a non-numeric year are
// skipped.
func ReadCSV(r io.Reader) ([]Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	cols, err := parseCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	movies := make([]Movie, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		m, ok := parseCSVRecord(record, cols)
		if !ok {
			continue
		}
		movies = append(movies, m)
	}

	return movies, nil
}

func parseCSVHeader(reader *csv.Reader) (csvColumns, error) {
	header, err := reader.Read()
	if err != nil {
		return csvColumns{}, err
	}

	cols := csvColumns{title: -1, genre: -1, year: -1, director: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			cols.title = i
		case "genre":
			cols.genre = i
		case "year":
			cols.year = i
		case "director":
			cols.director = i
		}
	}
	if cols.title == -1 || cols.genre == -1 || cols.year == -1 || cols.director == -1 {
		return csvColumns{}, errors.New("missing required columns in csv header")
	}

	return cols, nil
}

func parseCSVRecord(record []string, cols csvColumns) (Movie, bool) {
	for _, idx := range []int{cols.title, cols.genre, cols.year, cols.director} {
		if idx >= len(record) {
			return Movie{}, false
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(record[cols.year]))
	if err != nil {
		return Movie{}, false
	}

	return Movie{
		Title:    strings.TrimSpace(record[cols.title]),
		Genre:    strings.TrimSpace(record[cols.genre]),
		Year:     year,
		Director: strings.TrimSpace(record[cols.director]),
	}, true
}
