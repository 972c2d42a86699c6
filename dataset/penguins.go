package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
)

//go:embed testdata/penguins.csv
var penguinsCSV []byte

// PenguinColumns are the numeric measurement columns of the bundled penguin
// morphometry sample.
var PenguinColumns = []string{
	"bill_length_mm",
	"bill_depth_mm",
	"flipper_length_mm",
	"body_mass_g",
}

// Penguins returns the bundled penguin morphometry sample: 333 complete
// observations of 4 numeric measurements. The species labels are available
// separately via PenguinSpecies.
func Penguins() (*Table, error) {
	return ReadCSV(bytes.NewReader(penguinsCSV), WithColumns(PenguinColumns...))
}

// PenguinSpecies returns the species label of each row of the bundled
// sample, aligned with the rows of Penguins.
func PenguinSpecies() ([]string, error) {
	cr := csv.NewReader(bytes.NewReader(penguinsCSV))

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	col := -1
	for j, h := range header {
		if h == "species" {
			col = j
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("dataset: species column not found")
	}

	var species []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		species = append(species, rec[col])
	}

	return species, nil
}
