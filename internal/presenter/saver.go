package presenter

import (
	"encoding/csv"
	"os"
	"strconv"
)

func SaveGapsToCSV(filename string, gaps []float64) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"risk_gap"}); err != nil {
		return err
	}

	// Write each gap to the CSV file
	for _, g := range gaps {
		if err := writer.Write([]string{strconv.FormatFloat(g, 'f', -1, 64)}); err != nil {
			return err
		}
	}

	return nil
}
