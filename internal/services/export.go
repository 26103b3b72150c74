package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ly2xxx/gco/internal/models"
)

// exportHeader matches the source sheet column order, so a downloaded file
// can be re-imported without edits.
var exportHeader = []string{
	"Player", "Tournament", "Game", "Net_Score",
	"Birdies", "Pars", "Bogeys", "Double_Bogeys",
}

// ExportCSV renders records as CSV in the sheet's own column layout.
func ExportCSV(records []models.ScoreRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Player,
			r.Tournament,
			r.Game,
			strconv.Itoa(r.NetScore),
			strconv.Itoa(r.Birdies),
			strconv.Itoa(r.Pars),
			strconv.Itoa(r.Bogeys),
			strconv.Itoa(r.DoubleBogeys),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders records as a single-sheet workbook with the same
// columns as the CSV export.
func ExportXLSX(records []models.ScoreRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	writeRow := func(rowIdx int, cells []interface{}) error {
		axis, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, axis, &cells)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := writeRow(1, header); err != nil {
		return nil, fmt.Errorf("failed to write XLSX header: %w", err)
	}

	for i, r := range records {
		cells := []interface{}{
			r.Player, r.Tournament, r.Game, r.NetScore,
			r.Birdies, r.Pars, r.Bogeys, r.DoubleBogeys,
		}
		if err := writeRow(i+2, cells); err != nil {
			return nil, fmt.Errorf("failed to write XLSX row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
