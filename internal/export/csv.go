package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"workshop-service/internal/model"
)

var csvHeader = []string{
	"id", "entry_date", "plate", "model", "owner",
	"operation_type", "status", "work_hours", "estimated_cost",
}

// CSV renders the flat row-per-order export for spreadsheet consumption.
func CSV(orders []model.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.EntryDate.Format(time.RFC3339),
			o.Motorcycle.Plate,
			o.Motorcycle.Model,
			o.Owner.Name,
			string(o.OperationType),
			string(o.Status),
			strconv.FormatFloat(o.WorkHours, 'f', -1, 64),
			strconv.FormatFloat(o.EstimatedCost, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for order %s: %w", o.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func CSVFilename() string {
	return fmt.Sprintf("BELMOTOS_Ordenes_%s.csv", time.Now().Format("2006-01-02"))
}
