package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/sipcalc/investment-calculator/internal/domain"
)

// CSVMonthlyExporter exports the full-precision monthly time series (one row
// per simulated month), the feed a charting surface consumes.
type CSVMonthlyExporter struct{}

func (c CSVMonthlyExporter) Name() string { return "csv" }

func (c CSVMonthlyExporter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"MonthIndex", "Year", "Invested", "Value", "RealValue", "Installment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range result.MonthlyData {
		row := []string{
			strconv.Itoa(m.MonthIndex),
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Invested, 'f', 2, 64),
			strconv.FormatFloat(m.Value, 'f', 2, 64),
			strconv.FormatFloat(m.RealValue, 'f', 2, 64),
			strconv.FormatFloat(m.Installment, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
