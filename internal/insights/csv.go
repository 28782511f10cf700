package insights

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteSummaryCSV(path string, rows []SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"channel",
		"region",
		"orders",
		"revenue",
		"profit",
		"aov",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.Channel,
			r.Region,
			strconv.Itoa(r.Orders),
			fmtFloat(r.Revenue),
			fmtFloat(r.Profit),
			fmtFloat(r.AOV),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
