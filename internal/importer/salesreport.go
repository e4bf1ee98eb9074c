package importer

import (
	"encoding/csv"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SalesRow is one decoded line of a marketplace sales report.
type SalesRow struct {
	Index     int
	OrderID   string
	ItemTitle string
	Quantity  int
	SalePrice decimal.Decimal
	Fees      decimal.Decimal
	SoldAt    *time.Time
}

// SalesReport is a decoded sales-report upload: the report's stated date
// range plus every data row in file order.
type SalesReport struct {
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Rows        []SalesRow
}

// Sales-report column names. These files come from one marketplace export
// format, so matching is exact (case-insensitive) rather than fuzzy.
const (
	salesColOrder    = "order number"
	salesColTitle    = "item title"
	salesColQuantity = "quantity"
	salesColPrice    = "sale price"
	salesColFees     = "fees"
	salesColDate     = "sale date"
)

var salesRequiredColumns = []string{salesColOrder, salesColTitle, salesColPrice}

var reportRangePattern = regexp.MustCompile(`(?i)report for\s+(.+?)\s+to\s+(.+?)\s*$`)

var salesDateLayouts = []string{"Jan-02-06", "2006-01-02", "01/02/2006", "Jan 2, 2006"}

// ParseSalesReport decodes a delimited sales report. The format has a fixed
// preamble: free-text disclaimer rows, a "Report for <start> to <end>" line,
// then the header row, recognized by the presence of the order-number
// column. A report missing any required column is rejected whole.
func ParseSalesReport(r io.Reader) (*SalesReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fileErrorf("not a valid delimited file: %v", err)
	}
	if len(records) == 0 {
		return nil, fileErrorf("file is empty")
	}

	report := &SalesReport{}

	headerIdx := -1
	var position map[string]int
	for i, row := range records {
		if start, end, ok := parseReportRange(row); ok {
			report.PeriodStart = start
			report.PeriodEnd = end
			continue
		}
		if pos := salesHeaderPositions(row); pos != nil {
			headerIdx = i
			position = pos
			break
		}
	}
	if headerIdx < 0 {
		return nil, fileErrorf("no header row found; expected a %q column", salesColOrder)
	}
	for _, required := range salesRequiredColumns {
		if _, ok := position[required]; !ok {
			return nil, fileErrorf("missing required column %q", required)
		}
	}

	index := 0
	for _, raw := range records[headerIdx+1:] {
		if isBlankRow(raw) {
			continue
		}
		index++
		row := SalesRow{
			Index:     index,
			OrderID:   strings.TrimSpace(cellFor(raw, position, salesColOrder)),
			ItemTitle: trimmed(cellFor(raw, position, salesColTitle)),
			Quantity:  1,
			SalePrice: parseMoney(cellFor(raw, position, salesColPrice)),
			Fees:      parseMoney(cellFor(raw, position, salesColFees)),
		}
		if q, ok := ExtractSerial(cellFor(raw, position, salesColQuantity)); ok {
			row.Quantity = q
		}
		if t, ok := parseSalesDate(cellFor(raw, position, salesColDate)); ok {
			row.SoldAt = &t
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

func salesHeaderPositions(row []string) map[string]int {
	pos := make(map[string]int)
	for i, cell := range row {
		pos[foldHeader(cell)] = i
	}
	if _, ok := pos[salesColOrder]; !ok {
		return nil
	}
	return pos
}

func cellFor(row []string, position map[string]int, col string) string {
	i, ok := position[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseReportRange(row []string) (start, end *time.Time, ok bool) {
	for _, cell := range row {
		m := reportRangePattern.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		if t, found := parseSalesDate(m[1]); found {
			start = &t
		}
		if t, found := parseSalesDate(m[2]); found {
			end = &t
		}
		return start, end, true
	}
	return nil, nil, false
}

func parseSalesDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range salesDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMoney is total: malformed amounts come back as zero rather than
// failing the row.
func parseMoney(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
