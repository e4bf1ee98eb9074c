package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleSalesReport = `Seller report generated by the marketplace
Report for Jan-01-24 to Jan-31-24
Order Number,Item Title,Quantity,Sale Price,Fees,Sale Date
123-456,2023 Topps Mike Trout #27 Angels,1,"$1,234.56",$6.50,Jan-15-24
789-012,2023 Topps Aaron Judge #99 Gold,2,$45.00,,Jan-20-24
`

func TestParseSalesReport(t *testing.T) {
	report, err := ParseSalesReport(strings.NewReader(sampleSalesReport))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.PeriodStart == nil || report.PeriodEnd == nil {
		t.Fatal("Expected the report period to be parsed")
	}
	if report.PeriodStart.Month() != 1 || report.PeriodStart.Day() != 1 || report.PeriodStart.Year() != 2024 {
		t.Errorf("Unexpected period start: %v", report.PeriodStart)
	}
	if report.PeriodEnd.Day() != 31 {
		t.Errorf("Unexpected period end: %v", report.PeriodEnd)
	}

	if len(report.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(report.Rows))
	}

	first := report.Rows[0]
	if first.OrderID != "123-456" {
		t.Errorf("Unexpected order id: %q", first.OrderID)
	}
	if !first.SalePrice.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("Expected price 1234.56, got %s", first.SalePrice)
	}
	if !first.Fees.Equal(decimal.RequireFromString("6.50")) {
		t.Errorf("Expected fees 6.50, got %s", first.Fees)
	}
	if first.SoldAt == nil || first.SoldAt.Day() != 15 {
		t.Errorf("Unexpected sold date: %v", first.SoldAt)
	}

	second := report.Rows[1]
	if second.Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", second.Quantity)
	}
	if !second.Fees.Equal(decimal.Zero) {
		t.Errorf("Expected zero fees for a blank cell, got %s", second.Fees)
	}
}

func TestParseSalesReport_MissingRequiredColumn(t *testing.T) {
	data := "Order Number,Quantity\n123,1\n"

	_, err := ParseSalesReport(strings.NewReader(data))
	if err == nil || !IsFileError(err) {
		t.Errorf("Expected a file-level error, got %v", err)
	}
}

func TestParseSalesReport_NoHeader(t *testing.T) {
	data := "just,some,random,cells\nwithout,a,header,row\n"

	_, err := ParseSalesReport(strings.NewReader(data))
	if err == nil || !IsFileError(err) {
		t.Errorf("Expected a file-level error, got %v", err)
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"$45.00", "45"},
		{"$1,234.56", "1234.56"},
		{"12", "12"},
		{"", "0"},
		{"n/a", "0"},
	}
	for _, c := range cases {
		got := parseMoney(c.raw)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("parseMoney(%q) = %s, want %s", c.raw, got, c.want)
		}
	}
}
