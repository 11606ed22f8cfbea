// Package dataset loads the cleaned procurement CSV export into memory.
// The load is a one-time pass at process start; every request afterwards
// reads the same immutable slice.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/rules"
)

// Column headers recognized in the export.
const (
	colPOID             = "PO_ID"
	colSupplierName     = "Supplier_Name"
	colSupplierType     = "Supplier_Type"
	colDiversity        = "Supplier_Diversity_Category"
	colPODate           = "PO_Date"
	colFiscalYear       = "Fiscal_Year"
	colAccountingPeriod = "Accounting_Period"
	colOrderType        = "Order_Type"
	colNIGPCode         = "NIGP_Code"
	colTotalAmount      = "Total_Amount"
	colITAmount         = "IT_Amount"
	colShippingCost     = "Shipping_Cost"
	colCarrier          = "Carrier"
	colLeadTime         = "Lead_Time_Days"
	colGeoLocation      = "Geographic_Location"
	colConsolidation    = "Consolidation_Opportunity"
	colOrderFrequency   = "Order_Frequency"
)

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
}

// LoadFile reads and cleans the CSV at path.
func LoadFile(path string) ([]*etprocurement.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open procurement data failed: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses, cleans and enriches procurement records from r.
func Load(r io.Reader) ([]*etprocurement.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header failed: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx[colSupplierName]; !ok {
		return nil, fmt.Errorf("csv missing required column %s", colSupplierName)
	}
	if _, ok := idx[colTotalAmount]; !ok {
		return nil, fmt.Errorf("csv missing required column %s", colTotalAmount)
	}

	var records []*etprocurement.Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d failed: %w", line, err)
		}
		line++

		rec, ok := parseRow(idx, row, line)
		if !ok {
			// Rows without a supplier or a parseable amount are dropped,
			// matching the cleaning pass on the source spreadsheet.
			continue
		}
		records = append(records, rec)
	}

	enrich(records)
	return records, nil
}

func parseRow(idx map[string]int, row []string, line int) (*etprocurement.Record, bool) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	supplier := get(colSupplierName)
	amount, err := parseAmount(get(colTotalAmount))
	if supplier == "" || err != nil || amount <= 0 {
		return nil, false
	}

	poID := get(colPOID)
	if poID == "" {
		poID = fmt.Sprintf("PO-%d", line)
	}

	rec := &etprocurement.Record{
		POID:                      poID,
		SupplierName:              supplier,
		SupplierType:              get(colSupplierType),
		SupplierDiversityCategory: cleanDiversity(get(colDiversity)),
		OrderType:                 get(colOrderType),
		NIGPCode:                  get(colNIGPCode),
		OrderFrequency:            get(colOrderFrequency),
		TotalAmount:               amount,
		Carrier:                   get(colCarrier),
		GeographicLocation:        get(colGeoLocation),
		ConsolidationOpportunity:  get(colConsolidation),
	}

	if d, err := parseDate(get(colPODate)); err == nil {
		rec.PODate = d
	}
	if v, err := parseAmount(get(colITAmount)); err == nil {
		rec.ITAmount = v
	}
	if v, err := parseAmount(get(colShippingCost)); err == nil {
		rec.ShippingCost = v
	}
	if v, err := strconv.Atoi(get(colLeadTime)); err == nil {
		rec.LeadTimeDays = v
	}
	if v, err := strconv.Atoi(get(colFiscalYear)); err == nil {
		rec.FiscalYear = v
	}
	if v, err := strconv.Atoi(get(colAccountingPeriod)); err == nil {
		rec.AccountingPeriod = v
	}

	return rec, true
}

// enrich fills the synthetic shipping fields for records the export left
// blank, using the rule tables. Assignments are deterministic per PO.
func enrich(records []*etprocurement.Record) {
	supplierCounts := make(map[string]int, len(records))
	for _, rec := range records {
		supplierCounts[rec.SupplierName]++
	}

	for _, rec := range records {
		count := supplierCounts[rec.SupplierName]

		if rec.Carrier == "" || rec.Carrier == "N/A" {
			rec.Carrier = rules.AssignCarrier(rec.POID, rec.TotalAmount, rec.ITAmount)
		}
		if rec.ShippingCost <= 0 && rec.Carrier != etprocurement.CarrierElectronic {
			rec.ShippingCost = rules.ShippingCost(rec.POID, rec.TotalAmount)
		}
		if rec.LeadTimeDays <= 0 {
			rec.LeadTimeDays = rules.LeadTimeDays(rec.POID, rec.SupplierType, rec.TotalAmount)
		}
		if rec.GeographicLocation == "" {
			rec.GeographicLocation = rules.GeographicLocation(rec.POID, rec.SupplierName)
		}
		if rec.ConsolidationOpportunity == "" {
			rec.ConsolidationOpportunity = rules.ConsolidationLevel(count)
		}
		if rec.OrderFrequency == "" {
			rec.OrderFrequency = rules.OrderFrequency(count)
		}
	}
}

// parseAmount strips currency formatting like "$1,234.50".
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		// Accounting negatives, e.g. "(125.00)".
		s = "-" + strings.Trim(s, "()")
	}
	return strconv.ParseFloat(s, 64)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

func cleanDiversity(s string) string {
	if s == "" || strings.EqualFold(s, "none") || s == "N/A" {
		return etprocurement.DiversityNone
	}
	return s
}
