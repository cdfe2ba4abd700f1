// Package ingest reads delimited transaction files into raw line items.
// Input files are decoded as ISO-8859-1 so extended Latin-1 byte sequences
// never fail UTF-8 validation.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	pipelineerrors "retail-analytics/internal/errors"
	"retail-analytics/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// Column headers expected in the input file.
const (
	ColInvoiceNo   = "InvoiceNo"
	ColStockCode   = "StockCode"
	ColDescription = "Description"
	ColQuantity    = "Quantity"
	ColUnitPrice   = "UnitPrice"
	ColInvoiceDate = "InvoiceDate"
	ColCustomerID  = "CustomerID"
	ColCountry     = "Country"
)

var requiredColumns = []string{
	ColInvoiceNo,
	ColStockCode,
	ColDescription,
	ColQuantity,
	ColUnitPrice,
	ColInvoiceDate,
	ColCustomerID,
	ColCountry,
}

// ReadFile loads every record of the given transaction CSV.
func ReadFile(path string) ([]models.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.IngestMissingFile, err,
			pipelineerrors.WithMessage(fmt.Sprintf("cannot open %s", path)))
	}
	defer f.Close()

	return Read(f)
}

// Read loads every record from an ISO-8859-1 encoded CSV stream with a
// header row.
func Read(r io.Reader) ([]models.RawTransaction, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.IngestMalformedRecord, err,
			pipelineerrors.WithMessage("cannot read header row"))
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []models.RawTransaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, pipelineerrors.Wrap(pipelineerrors.IngestMalformedRecord, err,
				pipelineerrors.WithMessage(fmt.Sprintf("malformed record at line %d", line)))
		}

		row, err := parseRecord(record, columns, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, pipelineerrors.New(pipelineerrors.IngestMissingColumn,
				pipelineerrors.WithMessage(fmt.Sprintf("missing column %q", required)))
		}
	}

	return columns, nil
}

func parseRecord(record []string, columns map[string]int, line int) (models.RawTransaction, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(field(ColQuantity)), 10, 64)
	if err != nil {
		return models.RawTransaction{}, pipelineerrors.Wrap(pipelineerrors.ParseInvalidNumber, err,
			pipelineerrors.WithMessage(fmt.Sprintf("bad quantity at line %d", line)))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(field(ColUnitPrice)))
	if err != nil {
		return models.RawTransaction{}, pipelineerrors.Wrap(pipelineerrors.ParseInvalidNumber, err,
			pipelineerrors.WithMessage(fmt.Sprintf("bad unit price at line %d", line)))
	}

	return models.RawTransaction{
		InvoiceNo:   strings.TrimSpace(field(ColInvoiceNo)),
		StockCode:   strings.TrimSpace(field(ColStockCode)),
		Description: field(ColDescription),
		Quantity:    quantity,
		UnitPrice:   price,
		InvoiceDate: strings.TrimSpace(field(ColInvoiceDate)),
		CustomerID:  field(ColCustomerID),
		Country:     strings.TrimSpace(field(ColCountry)),
	}, nil
}
