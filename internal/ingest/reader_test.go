package ingest

import (
	"strings"
	"testing"

	pipelineerrors "retail-analytics/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n"

func TestRead_ValidRecords(t *testing.T) {
	input := csvHeader +
		"536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,01/12/2010 08:26,2.55,17850,United Kingdom\n" +
		"536365,71053,WHITE METAL LANTERN,6,01/12/2010 08:26,3.39,17850.0,United Kingdom\n" +
		"C536379,D,Discount,-1,01/12/2010 09:41,27.50,14527,United Kingdom\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "536365", first.InvoiceNo)
	assert.Equal(t, "85123A", first.StockCode)
	assert.Equal(t, "WHITE HANGING HEART T-LIGHT HOLDER", first.Description)
	assert.Equal(t, int64(6), first.Quantity)
	assert.Equal(t, "2.55", first.UnitPrice.String())
	assert.Equal(t, "01/12/2010 08:26", first.InvoiceDate)
	assert.Equal(t, "17850", first.CustomerID)
	assert.Equal(t, "United Kingdom", first.Country)

	// Customer identifiers stay textual here; cleaning coerces them.
	assert.Equal(t, "17850.0", rows[1].CustomerID)

	// Returns carry a C-prefixed invoice and negative quantity.
	assert.Equal(t, "C536379", rows[2].InvoiceNo)
	assert.Equal(t, int64(-1), rows[2].Quantity)
}

func TestRead_EmptyFieldsPreserved(t *testing.T) {
	input := csvHeader +
		"536414,22139,,56,01/12/2010 11:52,0.00,,United Kingdom\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].Description)
	assert.Empty(t, rows[0].CustomerID)
}

func TestRead_Latin1Decoding(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and an invalid byte sequence in UTF-8.
	input := csvHeader +
		"536370,22728,ALARM CLOCK BAKELIKE CAF\xe9,24,01/12/2010 08:45,3.75,12583,France\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ALARM CLOCK BAKELIKE CAFé", rows[0].Description)
}

func TestRead_MissingColumn(t *testing.T) {
	input := "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,Country\n" +
		"536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,01/12/2010 08:26,2.55,United Kingdom\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, pipelineerrors.HasCode(err, pipelineerrors.IngestMissingColumn))
	assert.Contains(t, err.Error(), "CustomerID")
}

func TestRead_BadQuantity(t *testing.T) {
	input := csvHeader +
		"536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,six,01/12/2010 08:26,2.55,17850,United Kingdom\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, pipelineerrors.HasCode(err, pipelineerrors.ParseInvalidNumber))
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_BadUnitPrice(t *testing.T) {
	input := csvHeader +
		"536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,01/12/2010 08:26,cheap,17850,United Kingdom\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, pipelineerrors.HasCode(err, pipelineerrors.ParseInvalidNumber))
	assert.Contains(t, err.Error(), "unit price")
}

func TestRead_HeaderOnly(t *testing.T) {
	rows, err := Read(strings.NewReader(csvHeader))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("testdata/does-not-exist.csv")
	require.Error(t, err)
	assert.True(t, pipelineerrors.HasCode(err, pipelineerrors.IngestMissingFile))
}
