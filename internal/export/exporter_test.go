package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retail-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_WriteJSON(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	data := []models.CountryOrders{
		{Country: "United Kingdom", NumberOfOrders: 23494},
		{Country: "Germany", NumberOfOrders: 603},
	}

	path, err := exporter.WriteJSON("orders_per_country", data)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "orders_per_country_"))
	assert.True(t, strings.HasSuffix(path, ".json"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []models.CountryOrders
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "United Kingdom", decoded[0].Country)
	assert.Equal(t, int64(23494), decoded[0].NumberOfOrders)
}

func TestExporter_WriteJSON_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	exporter := NewExporter(dir)

	path, err := exporter.WriteJSON("report", map[string]int{"rows": 1})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTimestampedFilename(t *testing.T) {
	name := TimestampedFilename("reports", "segmented_orders")

	assert.Equal(t, "reports", filepath.Dir(name))
	base := filepath.Base(name)
	assert.True(t, strings.HasPrefix(base, "segmented_orders_"))
	assert.True(t, strings.HasSuffix(base, ".json"))
	// segmented_orders_YYYYMMDD_HHMMSS.json
	assert.Len(t, base, len("segmented_orders_")+15+len(".json"))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	err := RenderTable(&buf,
		[]string{"COUNTRY", "ORDERS"},
		[][]string{
			{"United Kingdom", "23494"},
			{"Germany", "603"},
		})
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "COUNTRY")
	assert.Contains(t, lines[1], "United Kingdom")
	assert.Contains(t, lines[2], "603")

	// Columns are aligned.
	assert.Equal(t, strings.Index(lines[1], "23494"), strings.Index(lines[2], "603"))
}
