package services

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type productInfo struct {
	StockCode   string
	Description string
	UnitPrice   float64
}

type sampleDataGenerator struct {
	productPool []productInfo
	countryPool []string
	rng         *rand.Rand
}

const (
	itemsPerInvoiceMax  = 6
	returnRatePercent   = 4
	missingCustomerRate = 12
	missingDescRate     = 2
	sampleWindowDays    = 180
)

// sampleDateLayouts mirror the mixed textual formats found in real feeds;
// all are day-first where ambiguous.
var sampleDateLayouts = []string{
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04",
}

// NewSampleDataGenerator creates a generator with a fixed seed so output is
// reproducible.
func NewSampleDataGenerator(seed int64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		productPool: initializeProductPool(),
		countryPool: []string{
			"United Kingdom", "United Kingdom", "United Kingdom", "United Kingdom",
			"France", "Germany", "Netherlands", "Ireland", "Spain", "Portugal",
			"Belgium", "Switzerland", "Norway", "Australia", "Japan",
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

func initializeProductPool() []productInfo {
	return []productInfo{
		{"85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 2.55},
		{"71053", "WHITE METAL LANTERN", 3.39},
		{"84406B", "CREAM CUPID HEARTS COAT HANGER", 2.75},
		{"84029G", "KNITTED UNION FLAG HOT WATER BOTTLE", 3.39},
		{"84029E", "RED WOOLLY HOTTIE WHITE HEART", 3.39},
		{"22752", "SET 7 BABUSHKA NESTING BOXES", 7.65},
		{"21730", "GLASS STAR FROSTED T-LIGHT HOLDER", 4.25},
		{"22633", "HAND WARMER UNION JACK", 1.85},
		{"22632", "HAND WARMER RED POLKA DOT", 1.85},
		{"84879", "ASSORTED COLOUR BIRD ORNAMENT", 1.69},
		{"22745", "POPPY'S PLAYHOUSE BEDROOM", 2.10},
		{"22748", "POPPY'S PLAYHOUSE KITCHEN", 2.10},
		{"22749", "FELTCRAFT PRINCESS CHARLOTTE DOLL", 3.75},
		{"22310", "IVORY KNITTED MUG COSY", 1.65},
		{"84969", "BOX OF 6 ASSORTED COLOUR TEASPOONS", 4.25},
		{"22623", "BOX OF VINTAGE JIGSAW BLOCKS", 4.95},
		{"22622", "BOX OF VINTAGE ALPHABET BLOCKS", 9.95},
		{"21754", "HOME BUILDING BLOCK WORD", 5.95},
		{"21755", "LOVE BUILDING BLOCK WORD", 5.95},
		{"21777", "RECIPE BOX WITH METAL HEART", 7.95},
		{"48187", "DOORMAT NEW ENGLAND", 7.95},
		{"22960", "JAM MAKING SET WITH JARS", 4.25},
		{"22913", "RED COAT RACK PARIS FASHION", 4.95},
		{"22912", "YELLOW COAT RACK PARIS FASHION", 4.95},
		{"22914", "BLUE COAT RACK PARIS FASHION", 4.95},
		{"21756", "BATH BUILDING BLOCK WORD", 5.95},
		{"22728", "ALARM CLOCK BAKELIKE PINK", 3.75},
		{"22727", "ALARM CLOCK BAKELIKE RED", 3.75},
		{"22726", "ALARM CLOCK BAKELIKE GREEN", 3.75},
		{"21035", "SET/2 RED RETROSPOT TEA TOWELS", 2.95},
	}
}

// WriteCSV generates a synthetic transaction file with the production
// header. The output includes returns (negative quantities), line items
// without a customer identifier or description, and mixed date formats,
// so it exercises the full cleaning path.
func (g *sampleDataGenerator) WriteCSV(path string, rows int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"InvoiceNo", "StockCode", "Description", "Quantity", "UnitPrice", "InvoiceDate", "CustomerID", "Country"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	base := time.Now().AddDate(0, 0, -sampleWindowDays)
	invoiceNo := 536365
	written := 0

	for written < rows {
		invoice := strconv.Itoa(invoiceNo)
		invoiceNo++

		country := g.countryPool[g.rng.Intn(len(g.countryPool))]
		customer := ""
		if g.rng.Intn(100) >= missingCustomerRate {
			customer = strconv.Itoa(12346 + g.rng.Intn(5000))
		}

		isReturn := g.rng.Intn(100) < returnRatePercent
		if isReturn {
			invoice = "C" + invoice
		}

		when := base.Add(time.Duration(g.rng.Intn(sampleWindowDays*24*60)) * time.Minute)
		layout := sampleDateLayouts[g.rng.Intn(len(sampleDateLayouts))]

		items := 1 + g.rng.Intn(itemsPerInvoiceMax)
		for i := 0; i < items && written < rows; i++ {
			product := g.productPool[g.rng.Intn(len(g.productPool))]

			quantity := 1 + g.rng.Intn(24)
			if isReturn {
				quantity = -quantity
			}

			description := product.Description
			if g.rng.Intn(100) < missingDescRate {
				description = ""
			}

			record := []string{
				invoice,
				product.StockCode,
				description,
				strconv.Itoa(quantity),
				strconv.FormatFloat(product.UnitPrice, 'f', 2, 64),
				when.Format(layout),
				customer,
				country,
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
			written++
		}
	}

	w.Flush()
	return w.Error()
}
