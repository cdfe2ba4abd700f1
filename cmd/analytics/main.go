package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"retail-analytics/internal/config"
	"retail-analytics/internal/database"
	"retail-analytics/internal/export"
	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
	"retail-analytics/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	cfg          *config.Config
	db           *database.DB
	ingestion    services.IngestionServiceInterface
	cleaning     services.CleaningServiceInterface
	reports      services.ReportServiceInterface
	segmentation services.SegmentationServiceInterface
	recorder     services.RunRecorderInterface
}

func newApp() (*app, error) {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	orderRepo := repositories.NewOrderRepository(db.DB)
	runRepo := repositories.NewPipelineRunRepository(db.DB)

	return &app{
		cfg:          cfg,
		db:           db,
		ingestion:    services.NewIngestionService(orderRepo),
		cleaning:     services.NewCleaningService(orderRepo),
		reports:      services.NewReportService(orderRepo, cfg.Reports.TopLimit),
		segmentation: services.NewSegmentationService(orderRepo),
		recorder:     services.NewRunRecorder(runRepo),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

func (a *app) ingest(path string) error {
	if path == "" {
		path = a.cfg.Ingest.CSVPath
	}
	return a.recorder.Record(models.StageIngest, func() (int64, int64, error) {
		rows, err := a.ingestion.Ingest(path)
		return rows, rows, err
	})
}

func (a *app) clean() error {
	return a.recorder.Record(models.StageClean, func() (int64, int64, error) {
		return a.cleaning.Run()
	})
}

func (a *app) report() error {
	return a.recorder.Record(models.StageReport, func() (int64, int64, error) {
		bundle, err := a.reports.GenerateAll()
		if err != nil {
			return 0, 0, err
		}

		exporter := export.NewExporter(a.cfg.Reports.OutputDir)
		resultSets := []struct {
			name string
			data interface{}
		}{
			{"orders_per_country", bundle.OrdersPerCountry},
			{"revenue_per_country", bundle.RevenuePerCountry},
			{"clients_per_country", bundle.ClientsPerCountry},
			{"top_products", bundle.TopProducts},
			{"returned_items", bundle.ReturnedItems},
			{"quantity_by_weekday", bundle.QuantityByWeekday},
			{"top_clients", bundle.TopClients},
			{"quantity_by_date", bundle.QuantityByDate},
			{"rfm_profiles", bundle.RFMProfiles},
			{"report_bundle", bundle},
		}
		for _, rs := range resultSets {
			path, err := exporter.WriteJSON(rs.name, rs.data)
			if err != nil {
				return 0, 0, err
			}
			slog.Info("report written", "name", rs.name, "path", path)
		}

		printReportSummary(bundle)

		return 0, int64(len(bundle.OrdersPerCountry)), nil
	})
}

func (a *app) segment() error {
	return a.recorder.Record(models.StageSegment, func() (int64, int64, error) {
		segmented, err := a.segmentation.Run()
		if err != nil {
			return 0, 0, err
		}

		exporter := export.NewExporter(a.cfg.Reports.OutputDir)
		path, err := exporter.WriteJSON("segmented_orders", segmented)
		if err != nil {
			return int64(len(segmented)), 0, err
		}
		slog.Info("segmented orders written", "path", path)

		return int64(len(segmented)), int64(len(segmented)), nil
	})
}

func (a *app) seed(path string, rows int, seed int64) error {
	gen := services.NewSampleDataGenerator(seed)
	if err := gen.WriteCSV(path, rows); err != nil {
		return err
	}
	slog.Info("sample data written", "path", path, "rows", rows)
	return nil
}

func printReportSummary(bundle *models.ReportBundle) {
	rows := make([][]string, 0, len(bundle.OrdersPerCountry))
	for _, c := range bundle.OrdersPerCountry {
		rows = append(rows, []string{c.Country, strconv.FormatInt(c.NumberOfOrders, 10)})
	}
	fmt.Println("\nOrders per country:")
	if err := export.RenderTable(os.Stdout, []string{"COUNTRY", "ORDERS"}, rows); err != nil {
		log.Printf("Failed to render table: %v", err)
	}

	rows = rows[:0]
	for _, p := range bundle.TopProducts {
		rows = append(rows, []string{p.StockCode, p.Description, strconv.FormatInt(p.TotalNumberSold, 10)})
	}
	fmt.Println("\nTop products:")
	if err := export.RenderTable(os.Stdout, []string{"STOCK CODE", "DESCRIPTION", "SOLD"}, rows); err != nil {
		log.Printf("Failed to render table: %v", err)
	}

	fmt.Printf("\nOrders without customer ID: %d\n", bundle.MissingCustomerCount)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "analytics",
		Short: "Retail transaction analytics pipeline",
		Long: `Loads e-commerce transaction CSVs into a relational store, cleans them,
runs a fixed aggregation battery and segments clients by RFM tiers.`,
		SilenceUsage: true,
	}

	var csvPath string
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load a transaction CSV into the raw orders table",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.ingest(csvPath)
		},
	}
	ingestCmd.Flags().StringVar(&csvPath, "file", "", "CSV file to ingest (defaults to INGEST_CSV_PATH)")

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Normalize the raw table into orders_cleaned",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.clean()
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Run the aggregation battery and write the report bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.report()
		},
	}

	segmentCmd := &cobra.Command{
		Use:   "segment",
		Short: "Assign RFM tiers and client segments to cleaned orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.segment()
		},
	}

	var runCSVPath string
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the full pipeline: ingest, clean, report, segment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.ingest(runCSVPath); err != nil {
				return err
			}
			if err := a.clean(); err != nil {
				return err
			}
			if err := a.report(); err != nil {
				return err
			}
			return a.segment()
		},
	}
	runCmd.Flags().StringVar(&runCSVPath, "file", "", "CSV file to ingest (defaults to INGEST_CSV_PATH)")

	var seedRows int
	var seedValue int64
	var seedPath string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic transaction CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if seedPath == "" {
				seedPath = a.cfg.Ingest.CSVPath
			}
			return a.seed(seedPath, seedRows, seedValue)
		},
	}
	seedCmd.Flags().IntVar(&seedRows, "rows", 1000, "number of line items to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "random seed")
	seedCmd.Flags().StringVar(&seedPath, "out", "", "output CSV path (defaults to INGEST_CSV_PATH)")

	root.AddCommand(ingestCmd, cleanCmd, reportCmd, segmentCmd, runCmd, seedCmd)
	return root
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
