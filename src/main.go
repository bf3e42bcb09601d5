package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"surveymart/src/data"
	"surveymart/src/directors"
	"surveymart/src/engine"
	"surveymart/src/settings"
	"surveymart/src/storage"
)

func main() {
	args := settings.GetSettings()

	flag.StringVar(&args.DataDir, "datadir", "./datafiles", "Directory to store snapshot files")
	flag.StringVar(&args.SnapshotFile, "snapshot", "", "Snapshot file name to write after loading (empty disables)")
	flag.StringVar(&args.EnvFile, "env", "", "Path to a .env file with overrides")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")
	flag.Parse()

	loadEnvOverrides(args)

	logger, err := initLogger(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	store := engine.NewStore(sugar)
	ingest := directors.NewIngestService(store, args, sugar)

	if err := ingest.LoadCatalog(data.SeniorityLabels(), data.RoleLabels(), data.BenefitLabels()); err != nil {
		sugar.Fatalw("catalog load failed", "error", err)
	}
	ingest.IngestUsers(data.Users())
	ingest.IngestCompanies(data.Companies())
	ingest.IngestBonds(data.Bonds())
	ingest.IngestEvaluations(data.Evaluations())
	ingest.IngestBenefitLinks(data.BenefitLinks())

	facade := engine.NewQueryFacade(store, sugar)
	for _, name := range facade.ListViewNames() {
		result, err := facade.RunView(name)
		if err != nil {
			sugar.Errorw("view failed", "view", name, "error", err)
			continue
		}
		printResult(result)
	}

	if args.SnapshotFile != "" {
		snapshots, err := storage.NewSnapshotStore(args.DataDir, sugar)
		if err != nil {
			sugar.Fatalw("snapshot store init failed", "error", err)
		}
		if err := snapshots.Save(args.SnapshotFile, store.Snapshot()); err != nil {
			sugar.Fatalw("snapshot save failed", "error", err)
		}
	}
}

// loadEnvOverrides layers values from a .env file under the flags.
// Missing files are fine unless one was named explicitly.
func loadEnvOverrides(args *settings.Arguments) {
	envFile := args.EnvFile
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit {
			fmt.Fprintf(os.Stderr, "Error: cannot load env file %s: %s\n", envFile, err)
			os.Exit(1)
		}
		return
	}
	if v := os.Getenv("SURVEYMART_DATADIR"); v != "" {
		args.DataDir = v
	}
	if v := os.Getenv("SURVEYMART_SNAPSHOT"); v != "" {
		args.SnapshotFile = v
	}
}

func initLogger(args *settings.Arguments) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if args.Debug {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		logger, err = z.Build()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func printResult(result *engine.Result) {
	fmt.Printf("\n== %s ==\n", result.View)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range result.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range result.Rows {
		for i, col := range result.Columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, formatValue(row[col]))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return t.StringFixed(2)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}
