package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/labelgrid"
	"github.com/tsawler/labelgrid/export"
)

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		useSQL      bool
		useXLSX     bool
		configPath  string
		dbPath      string
		outDir      string
		rowIDs      bool
		logPath     string
		headerLines int
		strictCells bool
	)

	cmd := &cobra.Command{
		Use:   "labelgrid [report file]",
		Short: "Untangle positioned-label reports into relational tables",
		Long: `labelgrid reconstructs a relational table from report documents whose
grid exists only as absolutely positioned text elements, then exports
the result to a flat file or a SQLite database.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := openLogger(logPath)
			if err != nil {
				return err
			}
			defer closeLog()

			input := args[0]
			logger.Info("run started", "input", input, "sql", useSQL, "xlsx", useXLSX)

			if err := run(input, runOptions{
				useSQL:      useSQL,
				useXLSX:     useXLSX,
				configPath:  configPath,
				dbPath:      dbPath,
				outDir:      outDir,
				rowIDs:      rowIDs,
				headerLines: headerLines,
				strictCells: strictCells,
			}, logger); err != nil {
				logger.Error("run failed", "input", input, "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&useSQL, "sql", "s", false, "export to a SQLite database instead of a flat file")
	cmd.Flags().BoolVar(&useXLSX, "xlsx", false, "write the flat file as an XLSX workbook instead of CSV")
	cmd.Flags().StringVar(&configPath, "config", "", "exporter config file (YAML)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for flat-file output")
	cmd.Flags().BoolVar(&rowIDs, "row-ids", false, "add a uuid column with a fresh identifier per row")
	cmd.Flags().StringVar(&logPath, "log", "phone_data_cleaner.log", "log file path")
	cmd.Flags().IntVar(&headerLines, "header-lines", 0, "wrapped header line count (default from template)")
	cmd.Flags().BoolVar(&strictCells, "strict-cells", false, "fail when two fragments claim the same grid cell")

	return cmd
}

type runOptions struct {
	useSQL      bool
	useXLSX     bool
	configPath  string
	dbPath      string
	outDir      string
	rowIDs      bool
	headerLines int
	strictCells bool
}

func run(input string, opts runOptions, logger *slog.Logger) error {
	ex := labelgrid.Open(input)
	if opts.headerLines > 0 {
		ex = ex.HeaderLines(opts.headerLines)
	}
	if opts.strictCells {
		ex = ex.OnDuplicate(labelgrid.DuplicateError)
	}

	tbl, meta, err := ex.Table()
	if err != nil {
		return err
	}
	logger.Info("table reconstructed",
		"rows", tbl.RowCount(), "columns", tbl.ColCount(), "report_time", meta.Timestamp)

	cfg, err := export.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dbPath != "" {
		cfg.Database = opts.dbPath
	}
	if opts.rowIDs {
		cfg.RowIDs = true
	}

	if opts.useSQL {
		if err := export.WriteSQL(tbl, cfg); err != nil {
			return err
		}
		logger.Info("exported to database",
			"database", cfg.Database, "table", export.RouteTable(tbl, cfg), "rows", tbl.RowCount())
		return nil
	}

	ext := "csv"
	if opts.useXLSX {
		ext = "xlsx"
	}
	out := filepath.Join(opts.outDir, export.FlatFileName(input, ext))

	flatOpts := export.Options{RowIDs: cfg.RowIDs}
	if opts.useXLSX {
		err = export.WriteXLSX(tbl, out, flatOpts)
	} else {
		err = export.WriteCSV(tbl, out, flatOpts)
	}
	if err != nil {
		return err
	}
	logger.Info("exported to flat file", "path", out, "rows", tbl.RowCount())
	return nil
}

// openLogger opens the append-mode log file and returns a logger plus a
// close function. "-" logs to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "-" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
