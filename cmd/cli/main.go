package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aitrends/adapters/chart"
	"aitrends/app"
	"aitrends/internal"
	"aitrends/internal/config"
	"aitrends/ports"
	"aitrends/ui"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; environment variables win when both are set
	if err := godotenv.Load(); err == nil {
		internal.DefaultLogger.Debug("[CLI] loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "aitrends",
		Short: "AI job market trends analyzer",
		Long: `Analyze a tabular dataset of AI job postings: per-role salary statistics,
technology demand frequency, and a short text report.

The input file is CSV or XLSX with at least a job role column, a numeric
salary or a "low-high" salary range column, and a comma-delimited skills
column.`,
	}

	rootCmd.AddCommand(
		newStatsCmd(cfg),
		newSkillsCmd(cfg),
		newReportCmd(cfg),
		newServeCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// chartFlags are shared by every command that can render a chart
type chartFlags struct {
	output  string
	noChart bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.output, "chart-output", "", "write the chart to this .xlsx file instead of the terminal")
	cmd.Flags().BoolVar(&f.noChart, "no-chart", false, "disable chart rendering")
}

func (f *chartFlags) sink() ports.ChartSink {
	if f.noChart {
		return ports.NopSink{}
	}
	if f.output != "" {
		return chart.NewExcelChart(f.output)
	}
	return chart.NewTerminalChart(os.Stdout)
}

func buildAnalyzer(cfg *config.Config, args []string, sink ports.ChartSink) (*app.TrendsAnalyzer, error) {
	path := cfg.Data.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no input file: pass one as an argument or set AITRENDS_DATA_FILE")
	}

	return app.NewTrendsAnalyzer(path,
		app.WithRoleColumn(cfg.Data.RoleColumn),
		app.WithSalaryColumn(cfg.Data.SalaryColumn),
		app.WithSkillsColumn(cfg.Data.SkillsColumn),
		app.WithSink(sink),
	)
}

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var charts chartFlags

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Per-role salary statistics ordered by posting count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer(cfg, args, charts.sink())
			if err != nil {
				return err
			}

			rows, err := analyzer.SalaryStats()
			if err != nil {
				return err
			}

			fmt.Printf("%s cleaned postings, %s roles\n\n",
				humanize.Comma(int64(analyzer.RecordCount())), humanize.Comma(int64(len(rows))))
			for _, row := range rows {
				fmt.Printf("%-40s avg %12.2f   median %12.2f   count %d\n",
					row.Role, row.AverageSalary, row.MedianSalary, row.Count)
			}
			return nil
		},
	}

	charts.register(cmd)
	return cmd
}

func newSkillsCmd(cfg *config.Config) *cobra.Command {
	var charts chartFlags
	var topN int

	cmd := &cobra.Command{
		Use:   "skills [file]",
		Short: "Top demanded skills across all postings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer(cfg, args, charts.sink())
			if err != nil {
				return err
			}

			skills, err := analyzer.TechnologyPopularity(topN)
			if err != nil {
				return err
			}

			for i, entry := range skills {
				fmt.Printf("%2d. %-30s %s\n", i+1, entry.Skill, humanize.Comma(int64(entry.Count)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", cfg.Data.TopSkills, "number of skills to list")
	charts.register(cmd)
	return cmd
}

func newReportCmd(cfg *config.Config) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Short text report of the top demanded skills",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer(cfg, args, ports.NopSink{})
			if err != nil {
				return err
			}

			fmt.Println(analyzer.GenerateReport(topN))
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", 5, "number of skills to include")
	return cmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the analysis over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := ports.ChartSink(ports.NopSink{})
			if cfg.Chart.OutputPath != "" {
				sink = chart.NewExcelChart(cfg.Chart.OutputPath)
			}

			analyzer, err := buildAnalyzer(cfg, args, sink)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ui.NewServer(analyzer).Run(ctx, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", cfg.Server.Port, "HTTP listen port")
	return cmd
}
