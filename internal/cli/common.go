package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/lcafocus/internal/config"
	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/logging"
	"github.com/rshade/lcafocus/internal/report"
)

// Errors returned before any file is read.
var (
	ErrNoDataPath    = errors.New("no input table given: use --data")
	ErrNoFactorsPath = errors.New("no impact factor document given: use --factors or set factors.path")
)

// inputs is the loaded and validated state shared by analysis commands.
type inputs struct {
	table   lca.Table
	factors *lca.FactorTable
}

// dataPath returns the --data flag value.
func dataPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString(flagData)
	if path == "" {
		return "", ErrNoDataPath
	}
	return path, nil
}

// factorsPath returns --factors, falling back to the configured default.
func factorsPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString(flagFactors); path != "" {
		return path
	}
	return config.GetFactorsPath()
}

// loadInputs reads the input table and, when withFactors is set, the factor
// document concurrently, then validates the table. A missing factor path
// yields an empty factor table, so impacts reduce to the direct columns.
func loadInputs(ctx context.Context, cmd *cobra.Command, withFactors bool) (*inputs, error) {
	tablePath, err := dataPath(cmd)
	if err != nil {
		return nil, err
	}
	var fPath string
	if withFactors {
		fPath = factorsPath(cmd)
	}

	var (
		in  inputs
		src lca.FactorSource
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tbl, readErr := ingest.ReadTable(gCtx, tablePath)
		if readErr != nil {
			return fmt.Errorf("loading input table: %w", readErr)
		}
		in.table = tbl
		return nil
	})
	if fPath != "" {
		g.Go(func() error {
			s, readErr := ingest.ReadFactors(gCtx, fPath)
			if readErr != nil {
				return fmt.Errorf("loading impact factors: %w", readErr)
			}
			src = s
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	if withFactors && fPath == "" {
		logger.Warn().Ctx(ctx).
			Str("operation", "load_inputs").
			Msg("no impact factor document; impacts use direct columns only")
	}

	if err = lca.ValidateTable(in.table); err != nil {
		logger.Debug().Ctx(ctx).Err(err).Str("path", tablePath).Msg("input table rejected")
		return nil, fmt.Errorf("input table %s is invalid: %w", tablePath, err)
	}
	in.factors = lca.LoadFactors(src)

	logger.Debug().Ctx(ctx).
		Str("operation", "load_inputs").
		Int("row_count", in.table.Len()).
		Int("factor_count", in.factors.Len()).
		Msg("inputs loaded")
	return &in, nil
}

// loadImpacts loads inputs and runs the calculator.
func loadImpacts(cmd *cobra.Command) ([]lca.ImpactRow, error) {
	ctx := cmd.Context()
	in, err := loadInputs(ctx, cmd, true)
	if err != nil {
		return nil, err
	}
	calc := lca.NewCalculator(in.factors, lca.WithLogger(*logging.FromContext(ctx)))
	return calc.CalculateTable(in.table), nil
}

// newRenderer builds a renderer from --output and the output config.
// Styling is enabled only when color is configured, NO_COLOR is unset and
// stdout is a terminal.
func newRenderer(cmd *cobra.Command) (*report.Renderer, error) {
	cfg := config.GetGlobalConfig()

	name, _ := cmd.Flags().GetString(flagOutput)
	if name == "" {
		name = cfg.Output.DefaultFormat
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	w := cmd.OutOrStdout()
	_, noColor := os.LookupEnv("NO_COLOR")
	return report.New(w, report.Options{
		Format:    format,
		Precision: cfg.Output.Precision,
		Styled:    cfg.Output.Color && !noColor && report.IsTerminal(w),
	}), nil
}
