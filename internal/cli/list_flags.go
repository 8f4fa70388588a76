package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/cli/pagination"
)

// addListFlags registers the sort and pagination flags on cmd.
func addListFlags(cmd *cobra.Command, p *pagination.Params, sortExample string) {
	cmd.Flags().StringVar(&p.Sort, "sort", "",
		fmt.Sprintf("Sort expression (e.g., '%s')", sortExample))
	cmd.Flags().IntVar(&p.Limit, "limit", 0,
		"Maximum number of products to return (0 = unlimited)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0,
		"Number of products to skip for offset-based pagination")
	cmd.Flags().IntVar(&p.Page, "page", 0,
		"Page number for page-based pagination (1-indexed, 0 = disabled)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0,
		"Number of products per page (requires --page)")
}

// applyList sorts rows by the sort expression and cuts the requested window.
// Metadata is returned only when a window was requested.
func applyList[T any](
	ctx context.Context,
	rows []T,
	p pagination.Params,
	sorter *pagination.FieldSorter[T],
) ([]T, *pagination.Meta, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid list parameters: %w", err)
	}

	sorted, err := sorter.SortExpr(rows, p.Sort)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid sort expression: %w", err)
	}

	if !p.IsEnabled() {
		return sorted, nil, nil
	}

	window := pagination.Apply(sorted, p)
	meta := pagination.NewMeta(p, len(sorted))
	logger.Debug().Ctx(ctx).
		Str("operation", "paginate").
		Int("total", len(sorted)).
		Int("returned", len(window)).
		Int("current_page", meta.CurrentPage).
		Int("total_pages", meta.TotalPages).
		Msg("applied pagination")
	return window, &meta, nil
}
