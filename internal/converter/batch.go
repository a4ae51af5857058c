package converter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ConvertAll converts every path with at most jobs conversions in flight and
// returns the Markdown in input order. The first failure stops scheduling of
// the remaining files and is returned with the failing path.
func ConvertAll(ctx context.Context, paths []string, jobs int) ([]string, error) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			md, err := ConvertFile(path)
			if err != nil {
				return fmt.Errorf("failed to convert %s: %w", path, err)
			}
			results[i] = md
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
