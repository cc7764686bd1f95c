package symbol

import (
	"context"
	"fmt"

	"github.com/OCAP2/polysymbol/pkg/core"
	"golang.org/x/sync/errgroup"
)

// BuildAll builds one shape per point with at most workers concurrent
// builds (unlimited when workers <= 0). Points are numbered from 1 and
// total is len(points). The result is in input order. The first error
// stops scheduling further builds and is returned.
func BuildAll(ctx context.Context, f Factory, points []core.DirectionPoint, proj Projection, workers int) ([]Shape, error) {
	shapes := make([]Shape, len(points))
	total := len(points)

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range points {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shape, err := f.BuildSymbol(&points[i], proj, i+1, total)
			if err != nil {
				return fmt.Errorf("symbol %d: %w", i+1, err)
			}
			shapes[i] = shape
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's context matters here
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return shapes, nil
}
