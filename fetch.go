package autodoc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchPatches retrieves patches by id with at most workers concurrent
// requests, preserving input order in the result. With workers <= 1 the
// fetches run sequentially. The first error cancels the remaining fetches.
func FetchPatches(ctx context.Context, svc PatchService, ids []int, workers int) ([]*Patch, error) {
	patches := make([]*Patch, len(ids))

	if workers <= 1 {
		for i, id := range ids {
			patch, err := svc.Patch(ctx, id)
			if err != nil {
				return nil, err
			}
			patches[i] = patch
		}
		return patches, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, id := range ids {
		g.Go(func() error {
			patch, err := svc.Patch(ctx, id)
			if err != nil {
				return err
			}
			patches[i] = patch
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return patches, nil
}
