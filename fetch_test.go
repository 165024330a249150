package autodoc_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPatches(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order with parallel workers", func(t *testing.T) {
		t.Parallel()

		svc := &mock.PatchService{
			PatchFn: func(ctx context.Context, id int) (*autodoc.Patch, error) {
				return &autodoc.Patch{ID: id}, nil
			},
		}

		patches, err := autodoc.FetchPatches(context.Background(), svc, []int{5, 3, 9}, 4)
		require.NoError(t, err)

		require.Len(t, patches, 3)
		assert.Equal(t, 5, patches[0].ID)
		assert.Equal(t, 3, patches[1].ID)
		assert.Equal(t, 9, patches[2].ID)
	})

	t.Run("sequential mode stops at first error", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		svc := &mock.PatchService{
			PatchFn: func(ctx context.Context, id int) (*autodoc.Patch, error) {
				calls.Add(1)
				if id == 3 {
					return nil, errors.New("boom")
				}
				return &autodoc.Patch{ID: id}, nil
			},
		}

		_, err := autodoc.FetchPatches(context.Background(), svc, []int{1, 3, 9}, 1)
		require.Error(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("parallel mode surfaces the error", func(t *testing.T) {
		t.Parallel()

		svc := &mock.PatchService{
			PatchFn: func(ctx context.Context, id int) (*autodoc.Patch, error) {
				if id == 2 {
					return nil, errors.New("unreachable")
				}
				return &autodoc.Patch{ID: id}, nil
			},
		}

		_, err := autodoc.FetchPatches(context.Background(), svc, []int{1, 2}, 2)
		assert.Error(t, err)
	})

	t.Run("empty id list", func(t *testing.T) {
		t.Parallel()

		patches, err := autodoc.FetchPatches(context.Background(), &mock.PatchService{}, nil, 4)
		require.NoError(t, err)
		assert.Empty(t, patches)
	})
}
