package autodoc_test

import (
	"testing"

	"github.com/noahmasoud/autodoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLines_Structured(t *testing.T) {
	t.Parallel()

	t.Run("emits removals then additions then modifications", func(t *testing.T) {
		t.Parallel()

		patch := &autodoc.Patch{
			Before: "ignored when structured diff present",
			After:  "ignored when structured diff present",
			StructuredDiff: &autodoc.StructuredDiff{
				Added:   []string{"x"},
				Removed: []string{"y"},
				Modified: []autodoc.ModifiedLine{
					{Line: 1, Old: "a", New: "b"},
				},
			},
		}

		lines := autodoc.DeriveLines(patch)

		require.Len(t, lines, 3)
		assert.Equal(t, autodoc.LineRemoved, lines[0].Kind)
		assert.Equal(t, "y", lines[0].Before)
		assert.Equal(t, autodoc.LineAdded, lines[1].Kind)
		assert.Equal(t, "x", lines[1].After)
		assert.Equal(t, autodoc.LineModified, lines[2].Kind)
		assert.Equal(t, "a", lines[2].Before)
		assert.Equal(t, "b", lines[2].After)
		assert.Equal(t, 1, lines[2].Num)
	})

	t.Run("preserves source list order without re-sorting", func(t *testing.T) {
		t.Parallel()

		patch := &autodoc.Patch{
			StructuredDiff: &autodoc.StructuredDiff{
				Removed: []string{"second removed", "first removed"},
				Added:   []string{"z", "a"},
			},
		}

		lines := autodoc.DeriveLines(patch)

		require.Len(t, lines, 4)
		assert.Equal(t, "second removed", lines[0].Before)
		assert.Equal(t, "first removed", lines[1].Before)
		assert.Equal(t, "z", lines[2].After)
		assert.Equal(t, "a", lines[3].After)
	})

	t.Run("empty structured diff falls back to positional comparison", func(t *testing.T) {
		t.Parallel()

		patch := &autodoc.Patch{
			Before:         "a",
			After:          "b",
			StructuredDiff: &autodoc.StructuredDiff{},
		}

		lines := autodoc.DeriveLines(patch)

		require.Len(t, lines, 1)
		assert.Equal(t, autodoc.LineModified, lines[0].Kind)
	})
}

func TestDeriveLines_Positional(t *testing.T) {
	t.Parallel()

	t.Run("unchanged modified added", func(t *testing.T) {
		t.Parallel()

		patch := &autodoc.Patch{Before: "a\nb", After: "a\nc\nd"}

		lines := autodoc.DeriveLines(patch)

		require.Len(t, lines, 3)

		assert.Equal(t, autodoc.LineUnchanged, lines[0].Kind)
		assert.Equal(t, "a", lines[0].Before)
		assert.Equal(t, "a", lines[0].After)
		assert.Equal(t, 1, lines[0].Num)

		assert.Equal(t, autodoc.LineModified, lines[1].Kind)
		assert.Equal(t, "b", lines[1].Before)
		assert.Equal(t, "c", lines[1].After)

		assert.Equal(t, autodoc.LineAdded, lines[2].Kind)
		assert.Equal(t, "d", lines[2].After)
		assert.Equal(t, 3, lines[2].Num)
	})

	t.Run("before longer than after yields removed rows", func(t *testing.T) {
		t.Parallel()

		patch := &autodoc.Patch{Before: "a\nb\nc", After: "a"}

		lines := autodoc.DeriveLines(patch)

		require.Len(t, lines, 3)
		assert.Equal(t, autodoc.LineUnchanged, lines[0].Kind)
		assert.Equal(t, autodoc.LineRemoved, lines[1].Kind)
		assert.Equal(t, "b", lines[1].Before)
		assert.Equal(t, autodoc.LineRemoved, lines[2].Kind)
		assert.Equal(t, "c", lines[2].Before)
	})

	t.Run("empty texts yield no rows", func(t *testing.T) {
		t.Parallel()

		lines := autodoc.DeriveLines(&autodoc.Patch{})

		assert.Empty(t, lines)
	})

	t.Run("nil patch yields no rows", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, autodoc.DeriveLines(nil))
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	lines := []autodoc.DiffLine{
		{Kind: autodoc.LineAdded},
		{Kind: autodoc.LineAdded},
		{Kind: autodoc.LineRemoved},
		{Kind: autodoc.LineModified},
		{Kind: autodoc.LineUnchanged},
	}

	added, removed, modified := autodoc.Stats(lines)

	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, modified)
}
