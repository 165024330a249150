package worddiff_test

import (
	"strings"
	"testing"

	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/worddiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSegments(segs []autodoc.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func changedText(segs []autodoc.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Changed {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func TestDiffer_Diff(t *testing.T) {
	t.Parallel()

	d := worddiff.NewDiffer()

	t.Run("identical strings are one unchanged segment", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff("returns the token", "returns the token")

		require.Len(t, oldSegs, 1)
		require.Len(t, newSegs, 1)
		assert.False(t, oldSegs[0].Changed)
		assert.False(t, newSegs[0].Changed)
	})

	t.Run("single word substitution", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff(
			"the connection times out after 30 seconds",
			"the connection times out after 60 seconds",
		)

		assert.Equal(t, "the connection times out after 30 seconds", joinSegments(oldSegs))
		assert.Equal(t, "the connection times out after 60 seconds", joinSegments(newSegs))
		assert.Equal(t, "30", changedText(oldSegs))
		assert.Equal(t, "60", changedText(newSegs))
	})

	t.Run("dissimilar lines become full replacements", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff("alpha beta gamma", "zx qy wv uz")

		require.Len(t, oldSegs, 1)
		require.Len(t, newSegs, 1)
		assert.True(t, oldSegs[0].Changed)
		assert.True(t, newSegs[0].Changed)
	})

	t.Run("empty old marks everything added", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff("", "new text")

		assert.Nil(t, oldSegs)
		require.Len(t, newSegs, 1)
		assert.True(t, newSegs[0].Changed)
	})

	t.Run("empty new marks everything removed", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff("old text", "")

		require.Len(t, oldSegs, 1)
		assert.True(t, oldSegs[0].Changed)
		assert.Nil(t, newSegs)
	})

	t.Run("segments reassemble the originals exactly", func(t *testing.T) {
		t.Parallel()

		old := "call `Apply(ctx, id)` to approve the patch"
		new := "call `Apply(ctx, id, approvedBy)` to approve the patch"

		oldSegs, newSegs := d.Diff(old, new)

		assert.Equal(t, old, joinSegments(oldSegs))
		assert.Equal(t, new, joinSegments(newSegs))
	})

	t.Run("unicode prose", func(t *testing.T) {
		t.Parallel()

		oldSegs, newSegs := d.Diff("документация устарела", "документация обновлена")

		assert.Equal(t, "документация устарела", joinSegments(oldSegs))
		assert.Equal(t, "документация обновлена", joinSegments(newSegs))
		assert.Equal(t, "устарела", changedText(oldSegs))
		assert.Equal(t, "обновлена", changedText(newSegs))
	})
}
