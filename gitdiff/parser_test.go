package gitdiff_test

import (
	"testing"

	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/gitdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Parser implements autodoc.DiffTextParser.
var _ autodoc.DiffTextParser = (*gitdiff.Parser)(nil)

const sampleDiff = `diff --git a/docs/setup.md b/docs/setup.md
index 83db48f..bf269f4 100644
--- a/docs/setup.md
+++ b/docs/setup.md
@@ -1,3 +1,3 @@
 # Setup
-Install version 1.2 of the CLI.
+Install version 2.0 of the CLI.
 Run the init command.
`

func TestParser_Lines(t *testing.T) {
	t.Parallel()

	p := gitdiff.NewParser()

	lines, err := p.Lines(sampleDiff)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, autodoc.LineUnchanged, lines[0].Kind)
	assert.Equal(t, "# Setup", lines[0].Before)
	assert.Equal(t, 1, lines[0].Num)

	assert.Equal(t, autodoc.LineRemoved, lines[1].Kind)
	assert.Equal(t, "Install version 1.2 of the CLI.", lines[1].Before)
	assert.Equal(t, 2, lines[1].Num)

	assert.Equal(t, autodoc.LineAdded, lines[2].Kind)
	assert.Equal(t, "Install version 2.0 of the CLI.", lines[2].After)
	assert.Equal(t, 2, lines[2].Num)

	assert.Equal(t, autodoc.LineUnchanged, lines[3].Kind)
	assert.Equal(t, "Run the init command.", lines[3].Before)
	assert.Equal(t, 3, lines[3].Num)
}

func TestParser_Lines_Garbage(t *testing.T) {
	t.Parallel()

	p := gitdiff.NewParser()

	lines, err := p.Lines("not a diff at all")
	if err == nil {
		assert.Empty(t, lines)
	}
}
