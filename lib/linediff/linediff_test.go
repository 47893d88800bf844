package linediff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualTexts(t *testing.T) {
	t.Parallel()

	diffs := Do("a=1\nb=2\n", "a=1\nb=2\n")

	assert.Equal(t, []Diff{{Type: DiffEqual, Lines: []string{"a=1\n", "b=2\n"}}}, diffs)
	assert.False(t, Summarize(diffs).Changed())
}

func TestChangedLine(t *testing.T) {
	t.Parallel()

	diffs := Do("a=1\nb=2\nc=3\n", "a=1\nb=5\nc=3\n")

	stats := Summarize(diffs)
	assert.Equal(t, Stats{Inserted: 1, Deleted: 1}, stats)
	assert.True(t, stats.Changed())
}

func TestAllInserted(t *testing.T) {
	t.Parallel()

	diffs := Do("", "a=1\nb=2")

	assert.Equal(t, []Diff{{Type: DiffInsert, Lines: []string{"a=1\n", "b=2"}}}, diffs)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := Write(out, Do("a=1\nb=2\n", "a=1\nb=3\n"))
	require.NoError(t, err)

	assert.Equal(t, "- b=2\n+ b=3\n", out.String())
}
