package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScaleSkipsEmptyBands(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, writeScale(&sb, 1, 30))

	out := sb.String()
	assert.Regexp(t, `\n0 +15-15\n`, out)
	assert.NotContains(t, out, "16-14")
	assert.Regexp(t, `\n1 +19-11\n`, out)
}

func TestImpRange(t *testing.T) {
	assert.Equal(t, "3", impRange(3, 3))
	assert.Equal(t, "3-5", impRange(3, 5))
}
