//go:build !windows

package counter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSCC writes a shell script that stands in for scc
func fakeSCC(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scc")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestSCCCount(t *testing.T) {
	bin := fakeSCC(t, `echo '[{"Name":"Go","Lines":10,"Code":8,"Blank":1,"Comment":1,"Complexity":3},{"Name":"YAML","Lines":4,"Code":4,"Blank":0,"Comment":0}]'`)

	records, err := NewSCC(bin).Count(context.Background(), "/anywhere")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Go", records[0].Language)
	assert.Equal(t, int64(8), records[0].Code)
	assert.Equal(t, int64(14), Sum(records).Lines)
}

func TestSCCCountFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-zero exit", `echo boom >&2; exit 2`},
		{"empty output", `exit 0`},
		{"null output", `echo null`},
		{"malformed output", `echo '{not json'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSCC(fakeSCC(t, tt.body)).Count(context.Background(), "/anywhere")
			assert.Error(t, err)
		})
	}
}

func TestSCCCheck(t *testing.T) {
	ok := NewSCC(fakeSCC(t, `echo "scc version 3.4.0"`))
	assert.NoError(t, ok.Check(context.Background()))

	missing := NewSCC(filepath.Join(t.TempDir(), "no-such-scc"))
	assert.ErrorIs(t, missing.Check(context.Background()), ErrNotFound)
}
