package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExperimentSelection(t *testing.T) {
	tests := []struct {
		opts    options
		want    experiment
		wantErr bool
	}{
		{options{hashes: true}, hashCount, false},
		{options{sizes: true}, filterSize, false},
		{options{}, 0, true},
		{options{hashes: true, sizes: true}, 0, true},
	}

	for _, tt := range tests {
		got, err := tt.opts.experiment()
		if tt.wantErr {
			require.ErrorIs(t, err, errSelection, "%+v", tt.opts)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestRunRejectsSelection(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, run(&buf, options{}), errSelection)
	require.ErrorIs(t, run(&buf, options{hashes: true, sizes: true}), errSelection)
	require.Zero(t, buf.Len())
}

func TestRunSizes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, options{sizes: true, seed: 42}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 45)
	for _, line := range lines {
		r, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, r, 0.0)
		require.LessOrEqual(t, r, 1.0)
	}
}

func TestRunHashes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, options{hashes: true, seed: 42}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 99)
}

func TestRunSeedReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(&a, options{sizes: true, seed: 7}))
	require.NoError(t, run(&b, options{sizes: true, seed: 7}))
	require.Equal(t, a.String(), b.String())
}
