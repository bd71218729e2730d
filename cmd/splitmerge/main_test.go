package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		input, output string
	}{
		{"1\n1 1\n1 1\n", "0 1\n"},
		{"3\n1 3\n2 1 2\n", "2 1\n"},
		{"7 2 4 3 4 1 1 2 3", "5 20\n"},
	}

	for _, test := range tests {
		var out bytes.Buffer
		require.NoError(t, run(strings.NewReader(test.input), &out, false))
		require.Equal(t, test.output, out.String())
	}
}

func TestRunVerbose(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader("5 2 2 3 3 2 1 2"), &out, true))
	require.Equal(t, "2 1\n", out.String())
	require.Contains(t, logs.String(), "segment [0, 2): trap, skipped")
	require.Contains(t, logs.String(), "segment [2, 5): 2 operations, 1 orderings")
}

func TestRunInvalid(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(strings.NewReader("3 1 3 1 2"), &out, false))
	require.Empty(t, out.String())
}
