// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestDet(t *testing.T) {
	out, err := execute(t, "det", "--matrix", "1,2;3,4")
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)

	out, err = execute(t, "det", "-m", " 2, 0, 0 ; 0, 3, 0 ; 0, 0, 4 ")
	require.NoError(t, err)
	require.Equal(t, "24\n", out)
}

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix("1, 2;\n3 ,4;")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, m.RawMatrix().Data)

	_, err = parseMatrix("   ")
	require.ErrorIs(t, err, errNotSquare)

	_, err = parseMatrix(" ; ")
	require.ErrorIs(t, err, errNotSquare)
}

func TestDet_Errors(t *testing.T) {
	_, err := execute(t, "det", "--matrix", "1,2,3;4,5,6")
	require.ErrorIs(t, err, errNotSquare)

	_, err = execute(t, "det", "--matrix", "1,x;3,4")
	require.Error(t, err)

	big := strings.TrimSuffix(strings.Repeat(strings.TrimSuffix(strings.Repeat("1,", 9), ",")+";", 9), ";")
	_, err = execute(t, "det", "--matrix", big)
	require.ErrorIs(t, err, errUnsupported)

	_, err = execute(t, "det")
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	again, err := execute(t, "demo", "--seed", "1")
	require.NoError(t, err)
	require.Equal(t, out, again)
	require.True(t, strings.HasPrefix(out, "["))
	require.Equal(t, 6, strings.Count(out, ",")+1)

	out, err = execute(t, "demo", "--activation", "softmax", "-v")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	_, err = execute(t, "demo", "--activation", "tanh")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`inputs: 4
hidden_layers:
  - neurons: 6
    activation: relu
output_layer:
  neurons: 3
  activation: softmax
  loss: categorical_cross_entropy
`), 0o600))

	out, err := execute(t, "run", "--descriptor", path, "--batch", "3", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "sample "))
	require.Contains(t, out, "mean loss: ")

	again, err := execute(t, "run", "-d", path, "--batch", "3", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, err = execute(t, "run", "-d", path, "--batch", "0")
	require.ErrorIs(t, err, errBadBatch)

	_, err = execute(t, "run", "-d", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
