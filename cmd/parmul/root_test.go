package main

import (
	"bytes"
	"io"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

var timingLine = regexp.MustCompile(`^\d+\.\d{6} seconds\n$`)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCmd_PrintsSeconds(t *testing.T) {
	stdout, _, err := execute(t, "--size", "32")
	require.NoError(t, err)
	require.Regexp(t, timingLine, stdout)
}

func TestRootCmd_VerifyAndVerbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-n", "17", "-w", "4", "--verify", "-v")
	require.NoError(t, err)
	require.Regexp(t, timingLine, stdout)
	require.Contains(t, stderr, "starting multiply")
	require.Contains(t, stderr, "verified against reference")
}

func TestRootCmd_InvalidSize(t *testing.T) {
	stdout, stderr, err := execute(t, "--size", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "parmul failed")
}

func TestRootCmd_NegativeWorkers(t *testing.T) {
	_, _, err := execute(t, "--size", "4", "--workers=-1")
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

func TestRun_ZeroWorkers(t *testing.T) {
	var out bytes.Buffer
	cfg := runConfig{size: 5, workers: 0, fill: 2, verify: true}
	require.NoError(t, run(cfg, &out, zerolog.New(io.Discard)))
	require.Regexp(t, timingLine, out.String())
}

func TestDescribeHost(t *testing.T) {
	info := describeHost()
	require.NotEmpty(t, info.Arch)
	require.Positive(t, info.CPUs)
	for _, f := range info.Features {
		require.NotEmpty(t, f)
	}
}
