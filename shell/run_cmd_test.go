//go:build linux || darwin
// +build linux darwin

package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
)

func newTestOptions() *options.DocgenOptions {
	opts := options.NewDocgenOptionsForTest(new(bytes.Buffer), new(bytes.Buffer))
	opts.Env = map[string]string{"PATH": os.Getenv("PATH")}

	return opts
}

func TestRunCommandWithOutputCapturesStdout(t *testing.T) {
	t.Parallel()

	opts := newTestOptions()

	output, err := RunCommandWithOutput(context.Background(), opts, t.TempDir(), "sh", "-c", "echo hello from stdout")
	require.NoError(t, err)
	assert.Equal(t, "hello from stdout\n", output.Stdout.String())
	assert.Empty(t, output.Stderr.String())
}

func TestRunCommandWithOutputCapturesStderrOnFailure(t *testing.T) {
	t.Parallel()

	opts := newTestOptions()
	workingDir := t.TempDir()

	output, err := RunCommandWithOutput(context.Background(), opts, workingDir, "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, output.Stderr.String(), "oops")

	processErr, ok := errors.Unwrap(err).(ProcessExecutionError)
	require.True(t, ok, "expected a ProcessExecutionError, got %T", errors.Unwrap(err))
	assert.Equal(t, "sh", processErr.Command)
	assert.Equal(t, workingDir, processErr.WorkingDir)
	assert.Contains(t, err.Error(), "oops")
	assert.Contains(t, err.Error(), "Failed to execute")

	exitCode, exitCodeErr := GetExitCode(err)
	require.NoError(t, exitCodeErr)
	assert.Equal(t, 3, exitCode)
}

func TestRunCommandWithOutputMissingBinary(t *testing.T) {
	t.Parallel()

	opts := newTestOptions()

	_, err := RunCommandWithOutput(context.Background(), opts, t.TempDir(), "this-binary-does-not-exist-2f9c1", "--version")
	require.Error(t, err)
}

type exitCodeStub int

func (code exitCodeStub) Error() string {
	return fmt.Sprintf("stub exit code %d", int(code))
}

func (code exitCodeStub) ExitStatus() (int, error) {
	return int(code), nil
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()

	plainErr := fmt.Errorf("some plain error")

	testCases := []struct {
		err          error
		expectedCode int
		expectedErr  error
	}{
		{exitCodeStub(42), 42, nil},
		{errors.WithStackTrace(exitCodeStub(7)), 7, nil},
		{multierror.Append(nil, fmt.Errorf("not an exit error"), exitCodeStub(5)), 5, nil},
		{plainErr, 0, plainErr},
	}

	for _, testCase := range testCases {
		actualCode, actualErr := GetExitCode(testCase.err)
		assert.Equal(t, testCase.expectedCode, actualCode, "For error %v", testCase.err)
		assert.Equal(t, testCase.expectedErr, actualErr, "For error %v", testCase.err)
	}
}
