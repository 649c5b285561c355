// Package shell runs external commands with their output captured.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
)

// CmdOutput holds the output streams captured from a finished command.
type CmdOutput struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// RunCommandWithOutput runs the given command in workingDir, capturing its stdout and stderr rather than connecting
// them to the terminal. The command is killed if the given context is canceled. When workingDir is empty, the
// command runs in the working directory from opts.
func RunCommandWithOutput(ctx context.Context, opts *options.DocgenOptions, workingDir string, command string, args ...string) (*CmdOutput, error) {
	opts.Logger.Debugf("Running command: %s %s", command, strings.Join(args, " "))

	if workingDir == "" {
		workingDir = opts.WorkingDir
	}

	cmd := exec.CommandContext(ctx, command, args...)

	var output CmdOutput

	cmd.Stdin = nil
	cmd.Stdout = &output.Stdout
	cmd.Stderr = &output.Stderr
	cmd.Env = toEnvVarsList(opts.Env)
	cmd.Dir = workingDir

	if err := cmd.Run(); err != nil {
		processErr := ProcessExecutionError{
			Err:        err,
			Output:     output,
			WorkingDir: workingDir,
			Command:    command,
			Args:       args,
		}

		return &output, errors.WithStackTrace(processErr)
	}

	return &output, nil
}

func toEnvVarsList(envVarsAsMap map[string]string) []string {
	envVarsAsList := []string{}
	for key, value := range envVarsAsMap {
		envVarsAsList = append(envVarsAsList, fmt.Sprintf("%s=%s", key, value))
	}

	return envVarsAsList
}

// GetExitCode returns the exit code of a command. If the error does not implement errors.IErrorCode and is not an
// exec.ExitError or *multierror.Error type, the error is returned along with exit code 0.
func GetExitCode(err error) (int, error) {
	if exiterr, ok := errors.Unwrap(err).(errors.IErrorCode); ok {
		return exiterr.ExitStatus()
	}

	if exiterr, ok := errors.Unwrap(err).(*exec.ExitError); ok {
		status := exiterr.Sys().(syscall.WaitStatus)
		return status.ExitStatus(), nil
	}

	if multiErr, ok := errors.Unwrap(err).(*multierror.Error); ok {
		for _, wrappedErr := range multiErr.Errors {
			exitCode, exitCodeErr := GetExitCode(wrappedErr)
			if exitCodeErr == nil {
				return exitCode, nil
			}
		}
	}

	return 0, err
}

// ProcessExecutionError is returned when a command fails. It carries the captured output so callers can surface
// whatever the command printed to stderr.
type ProcessExecutionError struct {
	Err        error
	Output     CmdOutput
	WorkingDir string
	Command    string
	Args       []string
}

func (err ProcessExecutionError) Error() string {
	return fmt.Sprintf("Failed to execute \"%s %s\" in %s\n%s\n%v",
		err.Command,
		strings.Join(err.Args, " "),
		err.WorkingDir,
		err.Output.Stderr.String(),
		err.Err,
	)
}

func (err ProcessExecutionError) ExitStatus() (int, error) {
	return GetExitCode(err.Err)
}

func (err ProcessExecutionError) Unwrap() error {
	return err.Err
}
