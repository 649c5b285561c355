package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/cfn-docgen/cli"
	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/shell"
	"github.com/gruntwork-io/cfn-docgen/util"
)

// The main entrypoint for cfn-docgen
func main() {
	defer errors.Recover(checkForErrorsAndExit)

	app := cli.NewApp(os.Stdout, os.Stderr)
	err := app.RunContext(context.Background(), os.Args)

	checkForErrorsAndExit(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(err error) {
	if err == nil {
		os.Exit(0)
	}

	logger := util.CreateLogEntry("", options.DefaultLogLevel)
	if os.Getenv("CFN_DOCGEN_DEBUG") != "" {
		logger.Error(errors.PrintErrorWithStackTrace(err))
	} else {
		logger.Error(err.Error())
	}

	// exit with the underlying error code
	exitCode, exitCodeErr := shell.GetExitCode(err)
	if exitCodeErr != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}
