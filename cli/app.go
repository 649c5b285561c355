// Package cli defines the cfn-docgen command line interface: one command
// that extracts resource metadata from the CloudFormation documentation and
// writes it as JSON.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gruntwork-io/go-commons/version"
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/cfn-docgen/config"
	"github.com/gruntwork-io/cfn-docgen/docgen"
	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/util"
)

const (
	FlagNameRoot       = "root"
	FlagNameSource     = "source"
	FlagNameOutput     = "output"
	FlagNameConfig     = "config"
	FlagNameWorkingDir = "working-dir"
	FlagNameLogLevel   = "log-level"
)

// NewApp creates the cfn-docgen CLI App.
func NewApp(writer io.Writer, errWriter io.Writer) *cli.App {
	opts := options.NewDocgenOptionsWithWriters(writer, errWriter)

	app := &cli.App{
		Name:      "cfn-docgen",
		Usage:     "cfn-docgen extracts the return values of every resource type in the AWS CloudFormation documentation:\nwhat Ref returns and which attribute names Fn::GetAtt accepts. The result is written as JSON.\nFor documentation, see https://github.com/gruntwork-io/cfn-docgen/.",
		UsageText: "cfn-docgen [global options]",
		Authors:   []*cli.Author{{Name: "Gruntwork", Email: "www.gruntwork.io"}},
		Version:   version.GetVersion(),
		Writer:    writer,
		ErrWriter: errWriter,
		Flags:     NewFlags(opts),
		Action: func(cliCtx *cli.Context) error {
			return runApp(cliCtx, opts)
		},
	}

	return app
}

// NewFlags returns the global flags, bound to the given options.
func NewFlags(opts *options.DocgenOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagNameRoot,
			Aliases:     []string{"r"},
			Usage:       "Read documentation pages from `DIR` instead of cloning the docs repository.",
			EnvVars:     []string{"CFN_DOCGEN_ROOT"},
			Destination: &opts.RootDir,
		},
		&cli.StringFlag{
			Name:        FlagNameSource,
			Aliases:     []string{"s"},
			Usage:       "Download documentation pages from `URL`. Any URL go-getter understands works here.",
			EnvVars:     []string{"CFN_DOCGEN_SOURCE"},
			Destination: &opts.SourceURL,
		},
		&cli.StringFlag{
			Name:        FlagNameOutput,
			Aliases:     []string{"o"},
			Usage:       "Write the extracted metadata to `FILE` instead of stdout.",
			EnvVars:     []string{"CFN_DOCGEN_OUTPUT"},
			Value:       options.DefaultOutputPath,
			Destination: &opts.OutputPath,
		},
		&cli.StringFlag{
			Name:        FlagNameConfig,
			Aliases:     []string{"c"},
			Usage:       "Read configuration from `FILE` instead of " + options.DefaultConfigName + " in the working directory.",
			EnvVars:     []string{"CFN_DOCGEN_CONFIG"},
			Destination: &opts.ConfigPath,
		},
		&cli.StringFlag{
			Name:        FlagNameWorkingDir,
			Usage:       "Resolve relative paths against `DIR` instead of the current directory.",
			EnvVars:     []string{"CFN_DOCGEN_WORKING_DIR"},
			Destination: &opts.WorkingDir,
		},
		&cli.StringFlag{
			Name:    FlagNameLogLevel,
			Usage:   "Set the log level.",
			EnvVars: []string{"CFN_DOCGEN_LOG_LEVEL"},
			Value:   options.DefaultLogLevel.String(),
		},
	}
}

// runApp is the action for the one and only command.
func runApp(cliCtx *cli.Context, opts *options.DocgenOptions) (finalErr error) {
	defer errors.Recover(func(cause error) {
		finalErr = cause
	})

	if err := initialSetup(cliCtx, opts); err != nil {
		return err
	}

	if cliCtx.Args().Present() {
		return errors.WithStackTrace(UnexpectedArg(cliCtx.Args().First()))
	}

	if opts.RootDir != "" && opts.SourceURL != "" {
		return errors.WithStackTrace(IncompatibleFlags{First: FlagNameRoot, Second: FlagNameSource})
	}

	configPath, err := config.FindConfigPath(opts)
	if err != nil {
		return err
	}

	if configPath != "" {
		opts.Logger.Debugf("Reading config file at %s", configPath)

		docgenConfig, err := config.ReadConfigFile(configPath)
		if err != nil {
			return err
		}

		// Flags the user passed explicitly win over the config file.
		outputPath := opts.OutputPath
		docgenConfig.UpdateOptions(opts)

		if cliCtx.IsSet(FlagNameOutput) {
			opts.OutputPath = outputPath
		}
	}

	// git is only involved when the docs repository gets cloned.
	if opts.RootDir == "" && opts.SourceURL == "" {
		if err := CheckGitVersion(cliCtx.Context, opts); err != nil {
			return err
		}
	}

	return docgen.Run(cliCtx.Context, opts)
}

func initialSetup(cliCtx *cli.Context, opts *options.DocgenOptions) error {
	logLevel, err := util.ParseLogLevel(cliCtx.String(FlagNameLogLevel))
	if err != nil {
		return err
	}

	opts.LogLevel = logLevel
	opts.Logger = util.CreateLogEntryWithWriter(opts.ErrWriter, "", logLevel)

	opts.Env = parseEnvironmentVariables(os.Environ())

	if opts.WorkingDir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return errors.WithStackTrace(err)
		}

		opts.WorkingDir = currentDir
	}

	opts.WorkingDir = filepath.ToSlash(opts.WorkingDir)

	return nil
}
