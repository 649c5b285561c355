// Package options provides a set of options that configure the behavior of the cfn-docgen program.
package options

import (
	"io"
	"os"

	"github.com/gruntwork-io/go-commons/env"
	"github.com/sirupsen/logrus"

	"github.com/gruntwork-io/cfn-docgen/util"
)

const (
	// DefaultDocsRepoURL is the git repository cloned when neither a local root nor a source URL is given.
	DefaultDocsRepoURL = "https://github.com/awsdocs/aws-cloudformation-user-guide"

	// DefaultDocsDir is the directory within the docs repository that holds the per-resource pages.
	DefaultDocsDir = "doc_source"

	// DefaultPagePattern matches the per-resource pages directly under the docs directory.
	DefaultPagePattern = "aws-resource-*.md"

	// DefaultOutputPath sends the extracted metadata to stdout.
	DefaultOutputPath = "-"

	// DefaultConfigName is the config file picked up from the working directory when --config is not given.
	DefaultConfigName = "cfn-docgen.hcl"

	// DefaultGitPath runs whatever git is on PATH. Override with the CFN_DOCGEN_GIT_PATH environment variable.
	DefaultGitPath = "git"

	// DefaultLogLevel is the log level used when --log-level is not given.
	DefaultLogLevel = logrus.InfoLevel
)

// DefaultExtraPages lists the pages appended to every listing in addition to the page pattern matches. The S3 bucket
// page is named aws-properties-s3-bucket.md upstream instead of following the aws-resource-* convention, so the
// pattern alone would miss it.
var DefaultExtraPages = []string{"aws-properties-s3-bucket.md"}

// DocgenOptions represents options that configure the behavior of the cfn-docgen program.
type DocgenOptions struct {
	// The working directory in which to resolve relative paths and run subprocesses
	WorkingDir string

	// Local directory containing the docs pages. When set, nothing is fetched.
	RootDir string

	// go-getter URL to fetch the docs pages from. Mutually exclusive with RootDir.
	SourceURL string

	// Git repository cloned when neither RootDir nor SourceURL is set
	RepoURL string

	// Directory within the cloned docs repository that holds the pages
	DocsDir string

	// Glob pattern matched directly under the docs directory
	PagePattern string

	// Pages appended to every listing regardless of PagePattern
	ExtraPages []string

	// Where to write the extracted metadata; "-" means stdout
	OutputPath string

	// Location of the cfn-docgen config file, if any
	ConfigPath string

	// Location of the git binary
	GitPath string

	// Log level
	LogLevel logrus.Level

	// Basic log entry
	Logger *logrus.Entry

	// If you want stdout to go somewhere other than os.stdout
	Writer io.Writer

	// If you want stderr to go somewhere other than os.stderr
	ErrWriter io.Writer

	// Environment variables at runtime
	Env map[string]string
}

// NewDocgenOptions creates a new DocgenOptions object with reasonable defaults for real usage.
func NewDocgenOptions() *DocgenOptions {
	return NewDocgenOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewDocgenOptionsWithWriters creates a new DocgenOptions object that sends its output and its logs to the given
// writers.
func NewDocgenOptionsWithWriters(stdout, stderr io.Writer) *DocgenOptions {
	return &DocgenOptions{
		RepoURL:     DefaultDocsRepoURL,
		DocsDir:     DefaultDocsDir,
		PagePattern: DefaultPagePattern,
		ExtraPages:  util.CloneStringList(DefaultExtraPages),
		OutputPath:  DefaultOutputPath,
		GitPath:     env.GetString(os.Getenv("CFN_DOCGEN_GIT_PATH"), DefaultGitPath),
		LogLevel:    DefaultLogLevel,
		Logger:      util.CreateLogEntryWithWriter(stderr, "", DefaultLogLevel),
		Writer:      stdout,
		ErrWriter:   stderr,
		Env:         map[string]string{},
	}
}

// NewDocgenOptionsForTest creates a new DocgenOptions object with reasonable defaults for test usage: debug logging
// and output captured in memory.
func NewDocgenOptionsForTest(stdout, stderr io.Writer) *DocgenOptions {
	opts := NewDocgenOptionsWithWriters(stdout, stderr)
	opts.LogLevel = logrus.DebugLevel
	opts.Logger = util.CreateLogEntryWithWriter(stderr, "", logrus.DebugLevel)

	return opts
}

// Clone creates a copy of this DocgenOptions. Lists and maps are cloned so the copy can be modified freely.
func (opts *DocgenOptions) Clone() *DocgenOptions {
	return &DocgenOptions{
		WorkingDir:  opts.WorkingDir,
		RootDir:     opts.RootDir,
		SourceURL:   opts.SourceURL,
		RepoURL:     opts.RepoURL,
		DocsDir:     opts.DocsDir,
		PagePattern: opts.PagePattern,
		ExtraPages:  util.CloneStringList(opts.ExtraPages),
		OutputPath:  opts.OutputPath,
		ConfigPath:  opts.ConfigPath,
		GitPath:     opts.GitPath,
		LogLevel:    opts.LogLevel,
		Logger:      opts.Logger,
		Writer:      opts.Writer,
		ErrWriter:   opts.ErrWriter,
		Env:         util.CloneStringMap(opts.Env),
	}
}
