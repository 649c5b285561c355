// Package config handles the optional cfn-docgen configuration file. The
// file is HCL by default and JSON with a .json extension, and it overrides
// where documentation pages come from and where the output goes. Command
// line flags the user passes explicitly always win over the config file.
package config

import (
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/util"
)

// DocgenConfig represents a parsed cfn-docgen config file.
type DocgenConfig struct {
	Source *SourceConfig `hcl:"source,block"`
	Output *string       `hcl:"output,optional"`
}

// SourceConfig is the source block of a config file. Every field is
// optional and falls back to the corresponding default. Setting extra_pages
// to an empty list turns off the built-in extra pages entirely.
type SourceConfig struct {
	RepoURL    *string  `hcl:"repo_url,optional"`
	DocsDir    *string  `hcl:"docs_dir,optional"`
	Pattern    *string  `hcl:"pattern,optional"`
	ExtraPages []string `hcl:"extra_pages,optional"`
}

// DefaultConfigPath returns the path of the config file picked up from the
// given directory when --config is not passed.
func DefaultConfigPath(workingDir string) string {
	return util.JoinPath(workingDir, options.DefaultConfigName)
}

// FindConfigPath returns the config file path for this run: the explicitly
// configured one (homedir expanded and resolved against the working
// directory), or the default if a file exists there, or "" when there is no
// config file to read.
func FindConfigPath(opts *options.DocgenOptions) (string, error) {
	if opts.ConfigPath != "" {
		return util.CanonicalPath(opts.ConfigPath, opts.WorkingDir)
	}

	defaultPath := DefaultConfigPath(opts.WorkingDir)
	if util.FileExists(defaultPath) {
		return defaultPath, nil
	}

	return "", nil
}

// ReadConfigFile parses the cfn-docgen config file at the given path.
func ReadConfigFile(configPath string) (*DocgenConfig, error) {
	configString, err := util.ReadFileAsString(configPath)
	if err != nil {
		return nil, err
	}

	return ParseConfigString(configString, configPath)
}

// ParseConfigString parses a config given as a string. The filename is only
// used for error messages and for picking the HCL or JSON syntax.
func ParseConfigString(configString string, filename string) (*DocgenConfig, error) {
	file, err := parseConfigString(configString, filename)
	if err != nil {
		return nil, err
	}

	config := &DocgenConfig{}
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags != nil && diags.HasErrors() {
		return nil, errors.WithStackTrace(diags)
	}

	return config, nil
}

func parseConfigString(configString string, filename string) (file *hcl.File, err error) {
	// The HCL2 parser and especially cty conversions will panic in many types of errors, so we have to recover from
	// those panics here and convert them to normal errors
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.WithStackTrace(PanicWhileParsingConfig{ConfigFile: filename, RecoveredValue: recovered})
		}
	}()

	parser := hclparse.NewParser()

	var diags hcl.Diagnostics

	if filepath.Ext(filename) == ".json" {
		file, diags = parser.ParseJSON([]byte(configString), filename)
	} else {
		file, diags = parser.ParseHCL([]byte(configString), filename)
	}

	if diags != nil && diags.HasErrors() {
		return nil, errors.WithStackTrace(diags)
	}

	return file, nil
}

// UpdateOptions applies every value present in the config to opts.
func (config *DocgenConfig) UpdateOptions(opts *options.DocgenOptions) {
	if config.Output != nil {
		opts.OutputPath = *config.Output
	}

	source := config.Source
	if source == nil {
		return
	}

	if source.RepoURL != nil {
		opts.RepoURL = *source.RepoURL
	}

	if source.DocsDir != nil {
		opts.DocsDir = *source.DocsDir
	}

	if source.Pattern != nil {
		opts.PagePattern = *source.Pattern
	}

	if source.ExtraPages != nil {
		opts.ExtraPages = util.CloneStringList(source.ExtraPages)
	}
}

// PanicWhileParsingConfig wraps a panic raised inside the HCL parser.
type PanicWhileParsingConfig struct {
	ConfigFile     string
	RecoveredValue interface{}
}

func (err PanicWhileParsingConfig) Error() string {
	return fmt.Sprintf("Recovering panic while parsing '%s'. Got error of type '%v': %v", err.ConfigFile, reflect.TypeOf(err.RecoveredValue), err.RecoveredValue)
}
