// Package docgen drives a full extraction run: list the documentation pages
// from the configured source, parse each one, and write the collected
// resource metadata as JSON.
package docgen

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/page"
	"github.com/gruntwork-io/cfn-docgen/source"
	"github.com/gruntwork-io/cfn-docgen/util"
	"github.com/hashicorp/go-multierror"
)

// Run extracts resource metadata from every page the configured source
// provides and writes the result to the configured output. A failure on any
// single page aborts the whole run.
func Run(ctx context.Context, opts *options.DocgenOptions) (finalErr error) {
	src, err := source.NewSource(opts)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			finalErr = multierror.Append(finalErr, closeErr).ErrorOrNil()
		}
	}()

	files, err := src.Files(ctx)
	if err != nil {
		return err
	}

	opts.Logger.Infof("Extracting resource metadata from %d pages", len(files))

	results := NewResultSet()

	for _, path := range files {
		opts.Logger.Debugf("Processing page %s", path)

		resourcePage, err := page.ParseFile(path)
		if err != nil {
			return err
		}

		name, err := resourcePage.ResourceName()
		if err != nil {
			return err
		}

		ref, err := resourcePage.Ref()
		if err != nil {
			return err
		}

		results.Put(name, &ResourceRecord{
			Targets: resourcePage.GetAttTargets(),
			Ref:     ref,
		})
	}

	return writeResults(opts, results)
}

func writeResults(opts *options.DocgenOptions, results *ResultSet) error {
	if opts.OutputPath == "" || opts.OutputPath == options.DefaultOutputPath {
		return encodeResults(opts.Writer, results)
	}

	outputPath, err := util.CanonicalPath(opts.OutputPath, opts.WorkingDir)
	if err != nil {
		return err
	}

	opts.Logger.Infof("Writing resource metadata for %d resource types to %s", results.Len(), outputPath)

	file, err := os.Create(outputPath)
	if err != nil {
		return errors.WithStackTraceAndPrefix(err, "Error creating output file at path %s", opts.OutputPath)
	}

	if err := encodeResults(file, results); err != nil {
		file.Close()
		return err
	}

	return errors.WithStackTrace(file.Close())
}

func encodeResults(writer io.Writer, results *ResultSet) error {
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return errors.WithStackTrace(encoder.Encode(results))
}
