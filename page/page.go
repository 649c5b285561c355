// Package page parses the per-resource markdown pages of the CloudFormation user guide. Each page is semi-structured
// prose, so extraction leans on a handful of fixed markers: the title heading carries the resource type name, lines
// mentioning -fn::getatt carry attribute names, and the narrow region between the "### Ref" and "### Fn::GetAtt"
// headings carries the sentence describing what Ref returns.
package page

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/util"
)

const (
	refHeading    = "### Ref"
	getAttHeading = "### Fn::GetAtt"
	getAttMarker  = "-fn::getatt"

	// refReturnsPhrase gates the Ref regex: only sentences about resolving the logical ID are candidates.
	refReturnsPhrase = "logical ID of this resource to the intrinsic `Ref` function"
)

// refReturnsRegexp captures the description following "`Ref` returns". The guide escapes sentence punctuation as
// "\." so the capture stops at the first backslash (or comma).
var refReturnsRegexp = regexp.MustCompile("`Ref` returns\\s*([^\\\\,]+)")

// ResourcePage is one user guide page held in memory: the raw first line plus every non-blank line with surrounding
// whitespace trimmed. Each extraction re-scans the cached lines, keeping the extractions independent of one another.
type ResourcePage struct {
	path      string
	firstLine string
	lines     []string
}

// ParseFile reads the page at the given path fully into memory.
func ParseFile(path string) (*ResourcePage, error) {
	content, err := util.ReadFileAsString(path)
	if err != nil {
		return nil, err
	}

	return ParseString(path, content), nil
}

// ParseString builds a page from content already in memory. The path is only used in error messages.
func ParseString(path string, content string) *ResourcePage {
	rawLines := strings.Split(content, "\n")

	firstLine := ""
	if len(rawLines) > 0 {
		firstLine = rawLines[0]
	}

	var lines []string

	for _, rawLine := range rawLines {
		if line := strings.TrimSpace(rawLine); line != "" {
			lines = append(lines, line)
		}
	}

	return &ResourcePage{path: path, firstLine: firstLine, lines: lines}
}

// Path returns the location the page was read from.
func (page *ResourcePage) Path() string {
	return page.path
}

// ResourceName derives the resource type name from the page's title heading. The first line of a resource page looks
// like `# AWS::SQS::Queue<a name="aws-resource-sqs-queue"></a>`: the name is the text between the first "#" and the
// first "<", trimmed.
func (page *ResourcePage) ResourceName() (string, error) {
	segments := strings.Split(page.firstLine, "#")
	if len(segments) < 2 {
		return "", errors.WithStackTrace(MalformedPageHeading{Path: page.path, Heading: page.firstLine})
	}

	name := strings.TrimSpace(segments[1])
	name = strings.TrimSpace(strings.Split(name, "<")[0])

	return name, nil
}

// GetAttTargets returns the attribute names the page advertises for Fn::GetAtt, in document order, duplicates kept.
// Attribute lines carry an anchor containing -fn::getatt and start with the attribute name in backticks; the name is
// the first whitespace-delimited token with the backticks stripped.
func (page *ResourcePage) GetAttTargets() []string {
	targets := []string{}

	for _, line := range page.lines {
		if !strings.Contains(line, getAttMarker) {
			continue
		}

		target := strings.Fields(line)[0]
		targets = append(targets, strings.ReplaceAll(target, "`", ""))
	}

	return targets
}

// Ref returns the description of what the Ref intrinsic resolves to for this resource, or nil when the page does not
// document one. Only the region after a "### Ref" heading and before the next "### Fn::GetAtt" heading is searched,
// since the GetAtt section uses similar phrasing. Finding more than one candidate means the page (or this parser) is
// ambiguous about a value there must be exactly one of, so that is an error rather than a silent pick.
func (page *ResourcePage) Ref() (*string, error) {
	candidates := []string{}
	tracking := false

	for _, line := range page.lines {
		if strings.HasPrefix(line, refHeading) {
			tracking = true
		} else if strings.HasPrefix(line, getAttHeading) {
			tracking = false
		}

		if !tracking || !strings.Contains(line, refReturnsPhrase) {
			continue
		}

		if match := refReturnsRegexp.FindStringSubmatch(line); match != nil {
			candidates = append(candidates, match[1])
		}
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return &candidates[0], nil
	default:
		return nil, errors.WithStackTrace(AmbiguousRefCandidates{Resource: page.describe(), Candidates: candidates})
	}
}

// describe names the page for error messages, preferring the resource name and falling back to the file path for
// pages whose heading cannot be parsed.
func (page *ResourcePage) describe() string {
	name, err := page.ResourceName()
	if err != nil {
		return page.path
	}

	return name
}

// MalformedPageHeading is returned when the first line of a page does not contain a "#" heading to take the resource
// type name from.
type MalformedPageHeading struct {
	Path    string
	Heading string
}

func (err MalformedPageHeading) Error() string {
	return fmt.Sprintf("Malformed page heading in %s: expected a line like \"# AWS::Service::Resource\", got %q", err.Path, err.Heading)
}

// AmbiguousRefCandidates is returned when more than one sentence in the Ref section of a page matches the Ref-returns
// pattern.
type AmbiguousRefCandidates struct {
	Resource   string
	Candidates []string
}

func (err AmbiguousRefCandidates) Error() string {
	return fmt.Sprintf("too many ref target candidates for %s: %q", err.Resource, err.Candidates)
}
