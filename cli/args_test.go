package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvironmentVariables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		environmentVariables []string
		expectedVariables    map[string]string
	}{
		{
			[]string{},
			map[string]string{},
		},
		{
			[]string{"foobar"},
			map[string]string{},
		},
		{
			[]string{"foo=bar"},
			map[string]string{"foo": "bar"},
		},
		{
			[]string{"foo=bar", "goo=gar"},
			map[string]string{"foo": "bar", "goo": "gar"},
		},
		{
			[]string{"foo=bar   "},
			map[string]string{"foo": "bar   "},
		},
		{
			[]string{"foo   =bar   "},
			map[string]string{"foo": "bar   "},
		},
		{
			[]string{"foo=composite=bar"},
			map[string]string{"foo": "composite=bar"},
		},
	}

	for _, testCase := range testCases {
		actualVariables := parseEnvironmentVariables(testCase.environmentVariables)
		assert.Equal(t, testCase.expectedVariables, actualVariables)
	}
}

func TestCustomErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Contains(t, UnexpectedArg("extract").Error(), `Unexpected argument "extract"`)
	assert.Contains(t, IncompatibleFlags{First: FlagNameRoot, Second: FlagNameSource}.Error(), "--root and --source options are mutually exclusive")
}
