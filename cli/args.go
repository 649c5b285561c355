package cli

import (
	"fmt"
	"strings"
)

func parseEnvironmentVariables(environment []string) map[string]string {
	environmentMap := make(map[string]string)

	for i := 0; i < len(environment); i++ {
		variableSplit := strings.SplitN(environment[i], "=", 2)

		if len(variableSplit) == 2 {
			environmentMap[strings.TrimSpace(variableSplit[0])] = variableSplit[1]
		}
	}

	return environmentMap
}

// Custom error types

type UnexpectedArg string

func (arg UnexpectedArg) Error() string {
	return fmt.Sprintf("Unexpected argument %q. cfn-docgen does not take positional arguments; see --help for the available flags.", string(arg))
}

type IncompatibleFlags struct {
	First  string
	Second string
}

func (err IncompatibleFlags) Error() string {
	return fmt.Sprintf("The --%s and --%s options are mutually exclusive", err.First, err.Second)
}
