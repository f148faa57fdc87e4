package config

import (
	"fmt"
	"strings"
)

// validateExclude checks that every discover.exclude entry is a plain
// directory name rather than a path or pattern.
func validateExclude(names []string) error {
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid discover.exclude[%d]: empty name", i)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid discover.exclude[%d] %q: must be a directory name, not a path", i, name)
		}
		if name == "." || name == ".." {
			return fmt.Errorf("invalid discover.exclude[%d] %q: must be a directory name", i, name)
		}
	}
	return nil
}
