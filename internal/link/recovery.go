package link

import "fmt"

// RecoveryCommand returns the shell command a user can run to create the
// link by hand on the given platform family (a GOOS value).
func RecoveryCommand(goos, target, link string) string {
	if goos == "windows" {
		return fmt.Sprintf(`mklink /J "%s" "%s"`, link, target)
	}
	return fmt.Sprintf(`ln -s "%s" "%s"`, target, link)
}
