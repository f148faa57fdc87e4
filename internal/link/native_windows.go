//go:build windows

package link

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type junctionCreator struct{}

// Native returns the platform link creator: directory junctions, which do
// not require administrator rights or developer mode.
func Native() Creator {
	return junctionCreator{}
}

func (junctionCreator) CreateDirectoryLink(target, link string) error {
	// mklink is a cmd.exe builtin; arguments are still passed as a vector.
	c := exec.Command("cmd", "/c", "mklink", "/J", link, target)
	out, err := c.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("mklink /J: %w", errors.New(msg))
		}
		return fmt.Errorf("mklink /J: %w", err)
	}
	return nil
}
