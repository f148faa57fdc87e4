//go:build !windows

package link

import "os"

type symlinkCreator struct{}

// Native returns the platform link creator: symbolic links.
func Native() Creator {
	return symlinkCreator{}
}

func (symlinkCreator) CreateDirectoryLink(target, link string) error {
	return os.Symlink(target, link)
}
