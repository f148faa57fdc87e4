package vault

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFileName is the vault's git ignore file.
const IgnoreFileName = ".gitignore"

// ignorePattern returns the anchored .gitignore pattern for a link path.
func ignorePattern(rel string) string {
	return "/" + strings.Trim(filepath.ToSlash(rel), "/")
}

// EnsureIgnored appends the anchored pattern for rel to <root>/.gitignore
// unless an equivalent line is already present. It reports whether the file
// was changed.
func EnsureIgnored(root, rel string) (bool, error) {
	path := filepath.Join(root, IgnoreFileName)
	pattern := ignorePattern(rel)

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == pattern || line == pattern+"/" {
			return false, nil
		}
	}

	var b bytes.Buffer
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		b.WriteByte('\n')
	}
	b.WriteString(pattern)
	b.WriteByte('\n')

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write(b.Bytes()); err != nil {
		f.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}
