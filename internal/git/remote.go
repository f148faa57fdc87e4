package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedRemote is returned when a remote identifier matches neither the
// SSH (user@host:path) nor the HTTP(S) (scheme://host/path) shape.
var ErrMalformedRemote = errors.New("malformed remote identifier")

// Remote is a parsed remote repository identifier.
type Remote struct {
	Host    string // e.g. "github.com"
	Org     string // first path segment
	Project string // remaining segments joined by "/", may be empty
}

// RelPath returns the path used for both the clone destination below the
// first source root and the default link below the vault root.
// A single-segment remote (git@host:org.git) has no project path and maps to
// its organization.
func (r Remote) RelPath() string {
	if r.Project != "" {
		return r.Project
	}
	return r.Org
}

// String renders the remote as "org/project" (or just "org").
func (r Remote) String() string {
	if r.Project == "" {
		return r.Org
	}
	return r.Org + "/" + r.Project
}

// ParseRemote parses an SSH-style (git@github.com:org/repo.git) or
// HTTP(S)-style (https://github.com/org/repo.git) remote identifier.
// On failure the zero Remote is returned together with an error wrapping
// ErrMalformedRemote.
func ParseRemote(s string) (Remote, error) {
	s = strings.TrimSpace(s)

	var host, path string
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		u, err := url.Parse(s)
		if err != nil || u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
			return Remote{}, malformed(s)
		}
		host, path = u.Hostname(), u.Path
	case !strings.Contains(s, "://"):
		at := strings.Index(s, "@")
		if at <= 0 {
			return Remote{}, malformed(s)
		}
		user, rest := s[:at], s[at+1:]
		if strings.ContainsAny(user, "/:") {
			return Remote{}, malformed(s)
		}
		colon := strings.Index(rest, ":")
		if colon <= 0 || strings.Contains(rest[:colon], "/") {
			return Remote{}, malformed(s)
		}
		host, path = rest[:colon], rest[colon+1:]
	default:
		return Remote{}, malformed(s)
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return Remote{}, malformed(s)
	}

	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			return Remote{}, malformed(s)
		}
	}

	return Remote{
		Host:    host,
		Org:     segments[0],
		Project: strings.Join(segments[1:], "/"),
	}, nil
}

func malformed(s string) error {
	return fmt.Errorf("%w: %q (expected user@host:org/project.git or https://host/org/project.git)", ErrMalformedRemote, s)
}
