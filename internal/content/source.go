package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/folio/internal/logger"
)

// ResolveSourceLinks fills the Source link of projects that have a SourceDir but no source
// destination, using the origin remote of that git checkout. Projects that cannot be resolved
// keep their current link. The input slice is not modified.
func ResolveSourceLinks(projects []Project, log *logger.Logger) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)

	for i := range out {
		p := &out[i]
		if p.SourceDir == "" || HasLink(p.Source) {
			continue
		}

		link, err := originURL(p.SourceDir)
		if err != nil {
			log.WithFields(map[string]any{"project": p.Title, "dir": p.SourceDir}).Warn(err, "source link not resolved")
			if p.Source == "" {
				p.Source = Placeholder
			}
			continue
		}
		p.Source = link
	}
	return out
}

func originURL(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("lookup origin: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.New("origin has no url")
	}

	link, ok := browsableURL(urls[0])
	if !ok {
		return "", fmt.Errorf("origin url %q is not browsable", urls[0])
	}
	return link, nil
}

// browsableURL rewrites a git remote into the https address a browser can open.
// Local paths and unknown schemes are rejected.
func browsableURL(remote string) (string, bool) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return "", false
	}

	// scp-like syntax: git@github.com:owner/repo.git
	if !strings.Contains(remote, "://") {
		at := strings.Index(remote, "@")
		colon := strings.Index(remote, ":")
		if at < 0 || colon < at {
			return "", false
		}
		host := remote[at+1 : colon]
		path := strings.TrimPrefix(remote[colon+1:], "/")
		if host == "" || path == "" {
			return "", false
		}
		return "https://" + host + "/" + strings.TrimSuffix(path, ".git"), true
	}

	parsed, err := url.Parse(remote)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	switch parsed.Scheme {
	case "http", "https", "ssh", "git":
	default:
		return "", false
	}

	return "https://" + parsed.Hostname() + "/" + strings.TrimSuffix(strings.TrimPrefix(parsed.Path, "/"), ".git"), true
}
