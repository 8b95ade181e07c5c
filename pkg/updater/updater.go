// Package updater checks GitHub for a newer compactview release.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// LatestReleaseURL is the GitHub API endpoint for the newest release.
const LatestReleaseURL = "https://api.github.com/repos/Dicklesworthstone/compactview/releases/latest"

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a release endpoint.
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a Checker for the public release endpoint with a short
// timeout so a slow network does not hold up the CLI.
func NewChecker() *Checker {
	return &Checker{
		URL:    LatestReleaseURL,
		Client: &http.Client{Timeout: 2 * time.Second},
	}
}

// Check returns the newer release if the latest tag is above current, or
// nil when current is up to date.
func (c *Checker) Check(ctx context.Context, current string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	if CompareVersions(rel.TagName, current) > 0 {
		return &rel, nil
	}
	return nil, nil
}

// CompareVersions returns 1 if v1 > v2, -1 if v1 < v2, 0 if equal, using
// semantic version precedence: a pre-release sorts below its release and
// "v1.2" equals "v1.2.0". The "v" prefix is optional. An unparsable version
// sorts below every valid one.
func CompareVersions(v1, v2 string) int {
	return semver.Compare(canonical(v1), canonical(v2))
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
