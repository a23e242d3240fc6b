package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhabedank/prd-analyzer/internal/tui"
	"k8s.io/klog/v2"
)

const (
	// GitHubRepo is the repository polled for releases.
	GitHubRepo = "dhabedank/prd-analyzer"

	// CheckInterval throttles release polling to once a day.
	CheckInterval = 24 * time.Hour
)

// GitHubRelease is the subset of the releases API response we read.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult holds the result of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// CheckForUpdate checks whether a newer release exists. It returns nil
// when the check is throttled, the build is a dev build, or anything
// goes wrong; startup must never block or fail on this.
func CheckForUpdate(currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	if checkedRecently() {
		return nil
	}
	touchCheckMarker()

	latest, err := fetchLatestRelease()
	if err != nil {
		klog.V(4).Infof("release check failed: %v", err)
		return nil
	}

	latestClean := strings.TrimPrefix(latest.TagName, "v")
	currentClean := strings.TrimPrefix(currentVersion, "v")
	if !isNewerVersion(latestClean, currentClean) {
		return nil
	}

	return &CheckResult{
		CurrentVersion:  currentVersion,
		LatestVersion:   latest.TagName,
		UpdateAvailable: true,
		ReleaseURL:      latest.HTMLURL,
	}
}

// PrintUpdateNotice prints a notice if an update is available.
func PrintUpdateNotice(result *CheckResult) {
	if result == nil || !result.UpdateAvailable {
		return
	}

	fmt.Println()
	fmt.Printf("%s A new version of prd-analyzer is available: %s (you have %s)\n",
		tui.WarningStyle.Render("!"),
		tui.SuccessStyle.Render(result.LatestVersion),
		result.CurrentVersion,
	)
	fmt.Printf("  Update: %s\n", tui.HelpStyle.Render("go install github.com/dhabedank/prd-analyzer@latest"))
	fmt.Println()
}

func fetchLatestRelease() (*GitHubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GitHubRepo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// checkedRecently reports whether the marker file was touched within
// the throttle interval.
func checkedRecently() bool {
	info, err := os.Stat(checkMarkerPath())
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < CheckInterval
}

// touchCheckMarker records that a check happened now.
func touchCheckMarker() {
	path := checkMarkerPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = os.WriteFile(path, []byte{}, 0644)
		return
	}
	_ = os.Chtimes(path, time.Now(), time.Now())
}

func checkMarkerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".prd-analyzer", ".last-update-check")
}

// isNewerVersion compares dotted version strings numerically,
// part by part.
func isNewerVersion(latest, current string) bool {
	latestParts := strings.Split(latest, ".")
	currentParts := strings.Split(current, ".")

	for i := 0; i < len(latestParts) && i < len(currentParts); i++ {
		l := parseVersionPart(latestParts[i])
		c := parseVersionPart(currentParts[i])
		if l != c {
			return l > c
		}
	}

	// All compared parts equal; the longer version is newer.
	return len(latestParts) > len(currentParts)
}

// parseVersionPart extracts the leading number from a version part
// (e.g., 1 from "1-beta").
func parseVersionPart(s string) int {
	var n int
	_, _ = fmt.Sscanf(s, "%d", &n)
	return n
}
