package version

import "fmt"

// Overridden at build time with -ldflags "-X github.com/ericogr/laro-arcade/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata exposed by the API.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty"`
}

// Current returns the metadata baked into this binary.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty == "true"}
}

// String renders a short human-readable build tag, e.g. "v1.2.0 (abc123, dirty)".
func (i Info) String() string {
	if i.Dirty {
		return fmt.Sprintf("%s (%s, dirty)", i.Version, i.Commit)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
