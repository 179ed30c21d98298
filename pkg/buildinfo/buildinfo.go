// Package buildinfo carries the version stamped in at link time.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("empl %s (commit=%s, date=%s)", Version, Commit, Date)
}
