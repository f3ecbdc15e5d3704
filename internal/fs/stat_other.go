//go:build !unix

package fs

import (
	"io/fs"
	"time"
)

// statTimes falls back to the modification time on platforms without
// accessible stat data.
func statTimes(info fs.FileInfo) (created, accessed time.Time) {
	return info.ModTime(), info.ModTime()
}
