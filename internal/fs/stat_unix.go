//go:build unix

package fs

import (
	"io/fs"
	"syscall"
	"time"
)

// statTimes extracts creation and access times from Unix stat data.
// Birth time is not available on most Unix filesystems, so the inode change
// time stands in for creation time.
func statTimes(info fs.FileInfo) (created, accessed time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	created = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	accessed = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	return created, accessed
}
