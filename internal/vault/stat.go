package vault

import (
	"io/fs"
	"time"
)

// createdTime returns the creation time of a file. Portable stat data has no
// birth time, so the modification time stands in for it.
func createdTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
