package snapshot

import (
	"fmt"

	"github.com/raidkit/raidcore/platform"
)

// ErrLiveRead wraps platform.ErrLiveRead with which chain failed, so a
// caller can tell a dead process apart from a bad offset table while
// still matching the underlying failure with errors.Is(err,
// platform.ErrLiveRead).
type ErrLiveRead struct {
	Chain string
}

func (e *ErrLiveRead) Error() string {
	return fmt.Sprintf("snapshot: live read failed for %s: %v", e.Chain, platform.ErrLiveRead)
}

func (e *ErrLiveRead) Unwrap() error {
	return platform.ErrLiveRead
}
