package blocks

import "fmt"

// ErrBlockNotFound means a block a caller requires by fixed key is absent
// from the container. Fatal to whatever lookup needed it.
type ErrBlockNotFound struct {
	Key uint32
}

func (e *ErrBlockNotFound) Error() string {
	return fmt.Sprintf("blocks: block %#08x not found", e.Key)
}

// ErrTruncatedBlock means a block's declared length runs past the end of
// the payload; every block after the fault is unrecoverable, since the
// byte cursor is the only thing telling the decoder where the next block
// starts.
type ErrTruncatedBlock struct {
	Offset int
}

func (e *ErrTruncatedBlock) Error() string {
	return fmt.Sprintf("blocks: truncated block at payload offset %d", e.Offset)
}
