package brewing

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a trial seed using crypto/rand. The seed itself is
// returned to callers so a brew can be replayed deterministically.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
