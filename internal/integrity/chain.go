package integrity

import (
	"errors"
	"fmt"
)

var (
	// ErrBrokenLink means an entry's previous fingerprint does not match the
	// new fingerprint of the entry before it.
	ErrBrokenLink = errors.New("integrity: broken chain link")

	// ErrFingerprintMismatch means an entry's recorded fingerprint cannot be
	// re-derived from its own stake snapshot.
	ErrFingerprintMismatch = errors.New("integrity: fingerprint mismatch")
)

// Link is the part of a chain entry needed to verify it.
type Link struct {
	Prev     string
	New      string
	Holdings []Holding
}

// VerifyChain walks the links of one content item in order. The first link
// must start from an empty fingerprint, every later link must start where the
// previous one ended, and each recorded fingerprint must match the one derived
// from the link's snapshot. It returns the head fingerprint on success.
func VerifyChain(c Content, links []Link) (string, error) {
	prev := ""
	for i, l := range links {
		if l.Prev != prev {
			return "", fmt.Errorf("%w: entry %d starts at %q, want %q", ErrBrokenLink, i, l.Prev, prev)
		}
		fp, err := Fingerprint(c, l.Holdings)
		if err != nil {
			return "", err
		}
		if fp != l.New {
			return "", fmt.Errorf("%w: entry %d", ErrFingerprintMismatch, i)
		}
		prev = l.New
	}
	return prev, nil
}
