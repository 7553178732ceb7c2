package integrity

import "fmt"

// Divergence classifies a viewer's cached fingerprint against the
// authoritative one.
type Divergence int

const (
	// Match: the viewer saw the current state.
	Match Divergence = iota
	// ServerAhead: the viewer has not cached anything for the item yet.
	ServerAhead
	// Mismatch: possible tampering or a missed update. Approvals by this
	// viewer are blocked until the fingerprints converge again.
	Mismatch
)

func (d Divergence) String() string {
	switch d {
	case Match:
		return "match"
	case ServerAhead:
		return "server_ahead"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("divergence(%d)", int(d))
	}
}

// Detect compares the authoritative fingerprint with the cached one.
func Detect(authoritative, cached string) Divergence {
	switch {
	case cached == "":
		return ServerAhead
	case cached == authoritative:
		return Match
	default:
		return Mismatch
	}
}

// Confirmation classifies an expected fingerprint, cached when a viewer
// approved a request, against the authoritative one.
type Confirmation int

const (
	None Confirmation = iota
	Awaiting
	Confirmed
	Suspected
)

func (c Confirmation) String() string {
	switch c {
	case None:
		return "none"
	case Awaiting:
		return "awaiting"
	case Confirmed:
		return "confirmed"
	case Suspected:
		return "suspected"
	default:
		return fmt.Sprintf("confirmation(%d)", int(c))
	}
}

// CompareExpected reports whether the state the viewer expected to be
// committed is the one the server holds.
func CompareExpected(expected, authoritative string) Confirmation {
	switch {
	case expected == "":
		return None
	case authoritative == "":
		return Awaiting
	case expected == authoritative:
		return Confirmed
	default:
		return Suspected
	}
}

// LatestKey is the local cache key for the last fingerprint identity observed
// for a content item.
func LatestKey(contentID, identity string) string {
	return fmt.Sprintf("contentLatestHash_%s_%s", contentID, identity)
}

// PendingKey is the local cache key for the fingerprint identity expected to
// be committed after its last approval on a content item.
func PendingKey(contentID, identity string) string {
	return fmt.Sprintf("contentPendingHash_%s_%s", contentID, identity)
}
