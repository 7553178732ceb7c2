package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, c Content, states ...[]Holding) []Link {
	t.Helper()
	var (
		links []Link
		prev  string
	)
	for _, h := range states {
		fp, err := Fingerprint(c, h)
		require.NoError(t, err)
		links = append(links, Link{Prev: prev, New: fp, Holdings: h})
		prev = fp
	}
	return links
}

func TestVerifyChain(t *testing.T) {
	c := sampleContent()
	s1 := []Holding{{HolderLabel: "alice", Amount: 100}}
	s2 := append([]Holding{{HolderLabel: "bob", Amount: 100}}, s1...)
	s3 := append([]Holding{{HolderLabel: "carol", Amount: 50}}, s2...)
	links := buildChain(t, c, s1, s2, s3)

	head, err := VerifyChain(c, links)
	require.NoError(t, err)
	assert.Equal(t, links[2].New, head)

	t.Run("empty", func(t *testing.T) {
		head, err := VerifyChain(c, nil)
		require.NoError(t, err)
		assert.Empty(t, head)
	})

	t.Run("repeated state", func(t *testing.T) {
		withReject := append(append([]Link(nil), links[:2]...),
			Link{Prev: links[1].New, New: links[1].New, Holdings: s2})
		head, err := VerifyChain(c, withReject)
		require.NoError(t, err)
		assert.Equal(t, links[1].New, head)
	})

	t.Run("first link not from empty", func(t *testing.T) {
		broken := append([]Link(nil), links...)
		broken[0].Prev = "abc"
		_, err := VerifyChain(c, broken)
		assert.ErrorIs(t, err, ErrBrokenLink)
	})

	t.Run("reordered", func(t *testing.T) {
		broken := []Link{links[0], links[2], links[1]}
		_, err := VerifyChain(c, broken)
		assert.ErrorIs(t, err, ErrBrokenLink)
	})

	t.Run("tampered snapshot", func(t *testing.T) {
		broken := append([]Link(nil), links...)
		broken[1].Holdings = []Holding{{HolderLabel: "alice", Amount: 100}, {HolderLabel: "bob", Amount: 1000}}
		_, err := VerifyChain(c, broken)
		assert.ErrorIs(t, err, ErrFingerprintMismatch)
	})

	t.Run("tampered content", func(t *testing.T) {
		other := c
		other.Body = "edited"
		_, err := VerifyChain(other, links)
		assert.ErrorIs(t, err, ErrFingerprintMismatch)
	})
}
