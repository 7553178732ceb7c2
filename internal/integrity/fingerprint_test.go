package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContent() Content {
	return Content{
		ID:          "c-1",
		Title:       "Tide tables & <songs>",
		Body:        "Recorded at the pier",
		Type:        "music",
		MediaURL:    "https://media.example.com/c-1.ogg",
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 600, time.FixedZone("CET", 3600)),
		AuthorID:    "u-1",
		AuthorEmail: "alice@example.com",
	}
}

func TestCanonical_Layout(t *testing.T) {
	b, err := Canonical(sampleContent(), []Holding{
		{HolderLabel: "bob@example.com", Amount: 50},
		{HolderLabel: "alice@example.com", Amount: 100},
	})
	require.NoError(t, err)

	want := `{"id":"c-1","title":"Tide tables & <songs>","body":"Recorded at the pier","type":"music",` +
		`"mediaUrl":"https://media.example.com/c-1.ogg","createdAt":"2025-01-02T02:04:05.0000006Z",` +
		`"authorId":"u-1","authorEmail":"alice@example.com","investments":[` +
		`{"holderLabel":"alice@example.com","amount":100},{"holderLabel":"bob@example.com","amount":50}]}`
	assert.Equal(t, want, string(b))
}

func TestCanonical_EmptyHoldings(t *testing.T) {
	b, err := Canonical(sampleContent(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"investments":[]`)
}

func TestFingerprint_IsSHA256OfCanonical(t *testing.T) {
	h := []Holding{{HolderLabel: "a", Amount: 1}}
	b, err := Canonical(sampleContent(), h)
	require.NoError(t, err)
	sum := sha256.Sum256(b)

	fp, err := Fingerprint(sampleContent(), h)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), fp)
	assert.Len(t, fp, 64)
}

func TestFingerprint_PermutationInvariant(t *testing.T) {
	holdings := []Holding{
		{HolderLabel: "carol", Amount: 5},
		{HolderLabel: "alice", Amount: 100},
		{HolderLabel: "bob", Amount: 50},
		{HolderLabel: "alice", Amount: 20},
	}
	want, err := Fingerprint(sampleContent(), holdings)
	require.NoError(t, err)

	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, p := range perms {
		shuffled := make([]Holding, len(p))
		for i, j := range p {
			shuffled[i] = holdings[j]
		}
		got, err := Fingerprint(sampleContent(), shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got, "order %v", p)
	}

	assert.Equal(t, "carol", holdings[0].HolderLabel, "input slice must not be reordered")
}

func TestFingerprint_TamperSensitive(t *testing.T) {
	holdings := []Holding{{HolderLabel: "alice", Amount: 100}, {HolderLabel: "bob", Amount: 50}}
	base, err := Fingerprint(sampleContent(), holdings)
	require.NoError(t, err)

	mutations := map[string]func(*Content, []Holding) []Holding{
		"title":   func(c *Content, h []Holding) []Holding { c.Title += "!"; return h },
		"body":    func(c *Content, h []Holding) []Holding { c.Body = ""; return h },
		"type":    func(c *Content, h []Holding) []Holding { c.Type = "text"; return h },
		"media":   func(c *Content, h []Holding) []Holding { c.MediaURL = ""; return h },
		"created": func(c *Content, h []Holding) []Holding { c.CreatedAt = c.CreatedAt.Add(time.Nanosecond); return h },
		"author":  func(c *Content, h []Holding) []Holding { c.AuthorEmail = "mallory@example.com"; return h },
		"amount": func(_ *Content, h []Holding) []Holding {
			return []Holding{{HolderLabel: "alice", Amount: 101}, h[1]}
		},
		"label": func(_ *Content, h []Holding) []Holding {
			return []Holding{h[0], {HolderLabel: "mallory", Amount: 50}}
		},
		"dropped": func(_ *Content, h []Holding) []Holding { return h[:1] },
		"added": func(_ *Content, h []Holding) []Holding {
			return append(append([]Holding(nil), h...), Holding{HolderLabel: "x", Amount: 1})
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := sampleContent()
			h := mutate(&c, append([]Holding(nil), holdings...))
			got, err := Fingerprint(c, h)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestFingerprint_IgnoresTimeZone(t *testing.T) {
	c := sampleContent()
	a, err := Fingerprint(c, nil)
	require.NoError(t, err)

	c.CreatedAt = c.CreatedAt.UTC()
	b, err := Fingerprint(c, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpected(t *testing.T) {
	current := []Holding{{HolderLabel: "alice", Amount: 100}}
	pending := Holding{HolderLabel: "bob", Amount: 30}

	got, err := Expected(sampleContent(), current, pending)
	require.NoError(t, err)
	want, err := Fingerprint(sampleContent(), []Holding{pending, current[0]})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, current, 1)
}
