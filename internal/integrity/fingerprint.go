// Package integrity computes canonical fingerprints of a content item's
// stakeholder state, verifies hash chains built from them, and classifies
// divergence between an authoritative fingerprint and a locally cached one.
//
// The package is shared by the server (which commits fingerprints) and the
// client (which caches and re-derives them), so both sides hash identical bytes.
package integrity

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"
)

// Content carries the immutable fields of a content item that take part in
// the fingerprint. The mutable latest fingerprint is deliberately absent.
type Content struct {
	ID          string
	Title       string
	Body        string
	Type        string
	MediaURL    string
	CreatedAt   time.Time
	AuthorID    string
	AuthorEmail string
}

// Holding is the projection of a stake used for fingerprinting. Identifiers,
// timestamps and dividends are excluded so that independent observers of the
// same logical state derive the same digest.
type Holding struct {
	HolderLabel string `json:"holderLabel"`
	Amount      int64  `json:"amount"`
}

type canonicalRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Type        string    `json:"type"`
	MediaURL    string    `json:"mediaUrl"`
	CreatedAt   string    `json:"createdAt"`
	AuthorID    string    `json:"authorId"`
	AuthorEmail string    `json:"authorEmail"`
	Investments []Holding `json:"investments"`
}

// SortHoldings orders holdings by label, then amount, in place.
func SortHoldings(h []Holding) {
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].HolderLabel != h[j].HolderLabel {
			return h[i].HolderLabel < h[j].HolderLabel
		}
		return h[i].Amount < h[j].Amount
	})
}

// Canonical returns the deterministic serialization hashed by Fingerprint.
// The input slice is not modified.
func Canonical(c Content, holdings []Holding) ([]byte, error) {
	invs := make([]Holding, len(holdings))
	copy(invs, holdings)
	SortHoldings(invs)

	rec := canonicalRecord{
		ID:          c.ID,
		Title:       c.Title,
		Body:        c.Body,
		Type:        c.Type,
		MediaURL:    c.MediaURL,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		AuthorID:    c.AuthorID,
		AuthorEmail: c.AuthorEmail,
		Investments: invs,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Fingerprint returns the lowercase hex SHA-256 of the canonical record.
func Fingerprint(c Content, holdings []Holding) (string, error) {
	b, err := Canonical(c, holdings)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Expected returns the fingerprint the content item will have once the
// pending holding is admitted next to the current ones.
func Expected(c Content, current []Holding, pending Holding) (string, error) {
	all := make([]Holding, 0, len(current)+1)
	all = append(all, current...)
	all = append(all, pending)
	return Fingerprint(c, all)
}
