package models

import (
	"time"

	"github.com/dmitrijs2005/cofund/internal/integrity"
)

// Content is a co-fundable item. Every field except LatestFingerprint is
// immutable after creation; LatestFingerprint is written only by the
// integrity chain commit.
type Content struct {
	ID                string
	Title             string
	Body              string
	Type              string
	MediaURL          string
	CreatedAt         time.Time
	AuthorID          string
	AuthorLabel       string
	LatestFingerprint string
}

// Fingerprintable returns the immutable projection hashed by the integrity chain.
func (c *Content) Fingerprintable() integrity.Content {
	return integrity.Content{
		ID:          c.ID,
		Title:       c.Title,
		Body:        c.Body,
		Type:        c.Type,
		MediaURL:    c.MediaURL,
		CreatedAt:   c.CreatedAt,
		AuthorID:    c.AuthorID,
		AuthorEmail: c.AuthorLabel,
	}
}
