// Package common contains shared constants, sentinel errors and small helpers
// used across cofund client and server components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Content types accepted by the catalog.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeMusic = "music"
	ContentTypeLink  = "link"
)

// ValidContentType reports whether t is one of the catalog content types.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeMusic, ContentTypeLink:
		return true
	}
	return false
}
