package source

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type discriminates the source variants.
type Type string

const (
	// TypeXtream is an Xtream Codes account (server URL + credentials).
	TypeXtream Type = "xtream"
	// TypeM3U is a raw M3U playlist URL with an optional EPG URL.
	TypeM3U Type = "m3u"
)

// Valid reports whether t is a known source type.
func (t Type) Valid() bool {
	switch t {
	case TypeXtream, TypeM3U:
		return true
	}
	return false
}

// Label returns the human-readable name for the source type.
// This is the only place display labels for the discriminant are defined.
func (t Type) Label() string {
	switch t {
	case TypeXtream:
		return "Xtream Codes"
	case TypeM3U:
		return "M3U Playlist"
	default:
		return fmt.Sprintf("Unknown (%s)", string(t))
	}
}

// Source is a configured IPTV provider entry.
//
// ID and CreatedAt are stamped at construction and never change. Variant
// fields are populated according to Type: Xtream sources carry ServerURL,
// Username and Password; M3U sources carry PlaylistURL and optionally EPGURL.
// An empty EPGURL means the user supplied none - it is never stored as a
// meaningful empty string (yaml omitempty keeps it absent on disk too).
type Source struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Type      Type      `yaml:"type"`
	CreatedAt time.Time `yaml:"created_at"`

	// Xtream fields
	ServerURL string `yaml:"server_url,omitempty"`
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`

	// M3U fields
	PlaylistURL string `yaml:"playlist_url,omitempty"`
	EPGURL      string `yaml:"epg_url,omitempty"`
}

// XtreamData is the normalized output of a successful Xtream form submission.
// All strings are trimmed and the server URL has no trailing slash.
type XtreamData struct {
	Name      string
	ServerURL string
	Username  string
	Password  string
}

// M3UData is the normalized output of a successful M3U form submission.
// EPGURL is empty when the user supplied no (or only-whitespace) value.
type M3UData struct {
	Name        string
	PlaylistURL string
	EPGURL      string
}

// NewXtreamSource constructs an Xtream source from validated form data.
// This is the only way an Xtream Source comes into existence.
func NewXtreamSource(data XtreamData) Source {
	return Source{
		ID:        uuid.NewString(),
		Name:      data.Name,
		Type:      TypeXtream,
		CreatedAt: time.Now().UTC(),
		ServerURL: data.ServerURL,
		Username:  data.Username,
		Password:  data.Password,
	}
}

// NewM3USource constructs an M3U source from validated form data.
func NewM3USource(data M3UData) Source {
	return Source{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Type:        TypeM3U,
		CreatedAt:   time.Now().UTC(),
		PlaylistURL: data.PlaylistURL,
		EPGURL:      data.EPGURL,
	}
}

// Validate checks the stored entity against the same rules the forms enforce.
// Returns a slice of validation errors (empty if valid). Used as a guard when
// loading sources from disk so invalid data never enters a Collection.
func (s Source) Validate() []error {
	var errs []error

	if s.ID == "" {
		errs = append(errs, NewValidationError("source id is empty"))
	}
	if !ValidateRequired(s.Name) {
		errs = append(errs, NewValidationError("source name is required"))
	}

	switch s.Type {
	case TypeXtream:
		if !ValidateURL(s.ServerURL) {
			errs = append(errs, NewValidationError(fmt.Sprintf("server URL is not a valid http(s) URL: %q", s.ServerURL)))
		}
		if !ValidateRequired(s.Username) {
			errs = append(errs, NewValidationError("username is required"))
		}
		if !ValidateRequired(s.Password) {
			errs = append(errs, NewValidationError("password is required"))
		}
	case TypeM3U:
		if !ValidateURL(s.PlaylistURL) {
			errs = append(errs, NewValidationError(fmt.Sprintf("playlist URL is not a valid http(s) URL: %q", s.PlaylistURL)))
		}
		if s.EPGURL != "" && !ValidateURL(s.EPGURL) {
			errs = append(errs, NewValidationError(fmt.Sprintf("EPG URL is not a valid http(s) URL: %q", s.EPGURL)))
		}
	default:
		errs = append(errs, NewValidationError(fmt.Sprintf("unknown source type: %q", s.Type)))
	}

	return errs
}

// Endpoint returns the URL a player would contact for this source.
// Exhaustive over Type; unknown types return an empty string.
func (s Source) Endpoint() string {
	switch s.Type {
	case TypeXtream:
		return s.ServerURL
	case TypeM3U:
		return s.PlaylistURL
	default:
		return ""
	}
}
