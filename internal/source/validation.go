package source

import (
	"net/url"
	"strings"
)

// Form field keys used in FormErrors. Shared between the validation engine and
// the TUI forms so error messages land next to the field that caused them.
const (
	FieldName        = "name"
	FieldServerURL   = "serverUrl"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldPlaylistURL = "playlistUrl"
	FieldEPGURL      = "epgUrl"
)

// FormErrors maps field keys to a single message per field.
// It is rebuilt from scratch on every validation attempt - a map returned by
// one attempt never carries messages over to the next.
type FormErrors map[string]string

// HasErrors reports whether any field failed validation.
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateURL reports whether raw parses as an absolute URL whose scheme is
// exactly http or https. Any other scheme (ftp, file, ...), a relative URL,
// malformed input, or an empty string is rejected.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// ValidateRequired reports whether the trimmed string is non-empty.
func ValidateRequired(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// TrimServerURL strips one-or-more trailing slashes from a server base URL.
// Only base URLs are trimmed this way; full resource URLs (playlists, EPG
// files) may legitimately end in a filename and are left alone.
func TrimServerURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for strings.HasSuffix(trimmed, "/") {
		trimmed = strings.TrimSuffix(trimmed, "/")
	}
	return trimmed
}

// XtreamFields is the raw (untrimmed) input of the Xtream onboarding form.
type XtreamFields struct {
	Name      string
	ServerURL string
	Username  string
	Password  string
}

// M3UFields is the raw (untrimmed) input of the M3U onboarding form.
type M3UFields struct {
	Name        string
	PlaylistURL string
	EPGURL      string
}

// ValidateXtreamForm validates all Xtream form fields in a single pass and
// returns the normalized submission payload together with any field errors.
// Fields are checked in form order (name, server URL, username, password).
// A field flagged "required" is not additionally flagged for format. The
// payload is only meaningful when the returned FormErrors is empty.
func ValidateXtreamForm(fields XtreamFields) (XtreamData, FormErrors) {
	errs := make(FormErrors)

	name := strings.TrimSpace(fields.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	}

	serverURL := TrimServerURL(fields.ServerURL)
	if serverURL == "" {
		errs[FieldServerURL] = "Server URL is required"
	} else if !ValidateURL(serverURL) {
		errs[FieldServerURL] = "Enter a valid http:// or https:// URL"
	}

	username := strings.TrimSpace(fields.Username)
	if username == "" {
		errs[FieldUsername] = "Username is required"
	}

	password := strings.TrimSpace(fields.Password)
	if password == "" {
		errs[FieldPassword] = "Password is required"
	}

	if errs.HasErrors() {
		return XtreamData{}, errs
	}

	return XtreamData{
		Name:      name,
		ServerURL: serverURL,
		Username:  username,
		Password:  password,
	}, errs
}

// ValidateM3UForm validates all M3U form fields in a single pass and returns
// the normalized submission payload together with any field errors. The EPG
// URL is optional: whitespace-only input is treated as absent and never
// reaches the payload, but a present value must be a valid http(s) URL.
func ValidateM3UForm(fields M3UFields) (M3UData, FormErrors) {
	errs := make(FormErrors)

	name := strings.TrimSpace(fields.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	}

	playlistURL := strings.TrimSpace(fields.PlaylistURL)
	if playlistURL == "" {
		errs[FieldPlaylistURL] = "Playlist URL is required"
	} else if !ValidateURL(playlistURL) {
		errs[FieldPlaylistURL] = "Enter a valid http:// or https:// URL"
	}

	epgURL := strings.TrimSpace(fields.EPGURL)
	if epgURL != "" && !ValidateURL(epgURL) {
		errs[FieldEPGURL] = "Enter a valid http:// or https:// URL, or leave empty"
	}

	if errs.HasErrors() {
		return M3UData{}, errs
	}

	return M3UData{
		Name:        name,
		PlaylistURL: playlistURL,
		EPGURL:      epgURL,
	}, errs
}
