package source

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"http URL", "http://example.com", true},
		{"https URL", "https://example.com/playlist.m3u", true},
		{"URL with port path and query", "http://x:8080/path?q=1", true},
		{"ftp scheme", "ftp://x", false},
		{"file scheme", "file:///x", false},
		{"missing scheme", "example.com", false},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
		{"scheme only", "http://", false},
		{"garbage", "http://[::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateURL(tt.raw); got != tt.valid {
				t.Errorf("ValidateURL(%q) = %v, want %v", tt.raw, got, tt.valid)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if !ValidateRequired("x") {
		t.Error("ValidateRequired(\"x\") = false, want true")
	}
	if ValidateRequired("") {
		t.Error("ValidateRequired(\"\") = true, want false")
	}
	if ValidateRequired(" \t\n") {
		t.Error("ValidateRequired(whitespace) = true, want false")
	}
}

func TestTrimServerURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"http://example.com/", "http://example.com"},
		{"http://example.com///", "http://example.com"},
		{"  http://example.com  ", "http://example.com"},
		{"http://example.com:8080", "http://example.com:8080"},
	}

	for _, tt := range tests {
		if got := TrimServerURL(tt.raw); got != tt.want {
			t.Errorf("TrimServerURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestValidateXtreamFormNormalizes(t *testing.T) {
	data, errs := ValidateXtreamForm(XtreamFields{
		Name:      "  Living Room  ",
		ServerURL: " http://iptv.example.com:8080/ ",
		Username:  " ted ",
		Password:  " hunter2 ",
	})

	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}

	want := XtreamData{
		Name:      "Living Room",
		ServerURL: "http://iptv.example.com:8080",
		Username:  "ted",
		Password:  "hunter2",
	}
	if data != want {
		t.Errorf("ValidateXtreamForm() = %+v, want %+v", data, want)
	}
}

func TestValidateXtreamFormReportsAllFieldsAtOnce(t *testing.T) {
	_, errs := ValidateXtreamForm(XtreamFields{})

	for _, field := range []string{FieldName, FieldServerURL, FieldUsername, FieldPassword} {
		if errs[field] == "" {
			t.Errorf("expected error for field %q, got none (errs=%v)", field, errs)
		}
	}
}

func TestValidateXtreamFormRequiredBeatsFormat(t *testing.T) {
	// An empty server URL is "required", never "invalid format".
	_, errs := ValidateXtreamForm(XtreamFields{
		Name:      "x",
		ServerURL: "   ",
		Username:  "u",
		Password:  "p",
	})

	if errs[FieldServerURL] != "Server URL is required" {
		t.Errorf("serverUrl error = %q, want required message", errs[FieldServerURL])
	}
}

func TestValidateXtreamFormRejectsBadScheme(t *testing.T) {
	for _, raw := range []string{"ftp://x", "file:///x"} {
		_, errs := ValidateXtreamForm(XtreamFields{
			Name:      "x",
			ServerURL: raw,
			Username:  "u",
			Password:  "p",
		})
		if errs[FieldServerURL] == "" {
			t.Errorf("expected format error for server URL %q", raw)
		}
	}
}

func TestValidateM3UFormBlocksEmptyPlaylist(t *testing.T) {
	_, errs := ValidateM3UForm(M3UFields{Name: "Playlist", PlaylistURL: ""})

	if errs[FieldPlaylistURL] == "" {
		t.Error("expected playlistUrl error for empty input")
	}
}

func TestValidateM3UFormOmitsWhitespaceEPG(t *testing.T) {
	data, errs := ValidateM3UForm(M3UFields{
		Name:        "Playlist",
		PlaylistURL: "https://example.com/list.m3u",
		EPGURL:      "   \t ",
	})

	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if data.EPGURL != "" {
		t.Errorf("whitespace EPG URL should be absent, got %q", data.EPGURL)
	}
}

func TestValidateM3UFormKeepsResourceURLTail(t *testing.T) {
	// Playlist URLs are full resource URLs - no trailing-slash stripping.
	data, errs := ValidateM3UForm(M3UFields{
		Name:        "Playlist",
		PlaylistURL: "http://x:8080/path?q=1",
		EPGURL:      "https://example.com/epg.xml",
	})

	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if data.PlaylistURL != "http://x:8080/path?q=1" {
		t.Errorf("playlist URL = %q, want unchanged apart from trimming", data.PlaylistURL)
	}
	if data.EPGURL != "https://example.com/epg.xml" {
		t.Errorf("EPG URL = %q, want preserved", data.EPGURL)
	}
}

func TestValidateM3UFormRejectsBadEPGScheme(t *testing.T) {
	_, errs := ValidateM3UForm(M3UFields{
		Name:        "Playlist",
		PlaylistURL: "https://example.com/list.m3u",
		EPGURL:      "ftp://epg.example.com/guide.xml",
	})

	if errs[FieldEPGURL] == "" {
		t.Error("expected epgUrl error for ftp scheme")
	}
}

func TestFormErrorsRebuiltEachAttempt(t *testing.T) {
	// First attempt: two failing fields.
	_, errs1 := ValidateM3UForm(M3UFields{Name: "", PlaylistURL: ""})
	if len(errs1) != 2 {
		t.Fatalf("first attempt: got %d errors, want 2", len(errs1))
	}

	// Second attempt fixes the name; the stale name error must not survive.
	_, errs2 := ValidateM3UForm(M3UFields{Name: "Fixed", PlaylistURL: ""})
	if _, ok := errs2[FieldName]; ok {
		t.Error("name error carried over from previous attempt")
	}
	if errs2[FieldPlaylistURL] == "" {
		t.Error("playlistUrl error missing on second attempt")
	}
}
