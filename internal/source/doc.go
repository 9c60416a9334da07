// Package source defines the IPTV source entity and its validation rules.
//
// A source is a user-configured IPTV provider entry: either an Xtream Codes
// account (server URL + credentials) or a raw M3U playlist (playlist URL with
// an optional EPG URL). Sources are created exactly once from validated form
// input, are never mutated in place, and live in an ordered Collection that
// also tracks which source is currently active for playback.
//
// # Source Variants
//
// The Type field discriminates the two variants:
//   - TypeXtream: ServerURL, Username, Password are set
//   - TypeM3U: PlaylistURL is set, EPGURL is optional (empty means absent)
//
// Every switch over Type in this module handles all variants explicitly and
// fails loudly on an unknown discriminant, so adding a third source type is a
// mechanical, compiler-visible change.
//
// # Validation
//
// Validation is a pure, single-pass operation. ValidateXtreamForm and
// ValidateM3UForm check every field in form order and report all violations
// together in a FormErrors map; a field that is missing entirely is flagged
// "required" and never additionally flagged for format. URL fields accept
// absolute http/https URLs only. All input is trimmed before validation and
// before storage, and server base URLs lose their trailing slashes.
//
// # Usage Example
//
//	fields := source.XtreamFields{
//	    Name:      "  Living Room  ",
//	    ServerURL: "http://iptv.example.com:8080/",
//	    Username:  "ted",
//	    Password:  "hunter2",
//	}
//	data, errs := source.ValidateXtreamForm(fields)
//	if len(errs) > 0 {
//	    // render errs per field; no source is created
//	}
//	src := source.NewXtreamSource(data)
//	// src.Name == "Living Room", src.ServerURL == "http://iptv.example.com:8080"
package source
