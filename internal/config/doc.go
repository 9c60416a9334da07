// Package config provides the on-disk registry for the Ted IPTV player.
//
// This package manages a YAML-based configuration file that stores the user's
// saved IPTV sources, the currently active source id, and application
// preferences. The configuration follows OS-specific conventions for storage
// location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ted-iptv/config.yaml or $HOME/.config/ted-iptv/config.yaml
//   - macOS: $HOME/.config/ted-iptv/config.yaml
//   - Windows: %LOCALAPPDATA%\ted-iptv\config.yaml
//
// # Security
//
// Xtream account credentials are part of the source entry and are stored
// verbatim. The file is written with 0600 permissions and the directory with
// 0700; the file header notes that it contains credentials.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	col := registry.Collection()
//	if err := col.Add(src); err != nil {
//	    log.Fatal(err)
//	}
//	registry.SetCollection(col)
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
