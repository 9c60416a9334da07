package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/config"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/logging"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// Command flags
var (
	outputFormat string
	epgURL       string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(addXtreamCmd)
	rootCmd.AddCommand(addM3UCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(setActiveCmd)
	rootCmd.AddCommand(clearActiveCmd)
}

// loadCollection reads the registry and builds the collection from it.
// Commands always re-read from disk so they see changes made by another
// process (the TUI, or a second shell) since this process started.
func loadCollection() (*config.Registry, *source.Collection, error) {
	registry, err := config.ReloadRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return registry, registry.Collection(), nil
}

// saveCollection writes the collection back through the registry.
func saveCollection(registry *config.Registry, col *source.Collection) error {
	registry.SetCollection(col)
	err := registry.Save()
	if path, pathErr := config.GetConfigPath(); pathErr == nil {
		logging.LogRegistrySave(path, err)
	}
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// sourcesCmd lists the configured sources
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured sources",
	Long: `Display all configured IPTV sources.

Shows each source's id, name, type, and endpoint, and marks the active
source. Credentials are never printed.`,
	Example: `  # Human-readable listing
  ted-iptv sources

  # Compact one-line-per-source output
  ted-iptv sources --format compact

  # JSON output for scripting
  ted-iptv sources --format json`,
	RunE: runSources,
}

// sourceListing is the JSON shape of one source in 'sources --format json'.
// Credentials are deliberately absent.
type sourceListing struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Endpoint string `json:"endpoint"`
	Active   bool   `json:"active"`
}

func runSources(cmd *cobra.Command, args []string) error {
	_, col, err := loadCollection()
	if err != nil {
		return err
	}

	if col.Len() == 0 {
		fmt.Println("No sources configured.")
		fmt.Println("\nUse 'ted-iptv add-xtream' or 'ted-iptv add-m3u' to add one,")
		fmt.Println("or run 'ted-iptv' without arguments for the interactive interface.")
		return nil
	}

	switch outputFormat {
	case "json":
		listings := make([]sourceListing, 0, col.Len())
		for _, src := range col.Sources {
			listings = append(listings, sourceListing{
				ID:       src.ID,
				Name:     src.Name,
				Type:     string(src.Type),
				Endpoint: src.Endpoint(),
				Active:   src.ID == col.ActiveID,
			})
		}
		out, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode sources: %w", err)
		}
		fmt.Println(string(out))

	case "compact":
		for _, src := range col.Sources {
			marker := " "
			if src.ID == col.ActiveID {
				marker = "*"
			}
			fmt.Printf("%s %s  %-16s %s\n", marker, src.ID, src.Type.Label(), src.Name)
		}

	default:
		fmt.Printf("Configured sources (%d):\n\n", col.Len())
		for i, src := range col.Sources {
			fmt.Printf("%d. %s\n", i+1, src.Name)
			fmt.Printf("   ID:       %s\n", src.ID)
			fmt.Printf("   Type:     %s\n", src.Type.Label())
			fmt.Printf("   Endpoint: %s\n", src.Endpoint())
			if src.ID == col.ActiveID {
				fmt.Printf("   Status:   active\n")
			}
			fmt.Println()
		}
	}

	return nil
}

// addXtreamCmd adds an Xtream Codes source
var addXtreamCmd = &cobra.Command{
	Use:   "add-xtream <name> <server-url> <username> <password>",
	Short: "Add an Xtream Codes source",
	Long: `Add an Xtream Codes account as a new source.

The server URL is normalized (trimmed, trailing slashes stripped) and must
be a valid http:// or https:// URL. All four arguments are required.`,
	Example: `  ted-iptv add-xtream "My provider" http://example.com:8080 alice s3cret`,
	Args:    cobra.ExactArgs(4),
	RunE:    runAddXtream,
}

func runAddXtream(cmd *cobra.Command, args []string) error {
	data, errs := source.ValidateXtreamForm(source.XtreamFields{
		Name:      args[0],
		ServerURL: args[1],
		Username:  args[2],
		Password:  args[3],
	})
	if errs.HasErrors() {
		return formErrorsToError(errs)
	}

	registry, col, err := loadCollection()
	if err != nil {
		return err
	}

	src := source.NewXtreamSource(data)
	if err := col.Add(src); err != nil {
		return err
	}
	if err := saveCollection(registry, col); err != nil {
		return err
	}
	logging.LogSourceEvent("added", src.ID, src.Name)

	fmt.Printf("Added Xtream source %q (id: %s)\n", src.Name, src.ID)
	return nil
}

// addM3UCmd adds an M3U playlist source
var addM3UCmd = &cobra.Command{
	Use:   "add-m3u <name> <playlist-url>",
	Short: "Add an M3U playlist source",
	Long: `Add an M3U playlist URL as a new source.

The playlist URL must be a valid http:// or https:// URL. An EPG URL is
optional and may be supplied with --epg.`,
	Example: `  # Playlist only
  ted-iptv add-m3u "My playlist" https://example.com/playlist.m3u

  # With an EPG guide
  ted-iptv add-m3u "My playlist" https://example.com/playlist.m3u --epg https://example.com/epg.xml`,
	Args: cobra.ExactArgs(2),
	RunE: runAddM3U,
}

func init() {
	addM3UCmd.Flags().StringVar(&epgURL, "epg", "", "Optional EPG (XMLTV) URL")
}

func runAddM3U(cmd *cobra.Command, args []string) error {
	data, errs := source.ValidateM3UForm(source.M3UFields{
		Name:        args[0],
		PlaylistURL: args[1],
		EPGURL:      epgURL,
	})
	if errs.HasErrors() {
		return formErrorsToError(errs)
	}

	registry, col, err := loadCollection()
	if err != nil {
		return err
	}

	src := source.NewM3USource(data)
	if err := col.Add(src); err != nil {
		return err
	}
	if err := saveCollection(registry, col); err != nil {
		return err
	}
	logging.LogSourceEvent("added", src.ID, src.Name)

	fmt.Printf("Added M3U source %q (id: %s)\n", src.Name, src.ID)
	return nil
}

// removeCmd deletes a source
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a source",
	Long: `Remove the source with the given id.

If the removed source was the active one, no source is active afterwards;
no replacement is selected automatically.`,
	Example: `  ted-iptv remove 3f1a...`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	registry, col, err := loadCollection()
	if err != nil {
		return err
	}

	src := col.ByID(args[0])
	if err := col.Remove(args[0]); err != nil {
		return err
	}
	if err := saveCollection(registry, col); err != nil {
		return err
	}
	logging.LogSourceEvent("removed", src.ID, src.Name)

	fmt.Printf("Removed source %q\n", src.Name)
	return nil
}

// setActiveCmd selects the active playback source
var setActiveCmd = &cobra.Command{
	Use:   "set-active <id>",
	Short: "Set the active playback source",
	Example: `  ted-iptv set-active 3f1a...

  # See ids with
  ted-iptv sources --format compact`,
	Args: cobra.ExactArgs(1),
	RunE: runSetActive,
}

func runSetActive(cmd *cobra.Command, args []string) error {
	registry, col, err := loadCollection()
	if err != nil {
		return err
	}

	if err := col.SetActive(args[0]); err != nil {
		return err
	}
	if err := saveCollection(registry, col); err != nil {
		return err
	}
	active := col.Active()
	logging.LogSourceEvent("activated", active.ID, active.Name)

	fmt.Printf("Active source is now %q\n", active.Name)
	return nil
}

// clearActiveCmd resets the player to the no-active-source state
var clearActiveCmd = &cobra.Command{
	Use:   "clear-active",
	Short: "Clear the active source selection",
	Long: `Reset the player to the no-active-source state.

All sources stay configured; only the active selection is cleared.`,
	Example: `  ted-iptv clear-active`,
	Args:    cobra.NoArgs,
	RunE:    runClearActive,
}

func runClearActive(cmd *cobra.Command, args []string) error {
	registry, col, err := loadCollection()
	if err != nil {
		return err
	}

	col.ClearActive()
	if err := saveCollection(registry, col); err != nil {
		return err
	}

	fmt.Println("No source is active now")
	return nil
}

// formErrorsToError flattens field errors into a single CLI error.
func formErrorsToError(errs source.FormErrors) error {
	for _, field := range []string{
		source.FieldName,
		source.FieldServerURL,
		source.FieldUsername,
		source.FieldPassword,
		source.FieldPlaylistURL,
		source.FieldEPGURL,
	} {
		if msg, ok := errs[field]; ok {
			return fmt.Errorf("%s: %s", field, msg)
		}
	}
	return fmt.Errorf("invalid input")
}
