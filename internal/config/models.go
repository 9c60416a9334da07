package config

import (
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// Registry represents the entire user configuration file.
// It stores the saved IPTV sources, the active-source reference, and
// application preferences.
type Registry struct {
	Version        int             `yaml:"version"`
	Sources        []source.Source `yaml:"sources,omitempty"`
	ActiveSourceID string          `yaml:"active_source_id,omitempty"`
	Preferences    *Preferences    `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	// SkeletonRows is the number of placeholder rows the source list renders
	// while loading. Kept configurable for layout experiments; the default
	// (and the tested value) is 3.
	SkeletonRows int `yaml:"skeleton_rows"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Preferences: &Preferences{
			SkeletonRows: 3,
		},
	}
}

// Collection builds a source.Collection from the persisted state.
// Sources that fail validation are skipped so invalid data never enters the
// collection; a dangling active id degrades to the no-active-source state.
func (r *Registry) Collection() *source.Collection {
	col := source.NewCollection()
	for _, src := range r.Sources {
		if err := col.Add(src); err != nil {
			// Skip entries a hand-edited file corrupted.
			continue
		}
	}
	if r.ActiveSourceID != "" && col.ByID(r.ActiveSourceID) != nil {
		col.ActiveID = r.ActiveSourceID
	}
	return col
}

// SetCollection replaces the persisted source state with the collection's.
func (r *Registry) SetCollection(col *source.Collection) {
	r.Sources = make([]source.Source, len(col.Sources))
	copy(r.Sources, col.Sources)
	r.ActiveSourceID = col.ActiveID
}
