package source

import "fmt"

// Collection is an ordered set of sources plus the active-source reference.
//
// Order is preserved as sources are added; render order equals list order.
// Active-ness is tracked by id reference, not by a field on the entity: an
// ActiveID that matches no source means no source is active. At most one
// source can therefore be active at a time by construction.
type Collection struct {
	Sources  []Source
	ActiveID string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Len returns the number of sources in the collection.
func (c *Collection) Len() int {
	return len(c.Sources)
}

// ByID returns the source with the given id, or nil if absent.
func (c *Collection) ByID(id string) *Source {
	for i := range c.Sources {
		if c.Sources[i].ID == id {
			return &c.Sources[i]
		}
	}
	return nil
}

// Active returns the currently active source, or nil when no source is active.
func (c *Collection) Active() *Source {
	if c.ActiveID == "" {
		return nil
	}
	return c.ByID(c.ActiveID)
}

// Add appends a source to the collection. The source must pass Validate and
// its id must be unique; invalid data never enters the collection.
func (c *Collection) Add(src Source) error {
	if errs := src.Validate(); len(errs) > 0 {
		return NewValidationError(fmt.Sprintf("refusing to add invalid source %q: %v", src.Name, errs[0]))
	}
	if c.ByID(src.ID) != nil {
		return NewConflictError(fmt.Sprintf("source id %s already exists", src.ID))
	}
	c.Sources = append(c.Sources, src)
	return nil
}

// Remove deletes the source with the given id. If the removed source was the
// active one, the active reference is cleared; choosing a replacement is the
// caller's policy, not the collection's.
func (c *Collection) Remove(id string) error {
	for i := range c.Sources {
		if c.Sources[i].ID == id {
			c.Sources = append(c.Sources[:i], c.Sources[i+1:]...)
			if c.ActiveID == id {
				c.ActiveID = ""
			}
			return nil
		}
	}
	return NewNotFoundError(fmt.Sprintf("no source with id %s", id))
}

// SetActive marks the source with the given id as active.
// The id must refer to a source in the collection.
func (c *Collection) SetActive(id string) error {
	if c.ByID(id) == nil {
		return NewNotFoundError(fmt.Sprintf("no source with id %s", id))
	}
	c.ActiveID = id
	return nil
}

// ClearActive resets the collection to the no-active-source state.
func (c *Collection) ClearActive() {
	c.ActiveID = ""
}
