package source

import "testing"

func validM3U(name string) Source {
	return NewM3USource(M3UData{Name: name, PlaylistURL: "http://example.com/" + name + ".m3u"})
}

func TestCollectionAddPreservesOrder(t *testing.T) {
	c := NewCollection()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if err := c.Add(validM3U(n)); err != nil {
			t.Fatalf("Add(%s) error = %v", n, err)
		}
	}

	for i, n := range names {
		if c.Sources[i].Name != n {
			t.Errorf("Sources[%d].Name = %q, want %q", i, c.Sources[i].Name, n)
		}
	}
}

func TestCollectionAddRejectsInvalid(t *testing.T) {
	c := NewCollection()

	err := c.Add(Source{ID: "x", Name: "bad", Type: TypeM3U, PlaylistURL: "ftp://nope"})
	if err == nil {
		t.Fatal("Add() should reject an invalid source")
	}
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("invalid source entered the collection (len=%d)", c.Len())
	}
}

func TestCollectionAddRejectsDuplicateID(t *testing.T) {
	c := NewCollection()

	src := validM3U("a")
	if err := c.Add(src); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := c.Add(src); err == nil {
		t.Error("Add() should reject a duplicate id")
	}
}

func TestCollectionRemoveClearsActive(t *testing.T) {
	c := NewCollection()

	a := validM3U("a")
	b := validM3U("b")
	if err := c.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(b); err != nil {
		t.Fatal(err)
	}

	if err := c.SetActive(a.ID); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}
	if err := c.Remove(a.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if c.ActiveID != "" {
		t.Errorf("ActiveID = %q after removing active source, want empty", c.ActiveID)
	}
	if c.Active() != nil {
		t.Error("Active() should be nil after removing the active source")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCollectionRemoveOtherKeepsActive(t *testing.T) {
	c := NewCollection()

	a := validM3U("a")
	b := validM3U("b")
	_ = c.Add(a)
	_ = c.Add(b)
	_ = c.SetActive(a.ID)

	if err := c.Remove(b.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if c.ActiveID != a.ID {
		t.Errorf("ActiveID = %q, want %q", c.ActiveID, a.ID)
	}
}

func TestCollectionSetActiveUnknownID(t *testing.T) {
	c := NewCollection()

	err := c.SetActive("missing")
	if err == nil {
		t.Fatal("SetActive() should fail for unknown id")
	}
	if !IsNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCollectionRemoveUnknownID(t *testing.T) {
	c := NewCollection()

	if err := c.Remove("missing"); !IsNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
