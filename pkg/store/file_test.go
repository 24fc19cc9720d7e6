package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
)

func testWarning(userID, reason string) models.Warning {
	return models.Warning{
		ID:          "w-" + userID + "-" + reason,
		UserID:      userID,
		Reason:      reason,
		ModeratorID: "mod-1",
		Timestamp:   time.Now().UTC(),
	}
}

func TestFileCollectionAppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")

	fc := NewFileCollection[models.Warning](path)
	if err := fc.Append(testWarning("100", "spam")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := fc.Append(testWarning("200", "flood")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	// A fresh collection over the same file must see both records, in order.
	reloaded := NewFileCollection[models.Warning](path)
	all := reloaded.All()
	if len(all) != 2 {
		t.Fatalf("All() length = %d, want 2", len(all))
	}
	if all[0].UserID != "100" || all[1].UserID != "200" {
		t.Errorf("insertion order not preserved: got %s, %s", all[0].UserID, all[1].UserID)
	}
}

func TestFileCollectionCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	fc := NewFileCollection[models.Warning](path)
	if got := len(fc.All()); got != 0 {
		t.Errorf("All() length = %d, want 0 for corrupt file", got)
	}

	// The collection must remain usable after the bad load.
	if err := fc.Append(testWarning("100", "spam")); err != nil {
		t.Fatalf("Append after corrupt load returned error: %v", err)
	}
	if got := len(fc.All()); got != 1 {
		t.Errorf("All() length = %d, want 1", got)
	}
}

func TestFileCollectionDeleteWhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	fc := NewFileCollection[models.Warning](path)

	fc.Append(testWarning("100", "spam"))
	fc.Append(testWarning("200", "flood"))
	fc.Append(testWarning("100", "links"))

	removed, err := fc.DeleteWhere(func(w models.Warning) bool { return w.UserID == "100" })
	if err != nil {
		t.Fatalf("DeleteWhere returned error: %v", err)
	}
	if removed != 2 {
		t.Errorf("DeleteWhere removed = %d, want 2", removed)
	}

	rest := fc.All()
	if len(rest) != 1 || rest[0].UserID != "200" {
		t.Errorf("unexpected remaining records: %+v", rest)
	}
}

func TestFileCollectionReplaceAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	fc := NewFileCollection[models.Warning](path)

	fc.Append(testWarning("100", "spam"))
	if err := fc.ReplaceAll(nil); err != nil {
		t.Fatalf("ReplaceAll returned error: %v", err)
	}
	if got := len(fc.All()); got != 0 {
		t.Errorf("All() length = %d, want 0 after ReplaceAll(nil)", got)
	}

	// The empty state must survive a reload.
	reloaded := NewFileCollection[models.Warning](path)
	if got := len(reloaded.All()); got != 0 {
		t.Errorf("reloaded length = %d, want 0", got)
	}
}

func TestFileCollectionFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	fc := NewFileCollection[models.Warning](path)

	fc.Append(testWarning("100", "spam"))
	fc.Append(testWarning("200", "flood"))
	fc.Append(testWarning("100", "links"))

	got := fc.Filter(func(w models.Warning) bool { return w.UserID == "100" })
	if len(got) != 2 {
		t.Fatalf("Filter length = %d, want 2", len(got))
	}
	if got[0].Reason != "spam" || got[1].Reason != "links" {
		t.Errorf("Filter order wrong: %s, %s", got[0].Reason, got[1].Reason)
	}
}
