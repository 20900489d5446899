package sqlite

import (
	"path/filepath"
	"testing"
)

func openTestPrefs(t *testing.T) *Preferences {
	t.Helper()

	prefs, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { prefs.Close() })
	return prefs
}

func TestPreferences_SetGet(t *testing.T) {
	prefs := openTestPrefs(t)

	if err := prefs.Set("pictures.root", "/home/me/pics"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := prefs.Get("pictures.root")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "/home/me/pics" {
		t.Errorf("Get = %q, expected /home/me/pics", got)
	}
}

func TestPreferences_GetUnsetKey(t *testing.T) {
	prefs := openTestPrefs(t)

	got, err := prefs.Get("never.set")
	if err != nil {
		t.Fatalf("Get of unset key failed: %v", err)
	}
	if got != "" {
		t.Errorf("Get = %q, expected empty", got)
	}
}

func TestPreferences_SetReplaces(t *testing.T) {
	prefs := openTestPrefs(t)

	prefs.Set("pictures.root", "/old")
	prefs.Set("pictures.root", "/new")

	got, _ := prefs.Get("pictures.root")
	if got != "/new" {
		t.Errorf("Get = %q, expected /new", got)
	}
}

func TestPreferences_Delete(t *testing.T) {
	prefs := openTestPrefs(t)

	prefs.Set("picturesFolder", "/legacy")
	if err := prefs.Delete("picturesFolder"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := prefs.Get("picturesFolder"); got != "" {
		t.Errorf("Get after Delete = %q, expected empty", got)
	}

	// Deleting an absent key is not an error.
	if err := prefs.Delete("picturesFolder"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestPreferences_PersistAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	first.Set("pictures.root", "/persisted")
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, _ := second.Get("pictures.root")
	if got != "/persisted" {
		t.Errorf("Get after reopen = %q, expected /persisted", got)
	}
}
