package commands

import (
	"context"
	"errors"
	"testing"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// memPrefs is an in-memory ports.Preferences for command tests.
type memPrefs map[string]string

func (p memPrefs) Get(key string) (string, error) { return p[key], nil }
func (p memPrefs) Set(key, value string) error    { p[key] = value; return nil }
func (p memPrefs) Delete(key string) error        { delete(p, key); return nil }
func (p memPrefs) Close() error                   { return nil }

func TestSetRootCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"posix absolute", "/home/user/pictures", false},
		{"windows drive", "C:\\Users\\me\\pictures", false},
		{"windows forward slash", "C:/Users/me/pictures", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"relative", "pictures/here", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSetRootCommand(memPrefs{}, nil, tt.path)
			err := cmd.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%q) = nil, expected error", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%q) = %v, expected nil", tt.path, err)
			}
		})
	}
}

func TestSetRootCommand_Execute(t *testing.T) {
	prefs := memPrefs{application.PrefLegacyPicKey: "/old/pictures"}
	var calls int
	cache := application.NewDiskCache(prefs, func(absRoot string) *domain.Index {
		calls++
		return domain.NewIndex(domain.OriginDisk, "test")
	})
	cache.Get()

	cmd := NewSetRootCommand(prefs, cache, "/new/pictures")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Root != "/new/pictures" {
		t.Errorf("result.Root = %q", result.Root)
	}
	if prefs[application.PrefPicturesRoot] != "/new/pictures" {
		t.Errorf("stored root = %q, expected /new/pictures", prefs[application.PrefPicturesRoot])
	}
	if _, ok := prefs[application.PrefLegacyPicKey]; ok {
		t.Error("legacy key must be cleared so it cannot shadow the new root")
	}

	cache.Get()
	if calls != 2 {
		t.Errorf("builder called %d times, expected a rebuild after the root change", calls)
	}
}

func TestSetRootCommand_ExecuteRejectsRelative(t *testing.T) {
	prefs := memPrefs{}
	cmd := NewSetRootCommand(prefs, nil, "relative/path")

	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for a relative path")
	}
	if !errors.Is(err, application.ErrNotAbsolute) {
		t.Errorf("error = %v, expected to match ErrNotAbsolute", err)
	}
	var rerr *application.RootError
	if !errors.As(err, &rerr) {
		t.Errorf("error = %v, expected a RootError", err)
	} else if rerr.Path != "relative/path" {
		t.Errorf("RootError.Path = %q", rerr.Path)
	}
	if _, ok := prefs[application.PrefPicturesRoot]; ok {
		t.Error("invalid path must not be persisted")
	}
}

func TestSetRootCommand_ExecuteRejectsEmpty(t *testing.T) {
	cmd := NewSetRootCommand(memPrefs{}, nil, "")

	_, err := cmd.Execute(context.Background())
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error = %v, expected a ValidationError", err)
	}
}
