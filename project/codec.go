package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"honnef.co/go/contour/config"
	"honnef.co/go/contour/session"
)

// ErrInvalidFile is wrapped by every error caused by a malformed document.
var ErrInvalidFile = errors.New("invalid project file")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFile, fmt.Sprintf(format, args...))
}

// Encode writes snap as an indented JSON document stamped with now.
func Encode(w io.Writer, snap session.Snapshot, now time.Time) error {
	b, err := json.MarshalIndent(NewDocument(snap, now), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Decode reads a document from r and converts it to a snapshot. Settings
// missing from the document take their values from defaults.
func Decode(r io.Reader, defaults config.Settings) (session.Snapshot, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return session.Snapshot{}, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return session.Snapshot{}, invalid("%v", err)
	}
	return doc.snapshot(b, defaults)
}

func (doc *Document) snapshot(raw []byte, defaults config.Settings) (session.Snapshot, error) {
	if doc.Version == "" {
		return session.Snapshot{}, invalid("missing version")
	}
	if major, _, _ := strings.Cut(doc.Version, "."); major != "1" {
		return session.Snapshot{}, invalid("unsupported version %q", doc.Version)
	}
	if doc.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339Nano, doc.Timestamp); err != nil {
			return session.Snapshot{}, invalid("timestamp: %v", err)
		}
	}
	if doc.Paths == nil || len(doc.Paths.Inner) == 0 {
		return session.Snapshot{}, invalid("paths.inner is missing or empty")
	}

	// Settings are decoded a second time over the defaults so that fields
	// absent from the document keep their default values.
	settings := settingsFrom(defaults)
	if doc.Settings == nil {
		return session.Snapshot{}, invalid("settings is missing")
	}
	var wrapper struct {
		Settings *Settings `json:"settings"`
	}
	wrapper.Settings = settings
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return session.Snapshot{}, invalid("settings: %v", err)
	}

	state := doc.AppState
	if state == nil {
		state = doc.LegacyState
	}
	if state == nil {
		state = &AppState{}
	}

	snap := session.Snapshot{
		Inner:      doc.Paths.Inner,
		Outer:      doc.Paths.Outer,
		Center:     state.Center,
		Settings:   settings.config(),
		Finalized:  state.Finalized,
		EditRecord: state.OuterBezierPoints,
	}
	if err := snap.Validate(); err != nil {
		return session.Snapshot{}, invalid("%v", err)
	}
	return snap, nil
}

// Save writes the state of s to path. The file is replaced atomically.
func Save(path string, s *session.Session) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.Snapshot(), time.Now()); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), 0o644)
}

// Load reads the document at path and restores it into s. On failure, s is
// left unchanged.
func Load(path string, s *session.Session) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	snap, err := Decode(f, s.Settings())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Restore(snap); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidFile, err)
	}
	return nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// No-op once the rename has succeeded.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
