package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML scene. Missing sections take their defaults, items
// without an ID get one, and items with no size key get the catalog
// dimensions. An explicit size, even all zero, is kept.
func Decode(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read scene: %w", err)
	}
	snap := DefaultSnapshot()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil && !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("decode scene: %w", err)
	}
	if err := snap.Room.Validate(); err != nil {
		return Snapshot{}, err
	}

	// Second pass records which items spell out size and color.
	var keys struct {
		Items []struct {
			Size  *Dimensions `yaml:"size"`
			Color *Color      `yaml:"color"`
		} `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return Snapshot{}, fmt.Errorf("decode scene: %w", err)
	}

	snap.Lighting = snap.Lighting.Clamped()
	for i := range snap.Items {
		it := &snap.Items[i]
		hasSize, hasColor := false, false
		if i < len(keys.Items) {
			hasSize = keys.Items[i].Size != nil
			hasColor = keys.Items[i].Color != nil
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Name == "" {
			it.Name = it.Kind.String()
		}
		if !hasSize {
			it.Size = it.Kind.Dimensions()
		}
		if !hasColor {
			it.Color = DefaultItemColor
		}
	}
	if _, ok := snap.Selected(); !ok {
		snap.SelectedID = ""
	}
	return snap, nil
}

// Load reads the scene file at path.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	snap, err := Decode(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Encode writes snap as YAML.
func Encode(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return enc.Close()
}

// Save writes snap to path, replacing any existing file.
func Save(path string, snap Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}
