package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Load reads a JSON config document from src. Fields absent from the
// document keep the values of Default(). src may be a local file path or any
// go-getter source; remote sources are downloaded into a temporary directory.
func Load(src string) (*Config, error) {
	path := src
	if _, err := os.Stat(src); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %v: %w", src, err, ErrLoad)
		}
		dir, err := os.MkdirTemp("", "cavern-config-")
		if err != nil {
			return nil, fmt.Errorf("temp dir: %v: %w", err, ErrLoad)
		}
		defer os.RemoveAll(dir)

		path = filepath.Join(dir, "config.json")
		if err := getter.GetFile(path, src); err != nil {
			return nil, fmt.Errorf("fetch %s: %v: %w", src, err, ErrLoad)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", src, err, ErrLoad)
	}

	return Decode(data)
}

// Decode parses a JSON document over Default(). Unknown fields are rejected
// so typos in hand-written configs surface instead of silently falling back.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrLoad)
	}

	return cfg, nil
}

// Encode renders cfg as indented JSON, the format Load accepts.
func Encode(cfg *Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
