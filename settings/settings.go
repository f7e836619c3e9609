// Package settings persists the generator's user settings as a TOML file.
//
// The store never fails: a missing or unreadable file yields the defaults,
// which are then written back so the user has a file to edit.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/gogpu/glslgen/glsl"
	"github.com/gogpu/glslgen/internal/logging"
)

// DefaultPath is the settings file used when none is given.
const DefaultPath = "glslgen.toml"

const logTag = "Settings"

// Settings are the user-tunable generation defaults.
type Settings struct {
	// Target is the default GLSL version, as accepted by glsl.ParseVersion.
	Target string `toml:"target" default:"330"`
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int `toml:"indent-width" default:"4"`
	// HighPrecision selects highp default precision on ES targets.
	HighPrecision bool `toml:"high-precision" default:"true"`
	// ResourceDir is where generated shaders are written, relative to the
	// settings file.
	ResourceDir string `toml:"resource-dir" default:"shaders"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Target:        "330",
		IndentWidth:   4,
		HighPrecision: true,
		ResourceDir:   "shaders",
	}
}

// Options converts s to generation options.
func (s Settings) Options() (glsl.Options, error) {
	v, err := glsl.ParseVersion(s.Target)
	if err != nil {
		return glsl.Options{}, err
	}
	return glsl.Options{
		LangVersion:        v,
		IndentWidth:        s.IndentWidth,
		ForceHighPrecision: s.HighPrecision,
	}, nil
}

// Store loads and saves Settings at Path.
type Store struct {
	Path string
	// Log receives failures. Nil means logging.Default().
	Log *logging.Logger
}

// NewStore creates a store for path; an empty path means DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

func (s *Store) logger() *logging.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logging.Default()
}

// Load returns the stored settings. When the file is missing or cannot be
// decoded it returns Defaults() and writes them to Path. Invalid fields are
// replaced by their default with a warning.
func (s *Store) Load() Settings {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger().Error(logTag, fmt.Errorf("reading %s: %w", s.Path, err))
		}
		return s.reset()
	}

	st := Defaults()
	if err := toml.Unmarshal(data, &st); err != nil {
		s.logger().Error(logTag, fmt.Errorf("decoding %s: %w", s.Path, err))
		return s.reset()
	}
	return s.sanitize(st)
}

func (s *Store) reset() Settings {
	st := Defaults()
	s.Save(st)
	return st
}

func (s *Store) sanitize(st Settings) Settings {
	def := Defaults()
	if _, err := glsl.ParseVersion(st.Target); err != nil {
		s.logger().Warn(logTag, fmt.Sprintf("invalid target %q, using %s", st.Target, def.Target))
		st.Target = def.Target
	}
	if st.IndentWidth <= 0 {
		s.logger().Warn(logTag, fmt.Sprintf("invalid indent-width %d, using %d", st.IndentWidth, def.IndentWidth))
		st.IndentWidth = def.IndentWidth
	}
	if st.ResourceDir == "" {
		st.ResourceDir = def.ResourceDir
	}
	return st
}

// Save writes st to Path as indented TOML. Failures are logged, not
// returned.
func (s *Store) Save(st Settings) {
	if err := s.save(st); err != nil {
		s.logger().Error(logTag, err)
	}
}

func (s *Store) save(st Settings) (err error) {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", s.Path, cerr)
		}
	}()

	enc := toml.NewEncoder(f).Indentation("  ").Order(toml.OrderPreserve)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding TOML %s: %w", s.Path, err)
	}
	return nil
}

// ResourceDir returns the directory generated shaders go to, resolved
// against the directory of the settings file, creating it if missing.
func (s *Store) ResourceDir(st Settings) (string, error) {
	dir := st.ResourceDir
	if dir == "" {
		dir = Defaults().ResourceDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(s.Path), dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating resource directory: %w", err)
	}
	return dir, nil
}
