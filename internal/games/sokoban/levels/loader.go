// Package levels loads level files into boards. It depends on the engine
// core; the core does not depend on it.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

//go:embed builtin/*
var builtinFS embed.FS

// Level validation errors.
var (
	ErrNotFound      = errors.New("level not found")
	ErrNoPlayer      = errors.New("level has no player")
	ErrNoTargets     = errors.New("level has no targets")
	ErrShortTrophies = errors.New("level has fewer trophies than targets")
)

// Level is a validated level ready to play.
type Level struct {
	ID       string
	Name     string
	Board    *core.Board
	Metadata map[string]string
	FilePath string
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// NewSession starts play on the level's board.
func (l Level) NewSession() *core.Session {
	return core.NewSession(l.Board)
}

// Loader reads level files from a file system tree.
type Loader struct {
	FS   fs.FS
	Root string // directory inside FS to walk

	// AllowTargetless accepts levels without targets. Such boards count as
	// won before the first move.
	AllowTargetless bool

	// Logger receives a warning for every file LoadAll skips. Optional.
	Logger *log.Logger

	source string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: ".", source: dir}
}

// Builtin returns a loader for the levels compiled into the binary.
func Builtin() *Loader {
	return &Loader{FS: builtinFS, Root: "builtin", source: "builtin"}
}

// Source describes where the loader reads from.
func (l *Loader) Source() string {
	if l.source != "" {
		return l.source
	}
	return l.Root
}

// LoadAll recursively loads every supported file under Root. Files that fail
// to parse or validate are skipped, as are later files reusing an ID.
// Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.warn("skipping level file", "file", p, "err", err)
			return nil
		}
		if first, dup := seen[level.ID]; dup {
			l.warn("skipping duplicate level id", "id", level.ID, "file", p, "first", first)
			return nil
		}
		seen[level.ID] = p
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Source(), err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file by its path inside FS.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := l.decode(data, p)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ReadFile loads a level file from disk, outside any loader tree.
func ReadFile(filename string, allowTargetless bool) (Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", filename, err)
	}
	l := &Loader{AllowTargetless: allowTargetless}
	level, err := l.decode(data, filepath.ToSlash(filename))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filename, err)
	}
	return level, nil
}

func (l *Loader) decode(data []byte, p string) (Level, error) {
	parsed, err := formats.Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, err
	}
	board, err := core.ParseLayers(parsed.Ground, parsed.Content)
	if err != nil {
		return Level{}, err
	}
	if err := Validate(board, l.AllowTargetless); err != nil {
		return Level{}, err
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	return Level{
		ID:       id,
		Name:     parsed.Name,
		Board:    board,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// Validate checks that a board is playable as a level: it has a player,
// and every target color has at least as many trophies as targets.
// Boards without targets are rejected unless allowTargetless is set.
func Validate(b *core.Board, allowTargetless bool) error {
	if _, ok := b.Player(); !ok {
		return ErrNoPlayer
	}
	if b.Targets() == 0 && !allowTargetless {
		return ErrNoTargets
	}

	targets := make(map[core.Color]int)
	trophies := make(map[core.Color]int)
	b.Each(func(c core.Cell) {
		if c.Ground.IsTarget() {
			targets[c.Ground.Color]++
		}
		if c.Occupant.Kind == core.OccupantTrophy {
			trophies[c.Occupant.Color]++
		}
	})
	for _, color := range core.AllColors() {
		if trophies[color] < targets[color] {
			return fmt.Errorf("%s: %d targets, %d trophies: %w", color, targets[color], trophies[color], ErrShortTrophies)
		}
	}
	return nil
}

func (l *Loader) warn(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Warn(msg, keyvals...)
	}
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
