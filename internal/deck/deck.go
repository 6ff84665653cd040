// Package deck loads the cards a carousel shows.
//
// A deck file is TOML or YAML:
//
//	name = "android"
//
//	[[cards]]
//	title = "Cupcake"
//	body = "Android 1.5\nApril 2009"
//	accent = "#a4c639"
//
// Any other file is read as one card per non-empty line, with " | "
// separating the title from the body lines.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Card is one carousel item.
type Card struct {
	Title  string `koanf:"title"  yaml:"title"`
	Body   string `koanf:"body"   yaml:"body"`
	Accent string `koanf:"accent" yaml:"accent"` // optional "#rrggbb" border color
}

// Deck is a named, ordered list of cards.
type Deck struct {
	Name  string `koanf:"name"  yaml:"name"`
	Cards []Card `koanf:"cards" yaml:"cards"`

	// Source is the file the deck was loaded from, empty for built-in decks.
	Source string `koanf:"-" yaml:"-"`
}

// ID identifies the deck for saved state: the absolute source path when
// there is one, the name otherwise.
func (d *Deck) ID() string {
	if d.Source != "" {
		return d.Source
	}
	return "builtin:" + d.Name
}

// Load reads a deck file, picking the format from its extension.
func Load(path string) (*Deck, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	var d *Deck
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".toml":
		d, err = loadTOML(abs)
	case ".yaml", ".yml":
		d, err = loadYAML(abs)
	default:
		d, err = loadLines(abs)
	}
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", path, err)
	}

	d.Source = abs
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	d.normalize()
	return d, nil
}

func loadTOML(path string) (*Deck, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}
	var d Deck
	if err := k.Unmarshal("", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func loadYAML(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func loadLines(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromLines("", f)
}

// FromLines builds a deck from text, one card per non-empty line.
func FromLines(name string, r io.Reader) (*Deck, error) {
	d := &Deck{Name: name}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, " | ")
		card := Card{Title: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			body := make([]string, 0, len(parts)-1)
			for _, p := range parts[1:] {
				body = append(body, strings.TrimSpace(p))
			}
			card.Body = strings.Join(body, "\n")
		}
		d.Cards = append(d.Cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	d.normalize()
	return d, nil
}

// normalize drops cards with neither title nor body.
func (d *Deck) normalize() {
	cards := d.Cards[:0]
	for _, c := range d.Cards {
		c.Title = strings.TrimSpace(c.Title)
		c.Body = strings.Trim(c.Body, "\n")
		if c.Title == "" && strings.TrimSpace(c.Body) == "" {
			continue
		}
		cards = append(cards, c)
	}
	d.Cards = cards
}
