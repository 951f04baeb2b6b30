// Package deck loads slide decks from TOML, YAML or Markdown files.
package deck

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"swipedeck/internal/carousel"
)

var (
	// ErrUnsupportedFormat is returned for deck files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported deck format")

	// ErrEmptySlide is returned when a slide has neither a title nor any content.
	ErrEmptySlide = errors.New("slide has no title or content")
)

// Format identifies a deck file encoding
type Format string

const (
	FormatTOML     Format = "toml"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Slide is one page of a deck: a heading, a prominent header line,
// plain paragraphs and an optional markdown body
type Slide struct {
	Title  string   `toml:"title" yaml:"title"`
	Header string   `toml:"header,omitempty" yaml:"header,omitempty"`
	Info   []string `toml:"info,omitempty" yaml:"info,omitempty"`
	Body   string   `toml:"body,omitempty" yaml:"body,omitempty"`
}

// Empty reports whether the slide carries nothing to show
func (s Slide) Empty() bool {
	return strings.TrimSpace(s.Title) == "" &&
		strings.TrimSpace(s.Header) == "" &&
		len(s.Info) == 0 &&
		strings.TrimSpace(s.Body) == ""
}

// Deck is an ordered list of slides
type Deck struct {
	Title  string  `toml:"title,omitempty" yaml:"title,omitempty"`
	Slides []Slide `toml:"slides" yaml:"slides"`
}

// SlideSet returns the deck's slides as an immutable carousel slide set
func (d *Deck) SlideSet() carousel.SlideSet[Slide] {
	if d == nil {
		return carousel.SlideSet[Slide]{}
	}
	return carousel.NewSlideSet(d.Slides...)
}

// Validate checks every slide has something to render
func (d *Deck) Validate() error {
	for i, s := range d.Slides {
		if s.Empty() {
			return fmt.Errorf("slide %d: %w", i+1, ErrEmptySlide)
		}
	}
	return nil
}

// FormatForPath picks the format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and parses the deck at path
func Load(path string) (*Deck, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	d, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// Parse decodes an in-memory deck
func Parse(format Format, data []byte) (*Deck, error) {
	var d Deck
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse toml deck: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse yaml deck: %w", err)
		}
	case FormatMarkdown:
		d = parseMarkdown(data)
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// parseMarkdown splits on "---" lines. Within a slide the first "# " line is
// the title, the first "## " line the header, and the rest the body.
func parseMarkdown(data []byte) Deck {
	var d Deck
	var chunks [][]string
	var cur []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "---" {
			chunks = append(chunks, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	chunks = append(chunks, cur)

	for _, lines := range chunks {
		if strings.TrimSpace(strings.Join(lines, "")) == "" {
			continue
		}
		d.Slides = append(d.Slides, markdownSlide(lines))
	}
	return d
}

func markdownSlide(lines []string) Slide {
	var s Slide
	var body []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case s.Title == "" && strings.HasPrefix(trimmed, "# "):
			s.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		case s.Header == "" && strings.HasPrefix(trimmed, "## "):
			s.Header = strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
		default:
			body = append(body, line)
		}
	}
	s.Body = strings.TrimSpace(strings.Join(body, "\n"))
	return s
}
