package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/flavioheleno/dmd"
	"github.com/flavioheleno/dmd/mini"
)

// Script is a list of drawing steps, optionally repeated.
type Script struct {
	// Repeat is the number of extra passes; negative loops until cancelled.
	Repeat int    `yaml:"repeat" toml:"repeat"`
	Steps  []Step `yaml:"steps" toml:"steps"`
}

// Step is one drawing operation of a script.
type Step struct {
	Op     string      `yaml:"op" toml:"op"`
	X      int         `yaml:"x" toml:"x"`
	Y      int         `yaml:"y" toml:"y"`
	X1     int         `yaml:"x1" toml:"x1"`
	Y1     int         `yaml:"y1" toml:"y1"`
	X2     int         `yaml:"x2" toml:"x2"`
	Y2     int         `yaml:"y2" toml:"y2"`
	R      int         `yaml:"r" toml:"r"`
	Width  int         `yaml:"width" toml:"width"`
	Height int         `yaml:"height" toml:"height"`
	Fill   bool        `yaml:"fill" toml:"fill"`
	Text   string      `yaml:"text" toml:"text"`
	Pad    bool        `yaml:"pad" toml:"pad"`
	Colour colourValue `yaml:"colour" toml:"colour"`
	Delay  string      `yaml:"delay" toml:"delay"`
}

// colourValue accepts a number or a colour name. Unset means on.
type colourValue struct {
	set bool
	c   dmd.Color
}

func (v colourValue) color() dmd.Color {
	if !v.set {
		return dmd.On
	}
	return v.c
}

func (v *colourValue) parse(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "off":
		v.c, v.set = dmd.Off, true
		return nil
	case "on":
		v.c, v.set = dmd.On, true
		return nil
	}
	if c, ok := dmd.ColorByName(s); ok {
		v.c, v.set = c, true
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unknown colour %q", s)
	}
	return v.setInt(int64(n))
}

func (v *colourValue) setInt(n int64) error {
	if n < 0 || n > 255 {
		return fmt.Errorf("colour %d is not a byte", n)
	}
	v.c, v.set = dmd.Color(n), true
	return nil
}

func (v *colourValue) UnmarshalYAML(node *yaml.Node) error {
	return v.parse(node.Value)
}

func (v *colourValue) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case int64:
		return v.setInt(d)
	case string:
		return v.parse(d)
	}
	return fmt.Errorf("unsupported colour value %v", data)
}

// LoadScript reads a script from a .yaml, .yml or .toml file.
func LoadScript(path string) (*Script, error) {
	var s Script
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, fmt.Errorf("load script: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load script: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("load script: %w", err)
		}
	default:
		return nil, fmt.Errorf("load script: unsupported extension %q", ext)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("load script: %s has no steps", path)
	}
	return &s, nil
}

// delay returns the pause after the step.
func (s Step) delay() (time.Duration, error) {
	if s.Delay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(s.Delay))
	if err != nil {
		return 0, fmt.Errorf("parse delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("delay %s is negative", d)
	}
	return d, nil
}

// Command converts the step into a command of profile p.
func (s Step) Command(p *dmd.Profile) (dmd.Command, error) {
	switch p.Name() {
	case "full":
		return s.fullCommand()
	case "minimal":
		return s.minimalCommand()
	}
	return nil, fmt.Errorf("unknown profile %v", p)
}

func (s Step) fullCommand() (dmd.Command, error) {
	c := s.Colour.color()
	switch s.Op {
	case "configure":
		return dmd.Configure{Width: s.Width, Height: s.Height}, nil
	case "fill":
		return dmd.Fill{Colour: c}, nil
	case "point":
		return dmd.Point{X: s.X, Y: s.Y, Colour: c}, nil
	case "clear-point":
		return dmd.Point{X: s.X, Y: s.Y, Colour: dmd.Off}, nil
	case "line":
		return dmd.Line{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2, Colour: c}, nil
	case "circle":
		return dmd.Circle{X: s.X, Y: s.Y, R: s.R, Fill: s.Fill, Colour: c}, nil
	case "rectangle":
		return dmd.Rectangle{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2, Fill: s.Fill, Colour: c}, nil
	case "text":
		text := s.Text
		if s.Pad {
			text = dmd.PadText(text)
		}
		return dmd.Text{X: s.X, Y: s.Y, Text: text, Colour: c}, nil
	}
	return nil, fmt.Errorf("op %q not available in full profile", s.Op)
}

func (s Step) minimalCommand() (dmd.Command, error) {
	switch s.Op {
	case "point":
		return mini.Point{X: s.X, Y: s.Y, On: s.Colour.color() != dmd.Off}, nil
	case "clear-point":
		return mini.Point{X: s.X, Y: s.Y}, nil
	case "circle":
		if s.Fill {
			return nil, fmt.Errorf("filled circles not available in minimal profile")
		}
		return mini.Circle{X: s.X, Y: s.Y, R: s.R}, nil
	}
	return nil, fmt.Errorf("op %q not available in minimal profile", s.Op)
}
