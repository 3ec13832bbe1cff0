// Package fixture loads layout test cases and checks computed layouts
// against their expectations.
//
// A fixture is a tree of nodes, each with an inline CSS style, optional
// text and optional expected box. Fixtures are written either as YAML or
// as HTML in the style of web-platform layout tests:
//
//	<div id="test-root" style="width: 50px" data-viewport-width="800">
//	  <div style="height: 10px" data-expected-width="50" data-offset-y="0"></div>
//	</div>
//
// Expected positions are relative to the parent's border box.
package fixture

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grindlemire/go-blockflow"
)

// Fixture is one layout test case.
type Fixture struct {
	Name     string   `yaml:"name"`
	Viewport Viewport `yaml:"viewport"`
	Root     *Node    `yaml:"root"`
}

// Viewport is the space offered to the root. Each side is a number, or
// "min-content" / "max-content". Empty means max-content.
type Viewport struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

// Node is one element of a fixture.
type Node struct {
	ID       string  `yaml:"id"`
	Style    string  `yaml:"style"`
	Text     string  `yaml:"text"`
	Children []*Node `yaml:"children"`
	Expect   *Box    `yaml:"expect"`

	built blockflow.NodeID
}

// Box is an expected layout. Nil fields are not checked.
type Box struct {
	X      *float32 `yaml:"x"`
	Y      *float32 `yaml:"y"`
	Width  *float32 `yaml:"width"`
	Height *float32 `yaml:"height"`
}

// Load reads a fixture, choosing the format from the file extension.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var fx *Fixture
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		fx, err = ParseYAML(f)
	case ".html", ".htm":
		fx, err = ParseHTML(f)
	default:
		return nil, fmt.Errorf("fixture %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if fx.Name == "" {
		fx.Name = name
	}
	return fx, nil
}

// Available returns the viewport as available space.
func (f *Fixture) Available() (blockflow.AvailableSize, error) {
	w, err := ParseAvailable(f.Viewport.Width)
	if err != nil {
		return blockflow.AvailableSize{}, fmt.Errorf("viewport width: %w", err)
	}
	h, err := ParseAvailable(f.Viewport.Height)
	if err != nil {
		return blockflow.AvailableSize{}, fmt.Errorf("viewport height: %w", err)
	}
	return blockflow.AvailableSize{Width: w, Height: h}, nil
}

// ParseAvailable parses a number, "min-content" or "max-content". An empty
// string is max-content.
func ParseAvailable(s string) (blockflow.AvailableSpace, error) {
	switch s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")); s {
	case "", "max-content":
		return blockflow.MaxContent, nil
	case "min-content":
		return blockflow.MinContent, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 || math.IsInf(v, 0) {
		return blockflow.AvailableSpace{}, fmt.Errorf("invalid available space %q", s)
	}
	return blockflow.Definite(float32(v)), nil
}

// Walk calls fn for every node in depth-first order with its path, which
// is the node ID when set and the child index chain otherwise.
func (f *Fixture) Walk(fn func(path string, n *Node)) {
	if f.Root != nil {
		walk(f.Root, "root", fn)
	}
}

func walk(n *Node, path string, fn func(string, *Node)) {
	fn(path, n)
	for i, child := range n.Children {
		p := path + "/" + strconv.Itoa(i)
		if child.ID != "" {
			p = "#" + child.ID
		}
		walk(child, p, fn)
	}
}

// NodeID returns the tree node built for n, or false before Build.
func (n *Node) NodeID() (blockflow.NodeID, bool) {
	return n.built, n.built != 0
}
