package formats

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pathprop/pathprop/pkg/math"
)

// VMF errors.
var (
	ErrMalformedVMF  = errors.New("malformed VMF syntax")
	ErrVMFKeyMissing = errors.New("VMF key not found")
	ErrVMFNotLeaf    = errors.New("VMF entry is not a leaf")
	ErrVMFNotBranch  = errors.New("VMF entry is not a branch")
)

// VMFEntry is one node of a parsed map document: either a branch with
// named children or a leaf string value, never both.
type VMFEntry struct {
	children map[string][]*VMFEntry
	value    string
}

// IsLeaf reports whether the entry is a leaf value.
func (e *VMFEntry) IsLeaf() bool {
	return e.children == nil
}

// Str returns the leaf value.
func (e *VMFEntry) Str() (string, error) {
	if !e.IsLeaf() {
		return "", ErrVMFNotLeaf
	}
	return e.value, nil
}

// Vec3 parses the leaf value as three space-separated coordinates.
func (e *VMFEntry) Vec3() (math.Vec3, error) {
	s, err := e.Str()
	if err != nil {
		return math.Vec3{}, err
	}
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: vertex %q does not have 3 coordinates", ErrMalformedVMF, s)
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: vertex %q: %v", ErrMalformedVMF, s, err)
		}
		c[i] = v
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// GetOne returns the single child with the given name. Zero or several
// children of that name is an error.
func (e *VMFEntry) GetOne(key string) (*VMFEntry, error) {
	if e.IsLeaf() {
		return nil, ErrVMFNotBranch
	}
	entries := e.children[key]
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrVMFKeyMissing, key)
	}
	if len(entries) > 1 {
		return nil, fmt.Errorf("VMF key %q has %d values, want exactly 1", key, len(entries))
	}
	return entries[0], nil
}

// GetAll returns every child with the given name; absent keys yield an
// empty slice so callers can range without special cases.
func (e *VMFEntry) GetAll(key string) ([]*VMFEntry, error) {
	if e.IsLeaf() {
		return nil, ErrVMFNotBranch
	}
	return e.children[key], nil
}

// VMF is a parsed Valve map file.
type VMF struct {
	Root *VMFEntry
}

var vmfLeafRe = regexp.MustCompile(`^"(.*)" "(.*)"$`)

// ParseVMF parses VMF text into a branch/leaf tree. The grammar is line
// oriented: `"key" "value"` adds a leaf, a bare name followed by `{` on
// the next line opens a branch, `}` closes it. Unbalanced braces are an
// error.
func ParseVMF(data []byte) (*VMF, error) {
	current := map[string][]*VMFEntry{}
	type frame struct {
		parent map[string][]*VMFEntry
		name   string
	}
	var stack []frame

	lines := strings.Split(string(data), "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "}":
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unmatched closing brace", ErrMalformedVMF)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.parent[top.name] = append(top.parent[top.name], &VMFEntry{children: current})
			current = top.parent

		case vmfLeafRe.MatchString(line):
			m := vmfLeafRe.FindStringSubmatch(line)
			current[m[1]] = append(current[m[1]], &VMFEntry{value: m[2]})

		case line != "":
			if strings.ContainsAny(line, "{}\"") {
				return nil, fmt.Errorf("%w: unexpected line %q", ErrMalformedVMF, line)
			}
			i++
			if i >= len(lines) || strings.TrimSpace(lines[i]) != "{" {
				return nil, fmt.Errorf("%w: block %q not followed by an opening brace", ErrMalformedVMF, line)
			}
			stack = append(stack, frame{parent: current, name: line})
			current = map[string][]*VMFEntry{}
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed blocks", ErrMalformedVMF, len(stack))
	}
	return &VMF{Root: &VMFEntry{children: current}}, nil
}

// WorldSolidSides collects the renderable sides of every world brush (plus
// func_detail entities), skipping tool textures that never draw in game.
// Each returned entry is a "side" branch.
func (v *VMF) WorldSolidSides() ([]*VMFEntry, error) {
	var sides []*VMFEntry

	collect := func(container *VMFEntry) error {
		solids, err := container.GetAll("solid")
		if err != nil {
			return err
		}
		for _, solid := range solids {
			ss, err := solid.GetAll("side")
			if err != nil {
				return err
			}
			for _, s := range ss {
				if sideVisible(s) {
					sides = append(sides, s)
				}
			}
		}
		return nil
	}

	world, err := v.Root.GetOne("world")
	if err != nil {
		return nil, err
	}
	if err := collect(world); err != nil {
		return nil, err
	}

	entities, err := v.Root.GetAll("entity")
	if err != nil {
		return nil, err
	}
	for _, ent := range entities {
		class, err := ent.GetOne("classname")
		if err != nil {
			continue
		}
		if name, err := class.Str(); err != nil || name != "func_detail" {
			continue
		}
		if err := collect(ent); err != nil {
			return nil, err
		}
	}
	return sides, nil
}

// sideVisible filters out tool-textured brush sides that are invisible
// in game.
func sideVisible(side *VMFEntry) bool {
	mat, err := side.GetOne("material")
	if err != nil {
		return false
	}
	name, err := mat.Str()
	if err != nil {
		return false
	}
	switch strings.ToUpper(name) {
	case "TOOLS/TOOLSNODRAW", "TOOLS/TOOLSPLAYERCLIP", "TOOLS/TOOLSCLIP",
		"TOOLS/TOOLSTRIGGER", "TOOLS/TOOLSHINT", "TOOLS/TOOLSSKIP":
		return false
	}
	return true
}
