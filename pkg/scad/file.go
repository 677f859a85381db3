package scad

import (
	"fmt"
	"os"
	"strings"
)

// File is a complete script: optional facet header lines followed by root
// statements in order.
type File struct {
	FA    float64 // $fa header, emitted when positive
	FS    float64 // $fs header, emitted when positive
	FN    int     // $fn header, emitted when positive
	Roots []*Node
}

// NewFile builds a File over the given roots.
func NewFile(roots ...*Node) *File {
	return &File{Roots: roots}
}

// Add appends roots in order and returns f for chaining.
func (f *File) Add(roots ...*Node) *File {
	f.Roots = append(f.Roots, roots...)
	return f
}

// Script serializes the whole file. Like Node.Script the output depends
// only on the file contents and options.
func (f *File) Script(opts FormatOptions) string {
	opts = opts.withDefaults()
	var sb strings.Builder
	w := &writer{opts: opts}
	if f.FA > 0 {
		fmt.Fprintf(&sb, "$fa=%s;\n", w.f(f.FA))
	}
	if f.FS > 0 {
		fmt.Fprintf(&sb, "$fs=%s;\n", w.f(f.FS))
	}
	if f.FN > 0 {
		fmt.Fprintf(&sb, "$fn=%d;\n", f.FN)
	}
	for _, root := range f.Roots {
		sb.WriteString(root.Script(opts))
	}
	return sb.String()
}

func (f *File) String() string {
	return f.Script(DefaultFormat())
}

// Save writes the serialized script to path.
func (f *File) Save(path string, opts FormatOptions) error {
	if err := os.WriteFile(path, []byte(f.Script(opts)), 0o644); err != nil {
		return fmt.Errorf("writing script to '%s': %w", path, err)
	}
	return nil
}
