package schema

import "sort"

// Field names of an [Item] and its [Options] inside a schema document.
const (
	fieldOptions = "options"
	fieldFiles   = "files"
	fieldDirs    = "dirs"
	fieldRepair  = "repair"
	fieldStrict  = "strict"
)

// Options is the per-[Item] policy. Absent options are treated as all false.
type Options struct {
	// Repair creates a declared directory if it does not exist.
	Repair bool `json:"repair,omitempty" yaml:"repair,omitempty"`

	// Strict requires the directory to contain nothing besides the declared
	// files and directories.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// Item is a node in the expected-structure tree, describing one directory.
// It is meant to be passed by reference (pointer) and is never mutated after
// it was loaded.
type Item struct {
	Options *Options         `json:"options,omitempty" yaml:"options,omitempty"`
	Files   []string         `json:"files,omitempty"   yaml:"files,omitempty"`
	Dirs    map[string]*Item `json:"dirs,omitempty"    yaml:"dirs,omitempty"`
}

// IsRepair returns the repair option, defaulting to false.
func (i *Item) IsRepair() bool {
	if i == nil || i.Options == nil {
		return false
	}

	return i.Options.Repair
}

// IsStrict returns the strict option, defaulting to false.
func (i *Item) IsStrict() bool {
	if i == nil || i.Options == nil {
		return false
	}

	return i.Options.Strict
}

// IsEmpty reports whether the [Item] declares neither files nor directories.
func (i *Item) IsEmpty() bool {
	return i == nil || (len(i.Files) == 0 && len(i.Dirs) == 0)
}

// DirNames returns the declared directory names in sorted order, which is the
// order in which they are traversed.
func (i *Item) DirNames() []string {
	if i == nil || len(i.Dirs) == 0 {
		return nil
	}

	names := make([]string, 0, len(i.Dirs))
	for name := range i.Dirs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Depth returns the nesting depth of the tree below (and including) the
// [Item]. A nil [Item] has a depth of zero.
func (i *Item) Depth() int {
	if i == nil {
		return 0
	}

	deepest := 0
	for _, child := range i.Dirs {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}
