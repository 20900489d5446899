package domain

import (
	"path"
	"slices"
	"strings"
)

// Reference prefixes understood by the resolver.
const (
	// ReferencePrefix marks a reference into a picture index (bundled or disk).
	ReferencePrefix = "@pp/"
	// MediaPrefix marks a reference into the media directory next to the
	// process working directory.
	MediaPrefix = "@media/"
)

// pictureExts lists extensions that are considered picture files.
var pictureExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true,
}

// IsPictureFile reports whether name has a supported picture extension.
// Matching is case-insensitive; the name itself keeps its case.
func IsPictureFile(name string) bool {
	return pictureExts[strings.ToLower(path.Ext(name))]
}

// Origin identifies which asset source produced an index.
type Origin int

const (
	OriginBundled Origin = iota // assets embedded in the build output
	OriginDisk                  // assets scanned from a local directory
)

func (o Origin) String() string {
	switch o {
	case OriginBundled:
		return "bundled"
	case OriginDisk:
		return "disk"
	default:
		return "unknown"
	}
}

// FileRecord is one indexed picture file.
type FileRecord struct {
	Name         string // base file name
	RelativePath string // canonical, root-relative, forward slashes
	Reference    string // stable symbolic key, e.g. "@pp/room/lamp.png"
	URL          string // loadable URL for the rendering layer
	Origin       Origin
}

// DirectoryNode is one directory in an index tree. The root node has an
// empty name.
type DirectoryNode struct {
	Name    string
	Subdirs map[string]*DirectoryNode
	Files   []FileRecord
}

// NewDirectoryNode creates an empty directory node.
func NewDirectoryNode(name string) *DirectoryNode {
	return &DirectoryNode{
		Name:    name,
		Subdirs: make(map[string]*DirectoryNode),
	}
}

// Insert places rec under relPath, creating intermediate directories on
// demand. The final path segment is the file name; the record is appended
// to the terminal directory's file list.
func (n *DirectoryNode) Insert(relPath string, rec FileRecord) {
	segments := SplitPath(relPath)
	if len(segments) == 0 {
		return
	}
	dir := n
	for _, seg := range segments[:len(segments)-1] {
		child, ok := dir.Subdirs[seg]
		if !ok {
			child = NewDirectoryNode(seg)
			dir.Subdirs[seg] = child
		}
		dir = child
	}
	dir.Files = append(dir.Files, rec)
}

// Find descends the tree along the directory segments of relPath and
// returns the record whose final segment matches, or false when any
// segment is missing.
func (n *DirectoryNode) Find(relPath string) (FileRecord, bool) {
	segments := SplitPath(relPath)
	if len(segments) == 0 {
		return FileRecord{}, false
	}
	dir := n
	for _, seg := range segments[:len(segments)-1] {
		child, ok := dir.Subdirs[seg]
		if !ok {
			return FileRecord{}, false
		}
		dir = child
	}
	name := segments[len(segments)-1]
	for _, f := range dir.Files {
		if f.Name == name {
			return f, true
		}
	}
	return FileRecord{}, false
}

// SortedSubdirs returns the child directories in ascending name order.
func (n *DirectoryNode) SortedSubdirs() []*DirectoryNode {
	names := make([]string, 0, len(n.Subdirs))
	for name := range n.Subdirs {
		names = append(names, name)
	}
	slices.Sort(names)
	children := make([]*DirectoryNode, 0, len(names))
	for _, name := range names {
		children = append(children, n.Subdirs[name])
	}
	return children
}

// Index is the immutable result of scanning one asset source. Rebuilding
// produces a new Index value; an Index is never patched in place.
type Index struct {
	Origin      Origin
	Method      string // diagnostic: which strategy produced the index
	Root        *DirectoryNode
	ByReference map[string]FileRecord
	Count       int
	Err         string   // diagnostic, empty when the build succeeded
	Skipped     []string // subtrees skipped during a disk walk
}

// NewIndex creates an empty index for the given origin.
func NewIndex(origin Origin, method string) *Index {
	return &Index{
		Origin:      origin,
		Method:      method,
		Root:        NewDirectoryNode(""),
		ByReference: make(map[string]FileRecord),
	}
}

// Add inserts rec into both the tree and the flat reference map. References
// are unique per index: when rec.Reference is already present the earlier
// record wins and Add is a no-op, so insertion order decides precedence.
func (idx *Index) Add(rec FileRecord) {
	if _, exists := idx.ByReference[rec.Reference]; exists {
		return
	}
	rec.Origin = idx.Origin
	idx.Root.Insert(rec.RelativePath, rec)
	idx.ByReference[rec.Reference] = rec
	idx.Count = len(idx.ByReference)
}
