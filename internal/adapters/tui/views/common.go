package views

import "pinacoteca/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// TreeEntry is a mutable navigation wrapper over the immutable index tree.
// Directories carry children and expansion state; leaves carry the record.
type TreeEntry struct {
	Name     string
	Record   *domain.FileRecord // nil for directories
	Children []*TreeEntry
	Parent   *TreeEntry
	Expanded bool
}

// NewTreeEntry converts a directory tree into navigable entries. The root
// starts expanded so top-level content is visible immediately.
func NewTreeEntry(node *domain.DirectoryNode) *TreeEntry {
	root := buildEntry(node, nil)
	root.Expanded = true
	return root
}

func buildEntry(node *domain.DirectoryNode, parent *TreeEntry) *TreeEntry {
	entry := &TreeEntry{Name: node.Name, Parent: parent}
	for _, sub := range node.SortedSubdirs() {
		entry.Children = append(entry.Children, buildEntry(sub, entry))
	}
	for i := range node.Files {
		rec := node.Files[i]
		entry.Children = append(entry.Children, &TreeEntry{
			Name:   rec.Name,
			Record: &rec,
			Parent: entry,
		})
	}
	return entry
}

// IsDir reports whether the entry is a directory.
func (e *TreeEntry) IsDir() bool {
	return e.Record == nil
}

// Depth returns the depth of this entry below the root.
func (e *TreeEntry) Depth() int {
	depth := 0
	for current := e.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// Flatten returns all visible entries (for list rendering).
func (e *TreeEntry) Flatten() []*TreeEntry {
	var result []*TreeEntry
	e.flattenRecursive(&result)
	return result
}

func (e *TreeEntry) flattenRecursive(result *[]*TreeEntry) {
	*result = append(*result, e)
	if e.Expanded {
		for _, child := range e.Children {
			child.flattenRecursive(result)
		}
	}
}
