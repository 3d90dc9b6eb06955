package analyze

import (
	"strings"
)

// TypePath builds a readable path of member names.
// Examples:
//   - "Order" for the root
//   - "Order.origin" for a member
//   - "Order.origin.X" for a member of a nested reflectable struct
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Member appends a member name to the path.
func (p *TypePath) Member(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Depth returns the number of members below the root.
func (p *TypePath) Depth() int {
	return len(p.parts) - 1
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// MemberPaths lists the paths of the fields root registers, recursing into
// fields whose type is another struct for which include reports true. Nesting
// stops at maxDepth, which also bounds cyclic type graphs.
func (g *TypeGraph) MemberPaths(root *TypeInfo, include func(*TypeInfo) bool, maxDepth int) []string {
	if root == nil || root.Kind != TypeKindStruct {
		return nil
	}

	var paths []string
	g.memberPaths(root, NewTypePath(root.ID.Name), include, maxDepth, &paths)

	return paths
}

func (g *TypeGraph) memberPaths(t *TypeInfo, path *TypePath, include func(*TypeInfo) bool, maxDepth int, out *[]string) {
	if path.Depth() >= maxDepth {
		return
	}

	for i := range t.Fields {
		name, ok := t.Fields[i].MemberName()
		if !ok {
			continue
		}

		memberPath := path.Member(name)
		*out = append(*out, memberPath.String())

		nested := g.GetType(t.Fields[i].TypeID)
		if nested != nil && nested.Kind == TypeKindStruct && include(nested) {
			g.memberPaths(nested, memberPath, include, maxDepth, out)
		}
	}
}
