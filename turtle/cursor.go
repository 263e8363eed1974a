package turtle

import (
	"goki.dev/mat32/v2"

	"github.com/Sayama3/L-System/tree"
)

// Cursor is the turtle's per-branch state: where it is, which way it
// faces, and which output node owns what it draws next. Cursors are
// ephemeral; they live only inside the interpreter's stack during a
// single generation run.
type Cursor struct {
	Position mat32.Vec3
	Rotation mat32.Quat
	Node     tree.NodeID
}

// Forward returns the cursor's heading: the canonical up axis rotated
// by the cursor's orientation.
func (c Cursor) Forward() mat32.Vec3 {
	return mat32.V3(0, 1, 0).MulQuat(c.Rotation)
}

// stack is a growable cursor stack addressed by index. Branch scopes
// map onto push/pop; in-place cursor updates use replaceTop rather
// than pop+push.
type stack []Cursor

func (s stack) peek() Cursor {
	return s[len(s)-1]
}

func (s stack) replaceTop(c Cursor) {
	s[len(s)-1] = c
}

func (s *stack) push(c Cursor) {
	*s = append(*s, c)
}

func (s *stack) pop() Cursor {
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top
}
