package tree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/robjustinwagner/dectree/feature"
)

const indentation = "    "

/*
WriteText takes an io.Writer and a tree and writes the tree onto the writer
one node per line, parents before children and children in the domain order
of their parent's feature. Each line is indented four spaces per level of
depth and consists of the node's incoming edge value followed by
" {<feature>?}" for internal nodes or " (<label>)" for leaves.
*/
func WriteText(w io.Writer, t *Tree) error {
	return t.Traverse(false, func(path feature.Conjunction, n Node) error {
		var line string
		switch n := n.(type) {
		case *Leaf:
			line = fmt.Sprintf("%s%s (%s)\n", strings.Repeat(indentation, len(path)), n.edge, n.label)
		case *Internal:
			line = fmt.Sprintf("%s%s {%s?}\n", strings.Repeat(indentation, len(path)), n.edge, n.feature.Name())
		}
		_, err := io.WriteString(w, line)
		return err
	})
}

func (t *Tree) String() string {
	var buf bytes.Buffer
	err := WriteText(&buf, t)
	if err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	return buf.String()
}
