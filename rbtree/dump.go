package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	termcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes the tree to w, rotated by 90 degrees: the root is at the left
// margin, right subtrees above and left subtrees below their parent. Red
// nodes are printed in red if w is a terminal, otherwise they are marked
// with a trailing '*'.
func Dump[K, V any](t *Tree[K, V], w io.Writer) {
	d := dumper[V]{a: t.a, w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		d.red = termcolor.New(termcolor.FgRed, termcolor.Bold)
		d.red.EnableColor()
	}
	if t.a.head.root == none {
		fmt.Fprintln(w, "(empty)")
		return
	}
	d.dump(t.a.head.root, 0)
}

type dumper[V any] struct {
	a   *arena[V]
	w   io.Writer
	red *termcolor.Color // nil for plain output
}

// dump prints the subtree at id in reverse in-order.
func (d dumper[V]) dump(id nodeID, depth int) {
	n := d.a.node(id)
	if n.right != none {
		d.dump(n.right, depth+1)
	}
	indent := strings.Repeat("    ", depth)
	label := fmt.Sprintf("%v", n.value)
	switch {
	case n.color == black:
		fmt.Fprintf(d.w, "%s%s\n", indent, label)
	case d.red != nil:
		io.WriteString(d.w, indent)
		d.red.Fprint(d.w, label)
		io.WriteString(d.w, "\n")
	default:
		fmt.Fprintf(d.w, "%s%s*\n", indent, label)
	}
	if n.left != none {
		d.dump(n.left, depth+1)
	}
}
