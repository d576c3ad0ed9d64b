package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Red nodes are filled red, missing children are
// drawn as small black dots.
func Tree2Dot[K, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	a := t.a
	if root := a.head.root; root != none {
		nilid := 0
		stack := []nodeID{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := a.node(id)
			label := dotEscape(fmt.Sprintf("%v", n.value))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", id, label, nodeDotStyles(n.color))
			for _, child := range [2]nodeID{n.left, n.right} {
				if child == none {
					nilid++
					fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", id, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, child)
			}
			if n.right != none {
				stack = append(stack, n.right)
			}
			if n.left != none {
				stack = append(stack, n.left)
			}
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=point,width=.1]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle"
	if c == red {
		s += ",color=\"#aa0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#444444\",fontcolor=white"
	}
	return s
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
