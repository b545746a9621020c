/*
Package seqdbg implements helpers to debug persistent sequences.

It renders the node structure of a sequence's underlying tree, either as a
plain ASCII tree or as a colored console dump.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seqdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/seq/fingertree"
	tp "github.com/xlab/treeprint"
)

// Print renders a tree sketch as an ASCII tree diagram, one node per line.
//
// Obtain a sketch from a sequence like this:
//
//	s := seq.From(1, 2, 3)
//	diagram := seqdbg.Print(s.Sketch())
func Print(sk fingertree.Sketch) string {
	p := tp.New()
	ppt(p, sk)
	return p.String()
}

func ppt(p tp.Tree, sk fingertree.Sketch) {
	if len(sk.Children) == 0 {
		p.AddNode(sk.Label)
		return
	}
	branch := p.AddBranch(sk.Label)
	for _, ch := range sk.Children {
		ppt(branch, ch)
	}
}

// Palette holds the colors used by ToConsole.
type Palette struct {
	Spine *color.Color // inner nodes: tree spine, digits, groups
	Leaf  *color.Color // leaf elements
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Spine: color.New(color.FgCyan),
		Leaf:  color.New(color.FgBlue),
	}
}

// ToConsole writes an indented, colored dump of a tree sketch. A nil
// palette selects a default one.
func ToConsole(w io.Writer, sk fingertree.Sketch, pal *Palette) {
	if pal == nil {
		pal = makeDefaultPalette()
	}
	dump(w, sk, pal, 0)
}

func dump(w io.Writer, sk fingertree.Sketch, pal *Palette, level int) {
	indent := strings.Repeat("  ", level)
	if len(sk.Children) == 0 {
		_, _ = pal.Leaf.Fprintf(w, "%s%s\n", indent, sk.Label)
		return
	}
	_, _ = pal.Spine.Fprintf(w, "%s%s\n", indent, sk.Label)
	for _, ch := range sk.Children {
		dump(w, ch, pal, level+1)
	}
}

// Summary returns a one-line description of a sketch: its label and the
// number of immediate children.
func Summary(sk fingertree.Sketch) string {
	return fmt.Sprintf("%s (%d children)", sk.Label, len(sk.Children))
}
