// Package dbg turns the arena indices the trapmap core addresses everything
// by into human-readable labels, for logs and debug drawings. It flagrantly
// leaks memory but generates names lazily, so it's not a problem unless
// you're actually using it.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// Kind distinguishes which arena an index names a member of, since a
// trapezoid index and a DAG node index both being small integers would
// otherwise collide in the name cache.
type Kind uint8

const (
	KindTrapezoid Kind = iota
	KindNode
	KindPoint
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindTrapezoid:
		return "Trapezoid"
	case KindNode:
		return "Node"
	case KindPoint:
		return "Point"
	case KindSegment:
		return "Segment"
	default:
		return "Unknown"
	}
}

type key struct {
	kind Kind
	idx  uint32
}

var memo map[key]string

func init() {
	memo = make(map[key]string)
	// Since ids are generated in order of demand, nondeterministic mode
	// reminds the reader that the same name doesn't refer to the same
	// thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a memoized adjective-noun label for (kind, idx), generating
// one the first time this pair is seen.
func Name(kind Kind, idx uint32) string {
	k := key{kind: kind, idx: idx}
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}

// Colorized wraps Name's output in a kind-specific terminal color, for
// telling trapezoids, nodes, points, and segments apart at a glance in
// debug output.
func Colorized(kind Kind, idx uint32) string {
	name := Name(kind, idx)
	switch kind {
	case KindTrapezoid:
		return aurora.Cyan(name).String()
	case KindNode:
		return aurora.Magenta(name).String()
	case KindPoint:
		return aurora.Green(name).String()
	case KindSegment:
		return aurora.Yellow(name).String()
	default:
		return name
	}
}
