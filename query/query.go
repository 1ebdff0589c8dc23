// Package query selects tags from a document with boolean expressions.
//
// An expression is evaluated once per tag, parents before children, with
// these variables:
//
//	path   display path of the tag ("" for the root)
//	name   key in the parent compound, "[i]" in a list, "" for the root
//	kind   kind name, e.g. "Int" or "Compound"
//	value  the tag as plain Go values (see tag.Plain)
//	size   entries, items or values of a container or array, runes of a
//	       string, 0 otherwise
//	depth  number of path components
//
// and the function at(path), the plain value at a canonical path from the
// root or nil.  For example
//
//	kind == "String" && value startsWith "minecraft:"
//	name == "Count" && value > 32
package query

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

var ErrQuery = errors.New("query error")

// Env is the per tag evaluation environment.
type Env struct {
	Path  string `expr:"path"`
	Name  string `expr:"name"`
	Kind  string `expr:"kind"`
	Value any    `expr:"value"`
	Size  int    `expr:"size"`
	Depth int    `expr:"depth"`
}

// NewEnv builds the environment of ref.
func NewEnv(ref tree.NodeRef) Env {
	return Env{
		Path:  ref.Path.String(),
		Name:  ref.Name(),
		Kind:  ref.Tag.Kind().String(),
		Value: tag.Plain(ref.Tag),
		Size:  size(ref.Tag),
		Depth: ref.Depth(),
	}
}

func size(t tag.Tag) int {
	switch x := t.(type) {
	case *tag.Compound:
		return x.Len()
	case *tag.List:
		return x.Len()
	case tag.ByteArray:
		return len(x)
	case tag.IntArray:
		return len(x)
	case tag.LongArray:
		return len(x)
	case tag.String:
		return utf8.RuneCountInString(string(x))
	default:
		return 0
	}
}

// Query is a compiled expression bound to one document.
type Query struct {
	src string
	doc *tree.Document
	prg *vm.Program
}

// Compile checks src against Env; it must produce a bool.
func Compile(doc *tree.Document, src string) (*Query, error) {
	q := &Query{src: src, doc: doc}
	prg, err := expr.Compile(src, q.exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("at", func(params ...any) (any, error) {
			p, err := tpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			ref, err := tree.Resolve(q.doc.Root, p)
			if err != nil {
				return nil, nil
			}
			return tag.Plain(ref.Tag), nil
		},
			new(func(string) any)),
	}
}

// Match evaluates q on ref.
func (q *Query) Match(ref tree.NodeRef) (bool, error) {
	res, err := expr.Run(q.prg, NewEnv(ref))
	if err != nil {
		return false, fmt.Errorf("%w: at %s: %w", ErrQuery, displayPath(ref.Path), err)
	}
	return res.(bool), nil
}

// Find returns every tag of doc matching src in walk order.
func Find(doc *tree.Document, src string) ([]tree.NodeRef, error) {
	q, err := Compile(doc, src)
	if err != nil {
		return nil, err
	}
	var res []tree.NodeRef
	err = tree.Walk(doc.Root, func(ref tree.NodeRef) (bool, error) {
		ok, err := q.Match(ref)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, ref)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q: %d matches\n", src, len(res))
	}
	return res, nil
}

func displayPath(p tpath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
