package vo

import "fmt"

// Tree aggregates check results, mirroring the element structure that was
// checked. A node carries its own payloads plus the results of nested
// checks, a node without children is a leaf. An empty tree means valid.
type Tree[T any] struct {
	Local    []T
	Children []*Tree[T]
}

func MakeTree[T any](local []T, children []*Tree[T]) *Tree[T] {
	return &Tree[T]{
		Local:    local,
		Children: children,
	}
}

// Flatten collects all payloads in pre order, local before children,
// children in given order.
func Flatten[T any](tree *Tree[T]) (payloads []T) {
	if tree == nil {
		return nil
	}
	payloads = append(payloads, tree.Local...)
	for _, child := range tree.Children {
		payloads = append(payloads, Flatten(child)...)
	}
	return payloads
}

// Valid is the canonical nothing to report result.
func Valid() *Tree[Finding] {
	return &Tree[Finding]{}
}

func Advice(msg string) *Tree[Finding] {
	return &Tree[Finding]{Local: []Finding{{Message: msg}}}
}

func Demand(msg string) *Tree[Finding] {
	return &Tree[Finding]{Local: []Finding{{Demand: true, Message: msg}}}
}

func Advicef(format string, args ...interface{}) *Tree[Finding] {
	return Advice(fmt.Sprintf(format, args...))
}

func Demandf(format string, args ...interface{}) *Tree[Finding] {
	return Demand(fmt.Sprintf(format, args...))
}

// OK tells whether a finding tree contains no demands.
func OK(tree *Tree[Finding]) bool {
	for _, finding := range Flatten(tree) {
		if finding.Demand {
			return false
		}
	}
	return true
}
