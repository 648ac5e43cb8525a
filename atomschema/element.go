// Package atomschema validates parsed atom feed entries against the
// structural rules of RFC 4287 §4.1.2. It does not parse xml itself, it
// walks an already resolved element tree and collects findings.
package atomschema

// Element is the read only view on a parsed feed element. The feed
// package provides a node backed implementation, tests can bring their
// own. An attribute name may occur more than once, values are reported
// in document order.
type Element interface {
	Name() string
	ChildrenByName(name string) []Element
	AttributeValues(name string) []string
	Children() []Element
}
