package atomschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foomo/atomlint/atomschema"
	"github.com/foomo/atomlint/feed"
	"github.com/foomo/atomlint/vo"
)

func content(attrs []feed.Attribute, children ...*feed.Element) *feed.Element {
	return &feed.Element{
		Data:  "content",
		Attr:  attrs,
		Child: children,
	}
}

func TestCheckContentTypeDispatch(t *testing.T) {
	textWithChild := content(
		[]feed.Attribute{{Name: "type", Value: "text"}},
		element("p"),
	)
	findings := vo.Flatten(atomschema.CheckContent(textWithChild))
	assert.Len(t, findings, 1)
	assert.True(t, findings[0].Demand)
	assert.Contains(t, findings[0].Message, "cannot have child elements")

	htmlWithChild := content(
		[]feed.Attribute{{Name: "type", Value: "html"}},
		element("p"),
	)
	assert.Len(t, vo.Flatten(atomschema.CheckContent(htmlWithChild)), 1)

	// a missing type attribute defaults to text
	plainWithChild := content(nil, element("p"))
	findings = vo.Flatten(atomschema.CheckContent(plainWithChild))
	assert.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "'text'")

	xhtmlOne := content(
		[]feed.Attribute{{Name: "type", Value: "xhtml"}},
		element("div"),
	)
	assert.Len(t, vo.Flatten(atomschema.CheckContent(xhtmlOne)), 0)

	xhtmlTwo := content(
		[]feed.Attribute{{Name: "type", Value: "xhtml"}},
		element("div"),
		element("div"),
	)
	findings = vo.Flatten(atomschema.CheckContent(xhtmlTwo))
	assert.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "found 2")

	// anything else imposes no structural constraint
	binary := content(
		[]feed.Attribute{{Name: "type", Value: "image/png"}},
		element("p"),
	)
	assert.Len(t, vo.Flatten(atomschema.CheckContent(binary)), 0)
}

func TestCheckContentTypeAttribute(t *testing.T) {
	plain := content(nil)
	assert.Len(t, vo.Flatten(atomschema.CheckContent(plain)), 0)

	// any single type value passes, mime syntax is not checked
	odd := content([]feed.Attribute{{Name: "type", Value: "not a mime type"}})
	assert.Len(t, vo.Flatten(atomschema.CheckContent(odd)), 0)

	doubled := content([]feed.Attribute{
		{Name: "type", Value: "text"},
		{Name: "type", Value: "html"},
	})
	findings := vo.Flatten(atomschema.CheckContent(doubled))
	assert.Len(t, findings, 1)
	assert.True(t, findings[0].Demand)
	assert.Contains(t, findings[0].Message, "'type'")
	assert.Contains(t, findings[0].Message, "found 2")
}

func TestCheckContentSrc(t *testing.T) {
	srcOnly := content([]feed.Attribute{{Name: "src", Value: "http://example.org/movie.mp4"}})
	findings := vo.Flatten(atomschema.CheckContent(srcOnly))
	assert.Len(t, findings, 1)
	assert.False(t, findings[0].Demand)
	assert.Contains(t, findings[0].Message, "advisable to provide a 'type'")

	srcAndType := content([]feed.Attribute{
		{Name: "src", Value: "http://example.org/movie.mp4"},
		{Name: "type", Value: "video/mp4"},
	})
	assert.Len(t, vo.Flatten(atomschema.CheckContent(srcAndType)), 0)

	doubledSrc := content([]feed.Attribute{
		{Name: "type", Value: "video/mp4"},
		{Name: "src", Value: "http://example.org/a.mp4"},
		{Name: "src", Value: "http://example.org/b.mp4"},
	})
	findings = vo.Flatten(atomschema.CheckContent(doubledSrc))
	assert.Len(t, findings, 1)
	assert.True(t, findings[0].Demand)
	assert.Contains(t, findings[0].Message, "'src'")
}
