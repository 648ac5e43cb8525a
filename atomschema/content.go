package atomschema

import (
	"fmt"

	"github.com/foomo/atomlint/vo"
)

// CheckContent validates a content element: the type and src attribute
// rules plus the structural constraints the resolved type brings along.
// Sub check findings are flattened into one shallow node on purpose,
// content is a leaf like construct in a report.
func CheckContent(content Element) *Result {
	local := vo.Flatten(checkContentType(content))
	local = append(local, vo.Flatten(checkContentSrc(content))...)

	// a missing type attribute means "text", with repeated type
	// attributes the first one wins
	resolvedType := "text"
	if types := content.AttributeValues("type"); len(types) > 0 {
		resolvedType = types[0]
	}
	numChildren := len(content.Children())
	switch resolvedType {
	case "text", "html":
		if numChildren > 0 {
			local = append(local, vo.Finding{
				Demand:  true,
				Message: fmt.Sprintf("content of type '%s' cannot have child elements, found %d", resolvedType, numChildren),
			})
		}
	case "xhtml":
		// no check that the single child actually is a div
		if numChildren > 1 {
			local = append(local, vo.Finding{
				Demand:  true,
				Message: fmt.Sprintf("xhtml content expects a single child element, found %d", numChildren),
			})
		}
	}
	return vo.MakeTree(local, nil)
}

// checkContentType accepts any single type value as is, mime syntax is
// not checked.
func checkContentType(content Element) *Result {
	return checkAttrCardinality(content, "type")
}

func checkContentSrc(content Element) *Result {
	srcs := content.AttributeValues("src")
	switch {
	case len(srcs) > 1:
		return checkAttrCardinality(content, "src")
	case len(srcs) == 1 && len(content.AttributeValues("type")) == 0:
		return vo.Advice("it is advisable to provide a 'type' along with 'src'")
	}
	return vo.Valid()
}
