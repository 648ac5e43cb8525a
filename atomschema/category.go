package atomschema

import "github.com/foomo/atomlint/vo"

// CheckCat validates one category: a term child plus optional scheme
// and label attributes.
func CheckCat(cat Element) *Result {
	return vo.MakeTree(nil, []*Result{
		CheckTerm(cat),
		CheckScheme(cat),
		CheckLabel(cat),
	})
}

func CheckTerm(cat Element) *Result {
	return checkChildCardinality(cat, "term", true)
}

func CheckScheme(cat Element) *Result {
	return checkAttrCardinality(cat, "scheme")
}

func CheckLabel(cat Element) *Result {
	return checkAttrCardinality(cat, "label")
}
