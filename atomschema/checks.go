package atomschema

import (
	"fmt"

	"github.com/foomo/atomlint/vo"
)

// Result is a finding tree for one element and its sub elements.
type Result = vo.Tree[vo.Finding]

// ValidateEntry runs every entry level rule on the given entry element.
// All rules run, nothing short circuits, so one call surfaces every
// defect at once. The returned tree has one child per rule in the order
// author, categories, contents, contributor, content-link, links, id,
// published, rights, source, summary, title, updated.
func ValidateEntry(entry Element) *Result {
	return vo.MakeTree(nil, []*Result{
		CheckEntryAuthor(entry),
		CheckCats(entry),
		CheckContents(entry),
		CheckContributor(entry),
		CheckContentLink(entry),
		CheckLinks(entry),
		CheckID(entry),
		CheckPublished(entry),
		CheckRights(entry),
		CheckSource(entry),
		CheckSummary(entry),
		CheckTitle(entry),
		CheckUpdated(entry),
	})
}

// checkChildCardinality is the shared scalar rule: 0 is only fine for
// optional fields, 1 is fine, 2+ never is. The observed count ends up
// verbatim in the message.
func checkChildCardinality(el Element, name string, required bool) *Result {
	n := len(el.ChildrenByName(name))
	switch {
	case n == 0:
		if required {
			return vo.Demand("Required '" + name + "' element missing")
		}
		return vo.Valid()
	case n == 1:
		return vo.Valid()
	case required:
		return vo.Demandf("exactly one '%s' element expected, found %d", name, n)
	default:
		return vo.Demandf("at most one '%s' element expected, found %d", name, n)
	}
}

func checkAttrCardinality(el Element, name string) *Result {
	n := len(el.AttributeValues(name))
	if n > 1 {
		return vo.Demandf("at most one '%s' attribute expected, found %d", name, n)
	}
	return vo.Valid()
}

func CheckID(entry Element) *Result {
	return checkChildCardinality(entry, "id", true)
}

func CheckTitle(entry Element) *Result {
	return checkChildCardinality(entry, "title", true)
}

func CheckUpdated(entry Element) *Result {
	return checkChildCardinality(entry, "updated", true)
}

func CheckPublished(entry Element) *Result {
	return checkChildCardinality(entry, "published", false)
}

func CheckRights(entry Element) *Result {
	return checkChildCardinality(entry, "rights", false)
}

func CheckSource(entry Element) *Result {
	return checkChildCardinality(entry, "source", false)
}

func CheckSummary(entry Element) *Result {
	return checkChildCardinality(entry, "summary", false)
}

// CheckContributor does not impose any rules yet.
func CheckContributor(entry Element) *Result {
	return vo.Valid()
}

// CheckEntryAuthor demands an author on the entry. Entries inheriting
// their author from the feed carry it nested in their summary after
// parsing, so without a direct author the first summary child is
// consulted before giving up.
func CheckEntryAuthor(entry Element) *Result {
	authors := entry.ChildrenByName("author")
	if len(authors) == 0 {
		summaries := entry.ChildrenByName("summary")
		if len(summaries) == 0 {
			return vo.Demand("Required 'author' element missing, no 'summary' either")
		}
		authors = summaries[0].ChildrenByName("author")
		if len(authors) == 0 {
			return vo.Demand("Required 'author' element missing")
		}
	}
	children := make([]*Result, 0, len(authors))
	for _, author := range authors {
		children = append(children, CheckPerson(author))
	}
	return vo.MakeTree(nil, children)
}

// CheckCats validates every category child on its own, any number of
// categories is fine.
func CheckCats(entry Element) *Result {
	cats := entry.ChildrenByName("category")
	children := make([]*Result, 0, len(cats))
	for _, cat := range cats {
		children = append(children, CheckCat(cat))
	}
	return vo.MakeTree(nil, children)
}

// CheckContents demands at most one content child and still validates
// every single one, so cardinality and structural defects compound.
func CheckContents(entry Element) *Result {
	contents := entry.ChildrenByName("content")
	var local []vo.Finding
	if len(contents) > 1 {
		local = append(local, vo.Finding{
			Demand:  true,
			Message: fmt.Sprintf("at most one 'content' element expected, found %d", len(contents)),
		})
	}
	children := make([]*Result, 0, len(contents))
	for _, content := range contents {
		children = append(children, CheckContent(content))
	}
	return vo.MakeTree(local, children)
}

// CheckContentLink only cares about entries without content, those must
// offer at least one alternate link instead.
func CheckContentLink(entry Element) *Result {
	if len(entry.ChildrenByName("content")) > 0 {
		return vo.Valid()
	}
	for _, link := range entry.ChildrenByName("link") {
		for _, rel := range link.AttributeValues("rel") {
			if rel == "alternate" {
				return vo.Valid()
			}
		}
	}
	return vo.Demand("entry without 'content' needs a 'link' with rel=\"alternate\"")
}

// CheckLinks hunts for duplicate alternate links. Only links carrying
// both a type and a hreflang take part, the pair of those two values
// must be unique among the rel="alternate" links of one entry.
func CheckLinks(entry Element) *Result {
	seen := map[[2]string]bool{}
LinkLoop:
	for _, link := range entry.ChildrenByName("link") {
		for _, rel := range link.AttributeValues("rel") {
			if rel == "alternate" {
				types := link.AttributeValues("type")
				hreflangs := link.AttributeValues("hreflang")
				if len(types) == 0 || len(hreflangs) == 0 {
					continue LinkLoop
				}
				pair := [2]string{types[0], hreflangs[0]}
				if seen[pair] {
					return vo.Demand("cannot have duplicate link-rel-alternate-type-hreflang")
				}
				seen[pair] = true
				continue LinkLoop
			}
		}
	}
	return vo.Valid()
}
