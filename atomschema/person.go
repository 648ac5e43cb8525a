package atomschema

import "github.com/foomo/atomlint/vo"

// CheckPerson validates an atom person construct, used for authors and
// contributors. Name findings land in the local slot, email and uri
// keep their own sub results.
func CheckPerson(person Element) *Result {
	return vo.MakeTree(
		vo.Flatten(CheckName(person)),
		[]*Result{
			CheckEmail(person),
			CheckURI(person),
		},
	)
}

func CheckName(person Element) *Result {
	return checkChildCardinality(person, "name", true)
}

func CheckEmail(person Element) *Result {
	return checkChildCardinality(person, "email", false)
}

// TODO CheckURI counts 'email' children, not 'uri' ones. Switching it
// to 'uri' changes existing reports and needs a call, until then the
// behaviour is pinned by TestCheckURICountsEmailChildren.
func CheckURI(person Element) *Result {
	return checkChildCardinality(person, "email", false)
}
