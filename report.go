package atomlint

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/foomo/atomlint/vo"
)

// EntryResult holds the outcome for one entry. Result keeps the full
// tree for consumers that care which sub element a finding belongs to,
// Findings is the flat filtered view the report is built from.
type EntryResult struct {
	ID       string
	Result   *vo.Tree[vo.Finding] `json:"-"`
	Findings []vo.Finding
}

type Report struct {
	Results []EntryResult
}

func (r *Report) Demands() (n int) {
	for _, result := range r.Results {
		for _, finding := range result.Findings {
			if finding.Demand {
				n++
			}
		}
	}
	return n
}

func (r *Report) Advices() (n int) {
	for _, result := range r.Results {
		for _, finding := range result.Findings {
			if !finding.Demand {
				n++
			}
		}
	}
	return n
}

func (r *Report) OK() bool {
	return r.Demands() == 0
}

func (r *Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// Print a report
func (r *Report) Print(w io.Writer) {
	p := &printer{w: w, indnt: 0}
	p.println("atom entry lint report")
	p.println("------------------------------------------")
	for i, result := range r.Results {
		name := result.ID
		if name == "" {
			name = fmt.Sprint("entry #", i+1)
		}
		p.println(name)
		p.indent(1)
		if len(result.Findings) == 0 {
			p.println("ok")
		}
		for _, finding := range result.Findings {
			level := "advice"
			if finding.Demand {
				level = "demand"
			}
			p.println(level, ":", finding.Message)
		}
		p.indent(-1)
	}
	p.println("------------------------------------------")
	p.println("entries		", len(r.Results))
	p.println("demands		", r.Demands())
	p.println("advices		", r.Advices())
}

type printer struct {
	w     io.Writer
	indnt int
}

func (p *printer) indent(inc int) {
	p.indnt += inc
}

func (p *printer) println(values ...interface{}) {
	if p.w == nil {
		return
	}
	values = append([]interface{}{strings.Repeat("	", p.indnt)}, values...)
	fmt.Fprintln(p.w, values...)
}
