// Package atomlint lints atom feed entries. The rule engine lives in
// atomschema, this package runs it over whole feeds and reports.
package atomlint

import (
	"strings"

	"github.com/foomo/atomlint/atomschema"
	"github.com/foomo/atomlint/config"
	"github.com/foomo/atomlint/feed"
	"github.com/foomo/atomlint/vo"
)

type job struct {
	i     int
	entry *feed.Element
}

// Lint validates the given entries with conf.Concurrency workers. The
// checks are pure, so entries can be fanned out freely, result order
// stays document order.
func Lint(conf *config.Config, entries []*feed.Element) *Report {
	concurrency := conf.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]EntryResult, len(entries))
	chanJobs := make(chan job)
	chanDone := make(chan bool)
	for worker := 0; worker < concurrency; worker++ {
		go func() {
			for j := range chanJobs {
				tree := atomschema.ValidateEntry(j.entry)
				results[j.i] = EntryResult{
					ID:       entryID(j.entry),
					Result:   tree,
					Findings: filterFindings(conf, vo.Flatten(tree)),
				}
			}
			chanDone <- true
		}()
	}
	for i, entry := range entries {
		chanJobs <- job{i: i, entry: entry}
	}
	close(chanJobs)
	for worker := 0; worker < concurrency; worker++ {
		<-chanDone
	}
	report := &Report{Results: results}
	trackReport(report)
	return report
}

func entryID(entry *feed.Element) string {
	for _, child := range entry.Child {
		if child.Data == "id" {
			return child.Text
		}
	}
	return ""
}

func filterFindings(conf *config.Config, findings []vo.Finding) (filtered []vo.Finding) {
	filtered = make([]vo.Finding, 0, len(findings))
FindingLoop:
	for _, finding := range findings {
		if !finding.Demand && !conf.Advice {
			continue FindingLoop
		}
		for _, skip := range conf.Skip {
			if strings.Contains(finding.Message, skip) {
				continue FindingLoop
			}
		}
		filtered = append(filtered, finding)
	}
	return filtered
}
