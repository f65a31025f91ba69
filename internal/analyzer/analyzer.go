// Package analyzer is the local, rule-based conversation analyzer used when
// the remote service is unavailable. It extracts messages from loosely shaped
// JSON, scans them against a French keyword lexicon, assigns a severity level
// and renders a French report.
//
// Every function is pure; the lexicon is the only package state and is never
// written after init, so concurrent calls need no locking.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

const signalField = "result"

var errInvalidJSON = errors.New("invalid JSON document")

// Build derives a report from a parsed document. A "result" field takes
// precedence over any messages the document also carries.
func Build(doc gjson.Result, scanner *Scanner) *Report {
	if doc.IsObject() {
		if sig := doc.Get(signalField); sig.Exists() && sig.Type != gjson.Null {
			label := text(sig)
			level := ClassifySignal(label)
			adv := signalAdvice[level]
			return &Report{
				Level:          level,
				Path:           PathDirect,
				Signal:         label,
				Conclusion:     adv.conclusion,
				Recommendation: adv.recommendation,
			}
		}
	}

	msgs := Extract(doc)
	hits := scanner.Scan(msgs)
	level := ClassifyHits(len(hits))

	r := &Report{
		Level:        level,
		Path:         PathKeywords,
		MessageCount: len(msgs),
		Hits:         hits,
	}
	if adv, ok := keywordAdvice[level]; ok {
		r.Conclusion = adv.conclusion
		r.Recommendation = adv.recommendation
	} else {
		r.Conclusion = noHitsConclusion
	}
	return r
}

// Analyze runs the whole local pipeline over raw JSON. It never fails: any
// error or panic is turned into an apology text and a nil report.
func Analyze(raw []byte) (report *Report, out string) {
	defer func() {
		if rec := recover(); rec != nil {
			report = nil
			out = fmt.Sprintf(apologyFormat, rec)
		}
	}()

	if !gjson.ValidBytes(raw) {
		return nil, fmt.Sprintf(apologyFormat, errInvalidJSON)
	}

	report = Build(gjson.ParseBytes(raw), DefaultScanner())
	return report, Render(report)
}
