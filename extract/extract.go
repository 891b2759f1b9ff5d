// Package extract promotes accepted free-text answers into the canonical
// personal/address attributes by keyword matching on the question prompt.
package extract

import (
	"regexp"
	"strings"

	"github.com/monjil99/intakeagent/form"
)

// fieldRule maps prompt keywords to one target attribute. Rules are checked
// in declaration order; the first rule whose keywords all appear in the
// prompt fires, and at most one rule fires per answer. Keywords match whole
// words, so "age" does not fire on "agency".
type fieldRule struct {
	keywords []*regexp.Regexp
	assign   func(answer string, p *form.PersonalInfo, a *form.AddressInfo)
}

func keywords(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

var rules = []fieldRule{
	{keywords("first name"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.FirstName = v }},
	{keywords("last name"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.LastName = v }},
	{keywords("email"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.EmailAddress = v }},
	{keywords("phone"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.PhoneNumber = v }},
	{keywords("birth"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.DateOfBirth = v }},
	{keywords("age"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.DateOfBirth = v }},
	{keywords("gender"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.Gender = v }},
	{keywords("race"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.Race = v }},
	{keywords("ethnicity"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.Ethnicity = v }},
	{keywords("marital"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { p.MaritalStatus = v }},
	{keywords("address", "line 1"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.Line1 = v }},
	{keywords("address", "line 2"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.Line2 = v }},
	{keywords("city"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.City = v }},
	{keywords("state"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.State = v }},
	{keywords("zip"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.PostalCode = v }},
	{keywords("postal"), func(v string, p *form.PersonalInfo, a *form.AddressInfo) { a.PostalCode = v }},
}

// Apply updates the accumulators in place from an accepted answer. Unmapped
// prompts leave both untouched. A later answer mapping to the same attribute
// overwrites the earlier value; nothing else ever does.
func Apply(q *form.Question, answer string, personal *form.PersonalInfo, address *form.AddressInfo) {
	prompt := strings.ToLower(q.Prompt)
	for _, rule := range rules {
		matched := true
		for _, kw := range rule.keywords {
			if !kw.MatchString(prompt) {
				matched = false
				break
			}
		}
		if matched {
			rule.assign(answer, personal, address)
			return
		}
	}
}
