package leave

import "strings"

// Types is the closed set of leave type labels tracked by the team sheet.
// The labels must match the spreadsheet values exactly, including the
// typographic apostrophe in "Carer’s Leave".
var Types = []string{
	"Personal Leave",
	"Military Leave",
	"Family Medical Leave",
	"Baby Bonding",
	"Paid Family Leave",
	"Short Term Disability",
	"Long Term Disability",
	"Carer’s Leave",
	"ADA Leave",
	"Bereavement [Child, Step Child, Spouse/ Domestic Partner]",
	"Bereavement [Parent, Sibling, Step Sibling]",
	"Bereavement [Extension]",
	"Bereavement [Other]",
	TypeBereavementIneligible,
	"Ramp Back Time",
	"Ad Hoc - Guaranteed",
	"Ad Hoc - Discount Only",
	"Unpaid Leave",
}

// TypeBereavementIneligible marks a bereavement request that does not qualify
// as filed and must be remediated to one of RemediationTypes.
const TypeBereavementIneligible = "Bereavement [Ineligible]"

// DefaultType is the form default for new records.
const DefaultType = "Personal Leave"

// RemediationTypes are the valid bereavement subtypes offered when a record
// is tagged ineligible.
var RemediationTypes = []string{
	"Bereavement [Child, Step Child, Spouse/ Domestic Partner]",
	"Bereavement [Parent, Sibling, Step Sibling]",
	"Bereavement [Extension]",
	"Bereavement [Other]",
}

// ValidType reports whether label is in the closed type set.
func ValidType(label string) bool {
	for _, t := range Types {
		if t == label {
			return true
		}
	}
	return false
}

// SearchTypes returns the type labels containing term, case-insensitive.
// An empty term returns the full set.
func SearchTypes(term string) []string {
	if term == "" {
		return append([]string(nil), Types...)
	}
	term = strings.ToLower(term)
	var out []string
	for _, t := range Types {
		if strings.Contains(strings.ToLower(t), term) {
			out = append(out, t)
		}
	}
	return out
}
