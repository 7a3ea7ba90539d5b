package leave

import "strings"

// Category groups leave types for styling and breakdowns.
type Category string

const (
	CategoryIneligible  Category = "bereavement_ineligible"
	CategoryBereavement Category = "bereavement"
	CategoryMedical     Category = "medical"
	CategoryPersonal    Category = "personal"
	CategoryFamily      Category = "family"
	CategoryMilitary    Category = "military"
	CategoryAdHoc       Category = "ad_hoc"
	CategoryGeneral     Category = "general"
)

// categoryRules is an ordered precedence list; first match wins. "ineligible"
// must be checked before "bereavement" because the ineligible sentinel label
// contains both words.
var categoryRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"ineligible"}, CategoryIneligible},
	{[]string{"bereavement"}, CategoryBereavement},
	{[]string{"sick", "medical", "disability", "ada"}, CategoryMedical},
	{[]string{"vacation", "personal"}, CategoryPersonal},
	{[]string{"family", "baby", "carer"}, CategoryFamily},
	{[]string{"military"}, CategoryMilitary},
	{[]string{"ad hoc", "ramp"}, CategoryAdHoc},
}

// Classify maps a leave type label to its category. Unknown labels fall back
// to CategoryGeneral.
func Classify(typeLabel string) Category {
	t := strings.ToLower(typeLabel)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// Categories lists every category in precedence order, CategoryGeneral last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.category)
	}
	return append(out, CategoryGeneral)
}
