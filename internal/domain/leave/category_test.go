package leave

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		label string
		want  Category
	}{
		{"Bereavement [Ineligible]", CategoryIneligible},
		{"Bereavement [Other]", CategoryBereavement},
		{"Bereavement [Parent, Sibling, Step Sibling]", CategoryBereavement},
		{"Short Term Disability", CategoryMedical},
		{"Long Term Disability", CategoryMedical},
		{"ADA Leave", CategoryMedical},
		{"Sick Leave", CategoryMedical},
		{"Personal Leave", CategoryPersonal},
		{"Vacation", CategoryPersonal},
		{"Family Medical Leave", CategoryMedical}, // medical precedes family
		{"Paid Family Leave", CategoryFamily},
		{"Baby Bonding", CategoryFamily},
		{"Carer’s Leave", CategoryFamily},
		{"Military Leave", CategoryMilitary},
		{"Ad Hoc - Guaranteed", CategoryAdHoc},
		{"Ramp Back Time", CategoryAdHoc},
		{"Unpaid Leave", CategoryGeneral},
		{"", CategoryGeneral},
		{"Something Else", CategoryGeneral},
	}
	for _, c := range cases {
		if got := Classify(c.label); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.label, got, c.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if Classify("BEREAVEMENT [INELIGIBLE]") != CategoryIneligible {
		t.Error("classification should be case-insensitive")
	}
	if Classify("military leave") != CategoryMilitary {
		t.Error("classification should be case-insensitive")
	}
}

func TestIneligiblePrecedesBereavement(t *testing.T) {
	// The sentinel contains the word "bereavement" too; the ineligible rule
	// must win.
	if got := Classify(TypeBereavementIneligible); got != CategoryIneligible {
		t.Fatalf("Classify(%q) = %q, want %q", TypeBereavementIneligible, got, CategoryIneligible)
	}
}

func TestCategoriesCoverRules(t *testing.T) {
	cats := Categories()
	if len(cats) != len(categoryRules)+1 {
		t.Fatalf("Categories() returned %d entries, want %d", len(cats), len(categoryRules)+1)
	}
	if cats[len(cats)-1] != CategoryGeneral {
		t.Error("CategoryGeneral should be last")
	}
}
