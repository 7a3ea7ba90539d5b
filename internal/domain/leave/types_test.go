package leave

import "testing"

func TestTypesClosedSet(t *testing.T) {
	if len(Types) != 18 {
		t.Fatalf("Types has %d entries, want 18", len(Types))
	}
	if !ValidType(TypeBereavementIneligible) {
		t.Error("ineligible sentinel must be a valid type")
	}
	if !ValidType(DefaultType) {
		t.Error("default type must be a valid type")
	}
	if ValidType("Sabbatical") {
		t.Error("unknown label should not validate")
	}
	if ValidType("") {
		t.Error("empty label should not validate")
	}
}

func TestRemediationTypesAreValidBereavement(t *testing.T) {
	if len(RemediationTypes) != 4 {
		t.Fatalf("RemediationTypes has %d entries, want 4", len(RemediationTypes))
	}
	for _, rt := range RemediationTypes {
		if !ValidType(rt) {
			t.Errorf("remediation type %q not in closed set", rt)
		}
		if rt == TypeBereavementIneligible {
			t.Errorf("ineligible sentinel must not be a remediation target")
		}
		if Classify(rt) != CategoryBereavement {
			t.Errorf("remediation type %q should classify as bereavement", rt)
		}
	}
}

func TestSearchTypes(t *testing.T) {
	all := SearchTypes("")
	if len(all) != len(Types) {
		t.Fatalf("empty term should return all %d types, got %d", len(Types), len(all))
	}

	bereavement := SearchTypes("bereavement")
	if len(bereavement) != 5 {
		t.Errorf("SearchTypes(\"bereavement\") returned %d, want 5", len(bereavement))
	}

	adHoc := SearchTypes("AD HOC")
	if len(adHoc) != 2 {
		t.Errorf("case-insensitive search returned %d, want 2", len(adHoc))
	}

	if got := SearchTypes("zzz"); len(got) != 0 {
		t.Errorf("no-match search returned %d entries", len(got))
	}
}
