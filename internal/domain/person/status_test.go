package person

import "testing"

func TestFilterStatuses_MetaCategories(t *testing.T) {
	business, err := FilterStatuses(FilterBusiness)
	if err != nil {
		t.Fatalf("business filter: %v", err)
	}
	wantBusiness := []Status{
		StatusActive, StatusInactive, StatusLead,
		StatusCustomer, StatusVendor, StatusPartner,
	}
	assertStatuses(t, business, wantBusiness)

	personal, err := FilterStatuses(FilterPersonal)
	if err != nil {
		t.Fatalf("personal filter: %v", err)
	}
	wantPersonal := []Status{StatusFriend, StatusFamily, StatusAcquaintance}
	assertStatuses(t, personal, wantPersonal)

	// BUSINESS and PERSONAL must partition the status space.
	seen := map[Status]bool{}
	for _, s := range append(business, personal...) {
		if seen[s] {
			t.Fatalf("status %s appears in both categories", s)
		}
		seen[s] = true
	}
	if len(seen) != 9 {
		t.Fatalf("expected 9 statuses covered, got %d", len(seen))
	}
}

func TestFilterStatuses_AllAndSpecific(t *testing.T) {
	for _, f := range []string{"", FilterAll} {
		statuses, err := FilterStatuses(f)
		if err != nil || statuses != nil {
			t.Fatalf("filter %q: want no restriction, got %v %v", f, statuses, err)
		}
	}

	statuses, err := FilterStatuses("LEAD")
	if err != nil || len(statuses) != 1 || statuses[0] != StatusLead {
		t.Fatalf("specific filter: got %v %v", statuses, err)
	}
}

func TestFilterStatuses_Unknown(t *testing.T) {
	if _, err := FilterStatuses("ENEMY"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func assertStatuses(t *testing.T, got, want []Status) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("statuses mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statuses mismatch at %d: got %v want %v", i, got, want)
		}
	}
}
