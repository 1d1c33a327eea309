package person

import "github.com/haldenworks/contact-manager/internal/httperr"

// ===============================
// Person Status
// ===============================

type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusLead         Status = "LEAD"
	StatusCustomer     Status = "CUSTOMER"
	StatusVendor       Status = "VENDOR"
	StatusPartner      Status = "PARTNER"
	StatusFriend       Status = "FRIEND"
	StatusFamily       Status = "FAMILY"
	StatusAcquaintance Status = "ACQUAINTANCE"
)

// Meta-categories used by list filters.
const (
	FilterAll      = "ALL"
	FilterBusiness = "BUSINESS"
	FilterPersonal = "PERSONAL"
)

var businessStatuses = []Status{
	StatusActive,
	StatusInactive,
	StatusLead,
	StatusCustomer,
	StatusVendor,
	StatusPartner,
}

var personalStatuses = []Status{
	StatusFriend,
	StatusFamily,
	StatusAcquaintance,
}

func InitialStatus() Status {
	return StatusActive
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusLead, StatusCustomer,
		StatusVendor, StatusPartner, StatusFriend, StatusFamily,
		StatusAcquaintance:
		return true
	}
	return false
}

// FilterStatuses expands a list filter into concrete statuses. An empty
// slice means no status restriction (ALL). Unknown filters are rejected.
func FilterStatuses(filter string) ([]Status, error) {
	switch filter {
	case "", FilterAll:
		return nil, nil
	case FilterBusiness:
		return businessStatuses, nil
	case FilterPersonal:
		return personalStatuses, nil
	}

	if IsValidStatus(filter) {
		return []Status{Status(filter)}, nil
	}

	return nil, httperr.ErrBusiness("invalid_status_filter")
}
