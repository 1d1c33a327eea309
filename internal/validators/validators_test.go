package validators

import "testing"

func TestIsEmailShape(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"j.doe+crm@sub.example.co",
	}
	for _, e := range valid {
		if !IsEmailShape(e) {
			t.Errorf("expected valid: %s", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"jane@",
		"jane@example",
		"jane doe@example.com",
	}
	for _, e := range invalid {
		if IsEmailShape(e) {
			t.Errorf("expected invalid: %s", e)
		}
	}
}

func TestIsPhoneShape(t *testing.T) {
	valid := []string{
		"+1 415 555 0100",
		"(11) 98765-4321",
		"5551234567",
	}
	for _, p := range valid {
		if !IsPhoneShape(p) {
			t.Errorf("expected valid: %s", p)
		}
	}

	invalid := []string{
		"",
		"call me",
		"+",
		"123",
	}
	for _, p := range invalid {
		if IsPhoneShape(p) {
			t.Errorf("expected invalid: %s", p)
		}
	}
}
