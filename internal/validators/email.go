package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShape checks the syntactic shape only. Used for dynamic EMAIL
// fields, where the address belongs to a third party and may not resolve.
func IsEmailShape(email string) bool {
	return emailShape.MatchString(email)
}

// IsEmailDomainValid resolves the domain. Used at registration, where we
// want a deliverable address.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
