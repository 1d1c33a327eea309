package validators

import "regexp"

var phoneShape = regexp.MustCompile(`^\+?[0-9(][0-9 ().-]{5,19}$`)

func IsPhoneShape(phone string) bool {
	return phoneShape.MatchString(phone)
}
