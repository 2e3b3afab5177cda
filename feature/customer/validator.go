package customer

import (
	"regexp"
	"strings"

	"shop-reconciler/core/validate"
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^0[0-9]{9}$`)
)

// ValidateID checks that the ID is non-empty and, when exists is set, that
// it does not collide with a live customer.
func ValidateID(id string, exists bool) error {
	if strings.TrimSpace(id) == "" {
		return validate.Failf("id", "Customer ID cannot be empty.")
	}
	if exists {
		return validate.Failf("id", "Customer ID already exists: %s", id)
	}
	return nil
}

// ValidateName checks that the name is non-empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validate.Failf("name", "Customer Name cannot be empty.")
	}
	return nil
}

// ValidateEmail checks email syntax and, when taken is set, rejects the
// address as a duplicate.
func ValidateEmail(email string, taken bool) error {
	if !emailPattern.MatchString(email) {
		return validate.Failf("email", "Invalid email: %s", email)
	}
	if taken {
		return validate.Failf("email", "Email already exists: %s", email)
	}
	return nil
}

// ValidatePhoneNumber checks the fixed-length numeric pattern and, when
// taken is set, rejects the number as a duplicate.
func ValidatePhoneNumber(phone string, taken bool) error {
	if !phonePattern.MatchString(phone) || taken {
		return validate.Failf("phoneNumber", "Invalid or duplicated phone number: %s", phone)
	}
	return nil
}
