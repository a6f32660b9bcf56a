package domain

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is shared by the value objects that delegate to validator tags.
// A *validator.Validate caches struct metadata and is safe to reuse.
var validate = validator.New()

// Constraint messages surfaced verbatim by InvalidFormatError.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to standard email address rules"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
)

var (
	nameRegex    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRegex   = regexp.MustCompile(`^[0-9]{3,}$`)
	addressRegex = regexp.MustCompile(`^[^\s].*$`)
)

// Name is a person's full name. Two persons with the same Name are the same person.
type Name struct {
	value string
}

// IsValidName reports whether raw is a valid name.
func IsValidName(raw string) bool {
	return nameRegex.MatchString(raw)
}

// NewName validates raw and wraps it in a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, newInvalidFormatError("name", raw, NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }
func (n Name) IsZero() bool { return n.value == "" }
func (n Name) Equal(o Name) bool { return n.value == o.value }

// Phone is a person's phone number.
type Phone struct {
	value string
}

// IsValidPhone reports whether raw is a valid phone number.
func IsValidPhone(raw string) bool {
	return phoneRegex.MatchString(raw)
}

// NewPhone validates raw and wraps it in a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, newInvalidFormatError("phone", raw, PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool { return p.value == "" }
func (p Phone) Equal(o Phone) bool { return p.value == o.value }

// Email is a person's email address.
type Email struct {
	value string
}

// IsValidEmail reports whether raw is a valid email address.
func IsValidEmail(raw string) bool {
	return validate.Var(raw, "required,email") == nil
}

// NewEmail validates raw and wraps it in an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, newInvalidFormatError("email", raw, EmailConstraints)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool { return e.value == "" }
func (e Email) Equal(o Email) bool { return e.value == o.value }

// Address is a person's postal address.
type Address struct {
	value string
}

// IsValidAddress reports whether raw is a valid address.
func IsValidAddress(raw string) bool {
	return addressRegex.MatchString(raw)
}

// NewAddress validates raw and wraps it in an Address.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, newInvalidFormatError("address", raw, AddressConstraints)
	}
	return Address{value: raw}, nil
}

func (a Address) String() string { return a.value }
func (a Address) IsZero() bool { return a.value == "" }
func (a Address) Equal(o Address) bool { return a.value == o.value }
