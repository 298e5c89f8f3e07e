package routerconfig

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PasswordPolicy is the set of rules a new WiFi password must satisfy.
type PasswordPolicy struct {
	MinLength    int  `yaml:"min_length"`
	MaxLength    int  `yaml:"max_length"` // 0 disables the upper bound
	RequireUpper bool `yaml:"require_upper"`
	RequireLower bool `yaml:"require_lower"`
	RequireDigit bool `yaml:"require_digit"`
}

// DefaultPolicy returns the standard WiFi password policy:
// at least 10 characters with an uppercase letter, a lowercase letter
// and a digit. There is no upper bound unless MaxLength is set.
func DefaultPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:    10,
		RequireUpper: true,
		RequireLower: true,
		RequireDigit: true,
	}
}

// PasswordCheck is the outcome of checking a candidate password against a policy.
type PasswordCheck struct {
	// Length is the candidate length in characters
	Length int

	// Missing lists the required character classes the candidate lacks
	Missing []CharacterClass

	// Errors lists every failed rule, length rules first
	Errors []error
}

// OK reports whether the candidate satisfied every rule
func (pc *PasswordCheck) OK() bool {
	return len(pc.Errors) == 0
}

// Err returns the first failed rule, or nil
func (pc *PasswordCheck) Err() error {
	if len(pc.Errors) == 0 {
		return nil
	}
	return pc.Errors[0]
}

// Check evaluates a candidate password against the policy.
// Character classes are ASCII only: A-Z, a-z and 0-9.
func (p PasswordPolicy) Check(password string) *PasswordCheck {
	check := &PasswordCheck{
		Length: utf8.RuneCountInString(password),
	}

	if check.Length < p.MinLength {
		check.Errors = append(check.Errors, NewTooShortError(p.MinLength, check.Length))
	}
	if p.MaxLength > 0 && check.Length > p.MaxLength {
		check.Errors = append(check.Errors, NewTooLongError(p.MaxLength, check.Length))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if p.RequireUpper && !hasUpper {
		check.Missing = append(check.Missing, ClassUppercase)
	}
	if p.RequireLower && !hasLower {
		check.Missing = append(check.Missing, ClassLowercase)
	}
	if p.RequireDigit && !hasDigit {
		check.Missing = append(check.Missing, ClassDigit)
	}
	if len(check.Missing) > 0 {
		check.Errors = append(check.Errors, NewMissingCharacterClassError(check.Missing))
	}

	return check
}

// Requirements returns the policy as user-facing bullet text
func (p PasswordPolicy) Requirements() []string {
	reqs := []string{fmt.Sprintf("At least %d characters", p.MinLength)}
	if p.MaxLength > 0 {
		reqs = append(reqs, fmt.Sprintf("At most %d characters", p.MaxLength))
	}
	if p.RequireUpper {
		reqs = append(reqs, "An uppercase letter (A-Z)")
	}
	if p.RequireLower {
		reqs = append(reqs, "A lowercase letter (a-z)")
	}
	if p.RequireDigit {
		reqs = append(reqs, "A digit (0-9)")
	}
	return reqs
}

// ValidateWiFiPassword checks a candidate WiFi password against the default policy.
func ValidateWiFiPassword(password string) *PasswordCheck {
	return DefaultPolicy().Check(password)
}

// ValidateCredentials validates the connect form.
// Returns a slice of validation errors (empty if valid).
func ValidateCredentials(creds Credentials) []error {
	var errors []error

	if strings.TrimSpace(creds.Address) == "" {
		errors = append(errors, NewMissingFieldError(FieldAddress))
	}
	if creds.Username == "" {
		errors = append(errors, NewMissingFieldError(FieldUsername))
	}
	if creds.Password == "" {
		errors = append(errors, NewMissingFieldError(FieldPassword))
	}

	return errors
}

// ValidateSSID validates a WiFi network name.
// SSIDs must be non-empty and <= 32 bytes.
func ValidateSSID(ssid string) error {
	if ssid == "" {
		return NewMissingFieldError(FieldSSID)
	}
	if len(ssid) > MaxSSIDLength {
		return NewInvalidFieldError(FieldSSID, fmt.Sprintf("network name too long (max %d bytes): %d bytes", MaxSSIDLength, len(ssid)))
	}
	return nil
}

// ValidateWiFiSettings validates the WiFi form against a password policy.
// Empty fields are reported as MissingField before the password policy runs.
// Returns a slice of validation errors (empty if valid).
func ValidateWiFiSettings(settings WiFiSettings, policy PasswordPolicy) []error {
	var errors []error

	if err := ValidateSSID(settings.SSID); err != nil {
		errors = append(errors, err)
	}

	if settings.Password == "" {
		errors = append(errors, NewMissingFieldError(FieldWiFiPassword))
		return errors
	}

	// Don't report policy failures while a required field is still empty
	if len(errors) > 0 && IsMissingField(errors[0]) {
		return errors
	}

	errors = append(errors, policy.Check(settings.Password).Errors...)
	return errors
}

// Strength is a coarse password strength label shown as a hint.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthFair   Strength = "fair"
	StrengthStrong Strength = "strong"
)

// PasswordStrength rates a password against the default policy.
func PasswordStrength(password string) Strength {
	return DefaultPolicy().Strength(password)
}

// Strength rates a password for display purposes only. Anything the policy
// rejects is weak; it never overrides the policy.
func (p PasswordPolicy) Strength(password string) Strength {
	check := p.Check(password)
	if !check.OK() {
		return StrengthWeak
	}

	hasSymbol := strings.IndexFunc(password, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	}) >= 0

	if check.Length >= 16 || (check.Length >= 12 && hasSymbol) {
		return StrengthStrong
	}
	return StrengthFair
}

// FormatValidationErrors formats a slice of validation errors into a user-friendly message.
func FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validation failed with %d error(s):\n", len(errors)))

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}
