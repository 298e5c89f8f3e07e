package routerconfig

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestValidateWiFiPassword tests the default password policy
func TestValidateWiFiPassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		wantOK      bool
		wantTooShrt bool
		wantMissing []CharacterClass
	}{
		{"Valid: exactly 10 chars", "Abcdefg123", true, false, nil},
		{"Valid: long", "CorrectHorseBattery9Staple", true, false, nil},
		{"Valid: with symbols", "P@ssw0rd-Home!", true, false, nil},
		{"Invalid: empty", "", false, true, []CharacterClass{ClassUppercase, ClassLowercase, ClassDigit}},
		{"Invalid: 9 chars with all classes", "Abcdef123", false, true, nil},
		{"Invalid: lowercase only", "abcdefghij", false, false, []CharacterClass{ClassUppercase, ClassDigit}},
		{"Invalid: no uppercase", "abcdefg123", false, false, []CharacterClass{ClassUppercase}},
		{"Invalid: no lowercase", "ABCDEFG123", false, false, []CharacterClass{ClassLowercase}},
		{"Invalid: no digit", "Abcdefghij", false, false, []CharacterClass{ClassDigit}},
		{"Invalid: non-ASCII letters do not count", "ÄBCDEFG123", false, false, []CharacterClass{ClassLowercase}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ValidateWiFiPassword(tt.password)

			if check.OK() != tt.wantOK {
				t.Errorf("ValidateWiFiPassword(%q).OK() = %v, want %v (errors: %v)", tt.password, check.OK(), tt.wantOK, check.Errors)
			}

			gotTooShort := false
			for _, err := range check.Errors {
				if IsTooShort(err) {
					gotTooShort = true
				}
			}
			if gotTooShort != tt.wantTooShrt {
				t.Errorf("TooShort reported = %v, want %v", gotTooShort, tt.wantTooShrt)
			}

			if diff := cmp.Diff(tt.wantMissing, check.Missing); diff != "" {
				t.Errorf("Missing classes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestValidateWiFiPassword_AllShortRejected checks every length below the minimum
func TestValidateWiFiPassword_AllShortRejected(t *testing.T) {
	base := "Abc123xyzQ"
	for n := 0; n < len(base); n++ {
		candidate := base[:n]
		check := ValidateWiFiPassword(candidate)
		if check.OK() {
			t.Errorf("ValidateWiFiPassword(%q) accepted a %d character password", candidate, n)
			continue
		}
		if !IsTooShort(check.Err()) {
			t.Errorf("ValidateWiFiPassword(%q) first error = %v, want TooShort", candidate, check.Err())
		}
	}

	if check := ValidateWiFiPassword(base); !check.OK() {
		t.Errorf("ValidateWiFiPassword(%q) rejected: %v", base, check.Errors)
	}
}

// TestValidateWiFiPassword_MissingClassReported checks each class for 10+ character passwords
func TestValidateWiFiPassword_MissingClassReported(t *testing.T) {
	tests := []struct {
		password string
		missing  CharacterClass
	}{
		{"abcdefgh12", ClassUppercase},
		{"zzzzzzzzzzzz99", ClassUppercase},
		{"ABCDEFGH12", ClassLowercase},
		{"QWERTYUIOP0", ClassLowercase},
		{"Abcdefghij", ClassDigit},
		{"NoDigitsHereAtAll", ClassDigit},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			check := ValidateWiFiPassword(tt.password)
			if len(check.Errors) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(check.Errors), check.Errors)
			}

			var rerr *RouterError
			if !errors.As(check.Err(), &rerr) || rerr.Type != ErrTypeMissingCharacterClass {
				t.Fatalf("error = %v, want MissingCharacterClass", check.Err())
			}
			if diff := cmp.Diff([]CharacterClass{tt.missing}, rerr.Missing); diff != "" {
				t.Errorf("Missing mismatch (-want +got):\n%s", diff)
			}
			if !strings.Contains(rerr.Message, tt.missing.String()) {
				t.Errorf("message %q should name %q", rerr.Message, tt.missing)
			}
		})
	}
}

func TestPasswordPolicy_Check_Custom(t *testing.T) {
	policy := PasswordPolicy{MinLength: 4, MaxLength: 8, RequireDigit: true}

	tests := []struct {
		password string
		wantErrs []ErrorType
	}{
		{"ab12", nil},
		{"ab1", []ErrorType{ErrTypeTooShort}},
		{"abcdefg12", []ErrorType{ErrTypeTooLong}},
		{"abcd", []ErrorType{ErrTypeMissingCharacterClass}},
		{"abc", []ErrorType{ErrTypeTooShort, ErrTypeMissingCharacterClass}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			check := policy.Check(tt.password)

			var got []ErrorType
			for _, err := range check.Errors {
				typ, _ := errorType(err)
				got = append(got, typ)
			}
			if diff := cmp.Diff(tt.wantErrs, got); diff != "" {
				t.Errorf("error types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPasswordPolicy_MaxLength(t *testing.T) {
	// 64 characters, one past the WPA2 passphrase limit
	long := "Abcdefg123" + strings.Repeat("x", 54)

	if check := DefaultPolicy().Check(long); !check.OK() {
		t.Errorf("default policy rejected a %d character password: %v", len(long), check.Errors)
	}
	if check := ValidateWiFiPassword(strings.Repeat("Ab1", 40)); !check.OK() {
		t.Errorf("ValidateWiFiPassword() rejected a long password: %v", check.Errors)
	}

	capped := DefaultPolicy()
	capped.MaxLength = 63
	if check := capped.Check(long); !IsTooLong(check.Err()) {
		t.Errorf("MaxLength 63 should reject %d characters as TooLong, got %v", len(long), check.Err())
	}
	if check := capped.Check(long[:63]); !check.OK() {
		t.Errorf("MaxLength 63 rejected 63 characters: %v", check.Errors)
	}
}

func TestPasswordCheck_LengthCountsCharacters(t *testing.T) {
	// 9 ASCII characters plus one multi-byte rune is 10 characters
	check := ValidateWiFiPassword("Abcdefg12é")
	if check.Length != 10 {
		t.Errorf("Length = %d, want 10", check.Length)
	}
	if !check.OK() {
		t.Errorf("expected acceptance, got %v", check.Errors)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name       string
		creds      Credentials
		wantFields []string
	}{
		{"Valid", Credentials{Address: DefaultAddress, Username: "admin", Password: "pass"}, nil},
		{"Missing password", Credentials{Address: DefaultAddress, Username: "admin"}, []string{FieldPassword}},
		{"Missing username", Credentials{Address: DefaultAddress, Password: "pass"}, []string{FieldUsername}},
		{"Missing address", Credentials{Address: "  ", Username: "admin", Password: "pass"}, []string{FieldAddress}},
		{"Everything missing", Credentials{}, []string{FieldAddress, FieldUsername, FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCredentials(tt.creds)

			var fields []string
			for _, err := range errs {
				if !IsMissingField(err) {
					t.Errorf("expected MissingField, got %v", err)
				}
				fields = append(fields, err.(*RouterError).Field)
			}
			if diff := cmp.Diff(tt.wantFields, fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateSSID(t *testing.T) {
	tests := []struct {
		name    string
		ssid    string
		wantErr bool
	}{
		{"Valid: normal SSID", "HomeNetwork", false},
		{"Valid: with spaces", "My Home Network", false},
		{"Valid: max length (32 bytes)", strings.Repeat("x", 32), false},
		{"Invalid: empty", "", true},
		{"Invalid: too long (33 bytes)", strings.Repeat("x", 33), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSSID(tt.ssid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSSID(%q) error = %v, wantErr %v", tt.ssid, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWiFiSettings(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		settings WiFiSettings
		wantErrs []ErrorType
	}{
		{"Valid", WiFiSettings{SSID: "HomeNet", Password: "Abcdefg123"}, nil},
		{"Missing SSID skips policy", WiFiSettings{Password: "short"}, []ErrorType{ErrTypeMissingField}},
		{"Missing password", WiFiSettings{SSID: "HomeNet"}, []ErrorType{ErrTypeMissingField}},
		{"Both missing", WiFiSettings{}, []ErrorType{ErrTypeMissingField, ErrTypeMissingField}},
		{"Weak password", WiFiSettings{SSID: "HomeNet", Password: "abcdefghij"}, []ErrorType{ErrTypeMissingCharacterClass}},
		{"Short password", WiFiSettings{SSID: "HomeNet", Password: "Ab1"}, []ErrorType{ErrTypeTooShort}},
		{"Long SSID and weak password", WiFiSettings{SSID: strings.Repeat("n", 40), Password: "abcdefghij"}, []ErrorType{ErrTypeInvalidField, ErrTypeMissingCharacterClass}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateWiFiSettings(tt.settings, policy)

			var got []ErrorType
			for _, err := range errs {
				typ, _ := errorType(err)
				got = append(got, typ)
			}
			if diff := cmp.Diff(tt.wantErrs, got); diff != "" {
				t.Errorf("error types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
	}{
		{"abc", StrengthWeak},
		{"abcdefghij", StrengthWeak},
		{"Abcdefg123", StrengthFair},
		{"Abcdefg123!x", StrengthStrong},
		{"Abcdefghijklmno1", StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := PasswordStrength(tt.password); got != tt.want {
				t.Errorf("PasswordStrength(%q) = %s, want %s", tt.password, got, tt.want)
			}
		})
	}
}

func TestPasswordPolicy_Strength(t *testing.T) {
	relaxed := PasswordPolicy{MinLength: 4}

	if got := relaxed.Strength("abcd"); got != StrengthFair {
		t.Errorf("Strength(%q) = %s, want fair under a relaxed policy", "abcd", got)
	}
	if got := PasswordStrength("abcd"); got != StrengthWeak {
		t.Errorf("PasswordStrength(%q) = %s, want weak under the default policy", "abcd", got)
	}
	if got := relaxed.Strength("abc"); got != StrengthWeak {
		t.Errorf("Strength(%q) = %s, want weak when the policy rejects it", "abc", got)
	}
}

func TestPasswordPolicy_Requirements(t *testing.T) {
	reqs := DefaultPolicy().Requirements()
	if len(reqs) != 4 {
		t.Fatalf("got %d requirements, want 4: %v", len(reqs), reqs)
	}
	if !strings.Contains(reqs[0], "10") {
		t.Errorf("first requirement should mention the minimum length, got %q", reqs[0])
	}

	capped := DefaultPolicy()
	capped.MaxLength = 63
	if reqs := capped.Requirements(); len(reqs) != 5 || !strings.Contains(reqs[1], "63") {
		t.Errorf("capped policy requirements = %v", reqs)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(nil); got != "No validation errors" {
		t.Errorf("FormatValidationErrors(nil) = %q", got)
	}

	errs := ValidateCredentials(Credentials{})
	out := FormatValidationErrors(errs)
	if !strings.Contains(out, "3 error(s)") {
		t.Errorf("output should count errors: %q", out)
	}
	if !strings.Contains(out, "  3. ") {
		t.Errorf("output should number errors: %q", out)
	}
}
