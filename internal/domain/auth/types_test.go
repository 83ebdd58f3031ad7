package auth

import "testing"

func TestCredentialsDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		expected string
	}{
		{
			name:     "first name only",
			creds:    Credentials{FirstName: "John"},
			expected: "John",
		},
		{
			name:     "first and last name",
			creds:    Credentials{FirstName: "John", LastName: "Doe"},
			expected: "John Doe",
		},
		{
			name:     "whitespace trimmed",
			creds:    Credentials{FirstName: " John ", LastName: " Doe "},
			expected: "John Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.DisplayName(); got != tt.expected {
				t.Fatalf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCredentialsProviderUsername(t *testing.T) {
	creds := Credentials{FirstName: "John", LastName: "van Doe"}
	if got := creds.ProviderUsername(); got != "John_van_Doe" {
		t.Fatalf("ProviderUsername() = %q, want %q", got, "John_van_Doe")
	}
}

func TestPasswordGrantResultMFARequired(t *testing.T) {
	if (PasswordGrantResult{}).MFARequired() {
		t.Fatal("empty result should not require MFA")
	}
	if !(PasswordGrantResult{MFAToken: "mfa-token"}).MFARequired() {
		t.Fatal("result with MFA token should require MFA")
	}
}
