package indicator

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"STIX Malware", "Malware"},
		{"stix Threat Actor", "Threat Actor"},
		{"  IP ", "IP"},
		{"STIX", "STIX"},
		{"Domain", "Domain"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	got, err := Validate([]string{"ip", "STIX Attack Pattern", "registry key"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []string{IP, AttackPattern, Registry}
	if len(got) != len(want) {
		t.Fatalf("Validate = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Validate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateUnknown(t *testing.T) {
	_, err := Validate([]string{"Domain", "Spaceship"})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestValidateEmpty(t *testing.T) {
	got, err := Validate(nil)
	if err != nil || got != nil {
		t.Errorf("Validate(nil) = %v, %v; want nil, nil", got, err)
	}
}
