package core

import (
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{WarningSeverity, "WARNING"},
		{ErrorSeverity, "ERROR"},
		{FatalSeverity, "FATAL"},
		{UnknownSeverity, "UNKNOWN"},
		{Severity(42), "Severity(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverity_Label(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{WarningSeverity, "Warning"},
		{ErrorSeverity, "Error"},
		{FatalSeverity, "Fatal Error"},
		{UnknownSeverity, "Unknown Error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.Label(); got != tt.want {
				t.Errorf("Severity.Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range Severities {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if Severity(-1).Valid() || Severity(4).Valid() {
		t.Error("out-of-range severities should not be valid")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"warning", WarningSeverity, false},
		{"WARN", WarningSeverity, false},
		{" Error ", ErrorSeverity, false},
		{"fatal", FatalSeverity, false},
		{"Unknown", UnknownSeverity, false},
		{"debug", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
