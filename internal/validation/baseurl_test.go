package validation

import (
	"strings"
	"testing"
)

func TestValidateAndNormalize(t *testing.T) {
	v := NewBaseURLValidator()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain localhost with port",
			input: "http://localhost:5000",
			want:  "http://localhost:5000",
		},
		{
			name:  "trailing slash stripped",
			input: "http://localhost:5000/",
			want:  "http://localhost:5000",
		},
		{
			name:  "scheme defaulted to http",
			input: "localhost:5000",
			want:  "http://localhost:5000",
		},
		{
			name:  "https host kept",
			input: "https://dash.example.org",
			want:  "https://dash.example.org",
		},
		{
			name:  "path prefix preserved without trailing slash",
			input: "https://example.org/apdetax/",
			want:  "https://example.org/apdetax",
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "query not allowed",
			input:   "http://localhost:5000?x=1",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "http://localhost:5000/<script>",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			input:   "ftp://example.org",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateAndNormalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrivateIPsRejectedWhenDisallowed(t *testing.T) {
	v := NewBaseURLValidator()
	v.AllowPrivateIPs = false

	if _, err := v.ValidateAndNormalize("http://192.168.1.10:5000"); err == nil {
		t.Error("expected private IP rejection")
	}

	v.AllowPrivateIPs = true
	if _, err := v.ValidateAndNormalize("http://192.168.1.10:5000"); err != nil {
		t.Errorf("private IP should be allowed by default: %v", err)
	}
}

func TestMaxLength(t *testing.T) {
	v := NewBaseURLValidator()
	long := "http://example.org/" + strings.Repeat("a", v.MaxLength)
	if _, err := v.ValidateAndNormalize(long); err == nil {
		t.Error("expected length rejection")
	}
}
