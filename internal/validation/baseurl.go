package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// BaseURLValidator validates the backend API base URL from config or the
// --api flag. The backend commonly runs on localhost, so loopback is
// allowed by default; what matters is catching typos and junk before the
// first request goes out.
type BaseURLValidator struct {
	// AllowPrivateIPs permits RFC1918 addresses (self-hosted backends).
	AllowPrivateIPs bool
	// MaxLength is the maximum allowed URL length.
	MaxLength int
}

// NewBaseURLValidator creates a validator with dashboard defaults.
func NewBaseURLValidator() *BaseURLValidator {
	return &BaseURLValidator{
		AllowPrivateIPs: true,
		MaxLength:       2048,
	}
}

// ValidateAndNormalize checks the base URL and returns a normalized form
// with any trailing slash removed.
func (v *BaseURLValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", fmt.Errorf("API base URL cannot be empty")
	}
	if len(input) > v.MaxLength {
		return "", fmt.Errorf("API base URL too long (max %d characters)", v.MaxLength)
	}

	if strings.ContainsAny(input, "<>\"'`") {
		return "", fmt.Errorf("API base URL contains invalid characters")
	}

	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		if strings.Contains(input, "://") {
			return "", fmt.Errorf("API base URL must use http or https")
		}
		input = "http://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("API base URL must use http or https")
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("API base URL must have a hostname")
	}

	if err := v.validateHost(parsed.Host); err != nil {
		return "", err
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("API base URL must not carry a query or fragment")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return parsed.String(), nil
}

func (v *BaseURLValidator) validateHost(host string) error {
	hostname := host
	if strings.Contains(host, ":") {
		var err error
		hostname, _, err = net.SplitHostPort(host)
		if err != nil {
			return fmt.Errorf("invalid host format: %w", err)
		}
	}

	if hostname == "" {
		return fmt.Errorf("API base URL must have a hostname")
	}

	if !v.AllowPrivateIPs {
		if ip := net.ParseIP(hostname); ip != nil && isPrivateIP(ip) {
			return fmt.Errorf("private IP addresses are not permitted")
		}
	}

	return nil
}

func isPrivateIP(ip net.IP) bool {
	private := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"169.254.0.0/16",
	}

	for _, cidr := range private {
		_, block, _ := net.ParseCIDR(cidr)
		if block != nil && block.Contains(ip) {
			return true
		}
	}

	return false
}
