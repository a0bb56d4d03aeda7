package env

import (
	"regexp"
	"strings"
)

var (
	ethAddressPattern = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")
	privateKeyPattern = regexp.MustCompile("^(0x)?[0-9a-fA-F]{64}$")
	ipAddressPattern  = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])$`)
	domainPattern     = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	portPattern       = regexp.MustCompile("^([1-9][0-9]{0,3}|[1-5][0-9]{4}|6[0-4][0-9]{3}|65[0-4][0-9]{2}|655[0-2][0-9]|6553[0-5])$")
)

func IsEmpty(value string) bool {
	return value == ""
}

// Ethereum Address
func IsValidEthAddress(address string) bool {
	return ethAddressPattern.MatchString(address)
}

// ECDSA Private Key, with or without 0x prefix
func IsValidPrivateKey(privateKey string) bool {
	return privateKeyPattern.MatchString(privateKey)
}

func IsValidIPAddress(ipAddress string) bool {
	if ipAddress == "localhost" {
		return true
	}
	return ipAddressPattern.MatchString(ipAddress)
}

func IsValidPort(port string) bool {
	return portPattern.MatchString(port)
}

// IsValidURL accepts http(s) and ws(s) URLs with a domain or IP host,
// an optional port and an optional path.
func IsValidURL(url string) bool {
	var rest string
	found := false
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, scheme) {
			rest = strings.TrimPrefix(url, scheme)
			found = true
			break
		}
	}
	if !found || rest == "" {
		return false
	}

	if idx := strings.IndexAny(rest, "/?"); idx >= 0 {
		rest = rest[:idx]
	}

	parts := strings.Split(rest, ":")
	if len(parts) > 2 {
		return false
	}

	host := parts[0]
	if !IsValidIPAddress(host) && !domainPattern.MatchString(host) {
		return false
	}

	if len(parts) == 2 && !IsValidPort(parts[1]) {
		return false
	}
	return true
}
