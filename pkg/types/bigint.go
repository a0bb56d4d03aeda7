package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// BigInt wraps *big.Int so decimal values survive JSON both as quoted
// strings (explorer payloads) and as bare numbers.
type BigInt struct {
	*big.Int
}

func NewBigInt(i *big.Int) *BigInt {
	if i == nil {
		return nil
	}
	return &BigInt{Int: i}
}

// MarshalJSON writes the value as a decimal string.
func (b *BigInt) MarshalJSON() ([]byte, error) {
	if b == nil || b.Int == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.Int.String())
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		b.Int = nil
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		b.Int = new(big.Int)
		return nil
	}

	base := 10
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw, base = raw[2:], 16
	}
	i, ok := new(big.Int).SetString(raw, base)
	if !ok {
		return fmt.Errorf("invalid integer value %q", raw)
	}
	b.Int = i
	return nil
}

// Value returns the wrapped integer or zero when unset.
func (b *BigInt) Value() *big.Int {
	if b == nil || b.Int == nil {
		return new(big.Int)
	}
	return b.Int
}
