// Package address formats account addresses for display.
package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// ChunkSize is the number of characters in one displayed address chunk.
const ChunkSize = 4

// Ellipsis separates the first and last chunk in the short form.
const Ellipsis = "…"

// TrimLeading0x removes a leading 0x or 0X prefix.
func TrimLeading0x(addr string) string {
	if strings.HasPrefix(addr, "0x") || strings.HasPrefix(addr, "0X") {
		return addr[2:]
	}
	return addr
}

// Chunks splits an address (without its 0x prefix) into ChunkSize character groups.
// The last chunk may be shorter. An empty address has no chunks.
func Chunks(addr string) []string {
	a := TrimLeading0x(addr)
	if a == "" {
		return nil
	}

	chunks := make([]string, 0, (len(a)+ChunkSize-1)/ChunkSize)
	for i := 0; i < len(a); i += ChunkSize {
		end := i + ChunkSize
		if end > len(a) {
			end = len(a)
		}
		chunks = append(chunks, a[i:end])
	}
	return chunks
}

// Short returns the "0x <first>…<last>" display form of an address,
// or an empty string when the address has no chunks.
func Short(addr string) string {
	chunks := Chunks(addr)
	if len(chunks) == 0 {
		return ""
	}
	return "0x " + chunks[0] + Ellipsis + chunks[len(chunks)-1]
}

// IsValid reports whether addr is a 20-byte hex address.
func IsValid(addr string) bool {
	return common.IsHexAddress(addr)
}

// Checksum returns the EIP-55 form of a valid address and the input unchanged otherwise.
func Checksum(addr string) string {
	if !common.IsHexAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}

// Normalize lowercases a valid hex address so it can be used as a lookup key.
// Other input is returned trimmed but otherwise unchanged.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	if common.IsHexAddress(addr) {
		return strings.ToLower(common.HexToAddress(addr).Hex())
	}
	return addr
}

// Validate returns ErrInvalidAddress when addr is not a hex address.
func Validate(addr string) error {
	if !common.IsHexAddress(addr) {
		return cashinerr.WithDetails(cashinerr.ErrInvalidAddress, map[string]string{
			"address": addr,
		})
	}
	return nil
}
