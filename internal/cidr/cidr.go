// Package cidr implements deterministic IPv4 subnet derivation.
//
// A parent block, an extension-bit count, and a zero-based index always
// produce the same child block, so re-running a plan never reassigns
// existing subnets. The math mirrors the standard binary subnetting
// scheme: extraBits controls how many children can be carved out of the
// parent, index selects which one.
package cidr

import (
	"encoding/binary"
	"fmt"
	"net"
)

// addressWidth is the IPv4 address width in bits. Only IPv4 is supported.
const addressWidth = 32

// Block is an IPv4 address prefix plus a mask length.
// The zero value is 0.0.0.0/0.
type Block struct {
	addr      uint32
	prefixLen int
}

// Parse parses a block in a.b.c.d/n notation. Host bits below the mask
// are cleared, so "10.0.1.5/16" parses as 10.0.0.0/16.
func Parse(s string) (Block, error) {
	_, network, err := net.ParseCIDR(s)
	if err != nil {
		return Block{}, fmt.Errorf("invalid CIDR %q: %w", s, err)
	}
	if network.IP.To4() == nil {
		return Block{}, fmt.Errorf("only IPv4 is supported, got %q", s)
	}
	prefixLen, _ := network.Mask.Size()
	return Block{
		addr:      binary.BigEndian.Uint32(network.IP.To4()),
		prefixLen: prefixLen,
	}, nil
}

// MustParse is Parse for compiled-in blocks; it panics on error.
func MustParse(s string) Block {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the block in a.b.c.d/n notation.
func (b Block) String() string {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, b.addr)
	return fmt.Sprintf("%s/%d", ip, b.prefixLen)
}

// PrefixLen returns the mask length.
func (b Block) PrefixLen() int {
	return b.prefixLen
}

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool {
	return b.addr == 0 && b.prefixLen == 0
}

// Contains reports whether other is fully inside b.
func (b Block) Contains(other Block) bool {
	if other.prefixLen < b.prefixLen {
		return false
	}
	return other.addr&mask(b.prefixLen) == b.addr
}

// Overlaps reports whether the two blocks share any addresses.
func (b Block) Overlaps(other Block) bool {
	return b.Contains(other) || other.Contains(b)
}

// Subnet derives the index-th child of parent after extending its mask by
// extraBits. The child base address is
//
//	parent.addr + index << (32 - childPrefixLen)
//
// Subnet is pure: identical inputs always yield the identical child, and
// children with distinct indices never overlap.
func Subnet(parent Block, extraBits, index uint) (Block, error) {
	childPrefixLen := parent.prefixLen + int(extraBits)
	if childPrefixLen > addressWidth {
		return Block{}, &AllocationOverflowError{
			Index:     index,
			Max:       1 << extraBits,
			PrefixLen: childPrefixLen,
		}
	}
	if index >= 1<<extraBits {
		return Block{}, &AllocationOverflowError{
			Index: index,
			Max:   1 << extraBits,
		}
	}

	offset := uint32(index) << (addressWidth - childPrefixLen)
	return Block{
		addr:      parent.addr + offset,
		prefixLen: childPrefixLen,
	}, nil
}

// Host returns the hostnum-th address inside b. A negative hostnum counts
// back from the end of the range, so Host(b, -1) is the broadcast address.
func Host(b Block, hostnum int) (string, error) {
	hostBits := addressWidth - b.prefixLen
	maxHosts := uint64(1) << hostBits

	var offset uint64
	if hostnum < 0 {
		abs := uint64(-int64(hostnum))
		if abs > maxHosts {
			return "", fmt.Errorf("host number %d exceeds range of %s", hostnum, b)
		}
		offset = maxHosts - abs
	} else {
		offset = uint64(hostnum)
		if offset >= maxHosts {
			return "", fmt.Errorf("host number %d exceeds range of %s", hostnum, b)
		}
	}

	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, b.addr+uint32(offset))
	return ip.String(), nil
}

// mask returns the network mask for a prefix length as a uint32.
func mask(prefixLen int) uint32 {
	return ^uint32(0) << (addressWidth - prefixLen)
}
