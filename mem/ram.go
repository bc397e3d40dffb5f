// Package mem provides the memory collaborator for the CPU: a flat 64 kB
// byte-addressable backing store behind a narrow read/write interface.
package mem

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Size is the full 16-bit address space. Every address the CPU can form is
// backed; there is no mirroring and no protection.
const Size = 64 * 1024

// Memory is the contract the CPU requires from its backing store. Reads
// are pure; writes store the byte. Access is in-order and single-threaded,
// so implementations need no internal locking.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// Ram is a flat 64 kB array, zeroed on construction. It has no divisions:
// the zero page (0x0000-0x00ff) and the stack page (0x0100-0x01ff) are
// conventions of the CPU, not of the storage.
type Ram struct {
	data [Size]byte
}

// NewRam returns a zeroed 64 kB memory.
func NewRam() *Ram { return &Ram{} }

func (r *Ram) Read(addr uint16) byte { return r.data[addr] }

func (r *Ram) Write(
	addr uint16, // addresses are 2 bytes wide
	data byte,
) {
	r.data[addr] = data
}

// Load copies a program image into memory starting at addr. The address
// wraps modulo 64 kB, like every other address computation in the CPU.
func (r *Ram) Load(addr uint16, image []byte) {
	for i, b := range image {
		r.data[addr+uint16(i)] = b
	}
}

// LoadHex parses a whitespace-separated string of hex bytes ("A9 42 ...")
// and places the bytes at the given addr. This is the form program dumps
// are usually pasted in.
func (r *Ram) LoadHex(addr uint16, image string) error {
	for i, s := range strings.Fields(image) {
		b, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return errors.Wrapf(err, "byte %d of image (%q)", i, s)
		}
		r.data[addr+uint16(i)] = byte(b)
	}
	return nil
}
