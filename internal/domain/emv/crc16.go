package emv

import "fmt"

// CRC-16/CCITT-FALSE: poly 0x1021, init 0xFFFF, no reflection, no final xor.
const (
	crcPoly = 0x1021
	crcInit = 0xFFFF
)

var crcTable = makeTable(crcPoly)

func makeTable(poly uint16) *[256]uint16 {
	t := new([256]uint16)
	for i := range t {
		crc := uint16(i) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^b]
	}
	return crc
}

// Sum returns the CRC-16/CCITT-FALSE checksum of data.
func Sum(data []byte) uint16 {
	return Update(crcInit, data)
}

// Checksum renders the checksum of payload as four upper-case hex digits.
func Checksum(payload string) string {
	return fmt.Sprintf("%04X", Sum([]byte(payload)))
}

// Verify reports whether payload ends with a checksum matching everything
// before it.
func Verify(payload string) bool {
	if len(payload) < len(CRCHeader)+4 {
		return false
	}
	body, sum := payload[:len(payload)-4], payload[len(payload)-4:]
	if body[len(body)-len(CRCHeader):] != CRCHeader {
		return false
	}
	return Checksum(body) == sum
}
