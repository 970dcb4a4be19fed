package models

// Checksum returns the structural fingerprint of a report line: the number
// of ASCII uppercase letters plus the number of ASCII digits and periods.
//
// The input is the comma-joined report line without the checksum field.
// Characters outside the ASCII range never contribute to the sum, so the
// result does not depend on locale or encoding.
func Checksum(line string) int {
	var sum int
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c >= 'A' && c <= 'Z':
			sum++
		case c >= '0' && c <= '9', c == '.':
			sum++
		}
	}

	return sum
}
