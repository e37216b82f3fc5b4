package locale

// pattern slots used by postal codes and phone masks
const (
	SlotDigit   = '#' // any digit
	SlotNonZero = '%' // digit 1-9
	SlotLetter  = '@' // uppercase letter A-Z
)

// MatchPattern reports whether s fits pattern slot for slot. Any rune of
// the pattern that is not a slot must appear literally.
func MatchPattern(pattern, s string) bool {
	if len(pattern) != len(s) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		c := s[i]
		switch pattern[i] {
		case SlotDigit:
			if c < '0' || c > '9' {
				return false
			}
		case SlotNonZero:
			if c < '1' || c > '9' {
				return false
			}
		case SlotLetter:
			if c < 'A' || c > 'Z' {
				return false
			}
		default:
			if c != pattern[i] {
				return false
			}
		}
	}
	return true
}

// ApplyMask writes digits into the '#' slots of mask in order. It returns
// false when the number of slots and digits differ.
func ApplyMask(mask, digits string) (string, bool) {
	out := make([]byte, 0, len(mask))
	j := 0
	for i := 0; i < len(mask); i++ {
		if mask[i] != SlotDigit {
			out = append(out, mask[i])
			continue
		}
		if j >= len(digits) {
			return "", false
		}
		out = append(out, digits[j])
		j++
	}
	if j != len(digits) {
		return "", false
	}
	return string(out), true
}
