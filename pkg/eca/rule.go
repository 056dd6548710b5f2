package eca

import "fmt"

// Rule is an immutable table from neighborhood code to next cell state.
// Entry k is the output for the neighborhood whose integer code is k, so the
// table reads the same as the bits of the Wolfram number. Rules are plain
// values and safe to share across goroutines.
type Rule struct {
	table [8]uint8
}

// NewRule builds a rule from outputs listed in Wolfram order: bits[0] is the
// output for neighborhood 111, bits[1] for 110, down to bits[7] for 000.
func NewRule(bits [8]uint8) (Rule, error) {
	var r Rule
	for i, b := range bits {
		if b > 1 {
			return Rule{}, fmt.Errorf("%w: entry %d is %d, values must be 0 or 1", ErrInvalidRule, i, b)
		}
		r.table[7-i] = b
	}
	return r, nil
}

// RuleNumber builds the rule whose output for neighborhood code k is bit k
// of n.
func RuleNumber(n int) (Rule, error) {
	if n < 0 || n > 255 {
		return Rule{}, fmt.Errorf("%w: number %d outside [0, 255]", ErrInvalidRule, n)
	}
	var r Rule
	for k := range r.table {
		r.table[k] = uint8(n>>k) & 1
	}
	return r, nil
}

// MustRuleNumber is like RuleNumber but panics on an invalid number.
func MustRuleNumber(n int) Rule {
	r, err := RuleNumber(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the output for a neighborhood code in [0, 7]. Only the low
// three bits of code are considered.
func (r Rule) Lookup(code uint8) uint8 {
	return r.table[code&7]
}

// Number returns the Wolfram number of the rule.
func (r Rule) Number() int {
	n := 0
	for k, b := range r.table {
		n |= int(b) << k
	}
	return n
}

// Bits returns the outputs in Wolfram order, the inverse of NewRule.
func (r Rule) Bits() [8]uint8 {
	var bits [8]uint8
	for i := range bits {
		bits[i] = r.table[7-i]
	}
	return bits
}

func (r Rule) String() string { return fmt.Sprintf("rule %d", r.Number()) }

// Neighborhood encodes a (left, center, right) triple as its integer code.
func Neighborhood(left, center, right uint8) uint8 {
	return left<<2 | center<<1 | right
}
