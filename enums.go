package enums

import (
	"fmt"
	"strings"
)

// Enum is the constraint satisfied by enumeration types with an
// associated string table. A type satisfies it by being a named integer
// type whose constants start at zero, and by declaring its table through
// an EnumStrings method:
//
//	func (ScanMode) EnumStrings() []string { return scanModeStrings }
//
// The method is the association: it must live in the type's own package,
// and declaring it twice for one type is a compile error. The returned
// slice is indexed by constant ordinal and treated as immutable.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64

	// EnumStrings returns the strings associated with the type's values,
	// in declaration order.
	EnumStrings() []string
}

// Checked validates a string table against the enumeration's sentinel
// constant and returns the table unchanged. The sentinel must be declared
// last, so that its ordinal equals the number of real values. On a length
// mismatch Checked panics with an *ArityError; in the intended use, a
// package-level variable initializer, that surfaces as a fatal error
// during package initialization, before the association can be used:
//
//	var scanModeStrings = enums.Checked(scanModeEnd, "syn", "udp", "connect")
func Checked[E Enum](end E, strs ...string) []string {
	if int(end) != len(strs) {
		panic(&ArityError{Type: typeName[E](), Strings: len(strs), Constants: int(end)})
	}
	return strs
}

// Validate checks E's bound string table against the sentinel constant
// and returns an *ArityError on mismatch. It is the non-fatal counterpart
// of Checked, for tests and startup health checks of associations bound
// without one.
func Validate[E Enum](end E) error {
	n := len(stringsOf[E]())
	if int(end) != n {
		return &ArityError{Type: typeName[E](), Strings: n, Constants: int(end)}
	}
	return nil
}

// Count returns the number of values of E with associated strings.
func Count[E Enum]() int {
	return len(stringsOf[E]())
}

// Label returns the string associated with v. It fails with an
// *OutOfRangeError when v's ordinal has no table entry, including
// negative ordinals produced by raw casts.
func Label[E Enum](v E) (string, error) {
	strs := stringsOf[E]()
	ord := int(v)
	if ord < 0 || ord >= len(strs) {
		return "", &OutOfRangeError{Type: typeName[E](), Ordinal: ord, Count: len(strs)}
	}
	return strs[ord], nil
}

// Parse returns the value of E associated with s. Matching is exact, with
// no case folding and no whitespace trimming. When a table carries
// duplicate strings the first match wins. Unmatched input fails with an
// *UnknownLabelError carrying s verbatim.
func Parse[E Enum](s string) (E, error) {
	for i, label := range stringsOf[E]() {
		if label == s {
			return E(i), nil
		}
	}
	var zero E
	return zero, &UnknownLabelError{Type: typeName[E](), Label: s}
}

// ParseFold is Parse with case-insensitive matching, for surfaces that
// accept hand-typed input. First match wins, as with Parse.
func ParseFold[E Enum](s string) (E, error) {
	for i, label := range stringsOf[E]() {
		if strings.EqualFold(label, s) {
			return E(i), nil
		}
	}
	var zero E
	return zero, &UnknownLabelError{Type: typeName[E](), Label: s}
}

// MustParse is Parse, panicking when s is not associated with a value of
// E. Use it for strings known good at compile time:
//
//	mode := enums.MustParse[ScanMode]("syn")
func MustParse[E Enum](s string) E {
	v, err := Parse[E](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Labels returns the strings associated with E's values in declaration
// order. The slice is a fresh copy; mutating it does not affect the
// association.
func Labels[E Enum]() []string {
	return append([]string(nil), stringsOf[E]()...)
}

// Values returns every value of E with an associated string, in ordinal
// order.
func Values[E Enum]() []E {
	strs := stringsOf[E]()
	vals := make([]E, len(strs))
	for i := range strs {
		vals[i] = E(i)
	}
	return vals
}

// FromOrdinal converts a raw ordinal (a wire value, a loop index) into E
// after a range check against the string table.
func FromOrdinal[E Enum](ord int) (E, error) {
	strs := stringsOf[E]()
	if ord < 0 || ord >= len(strs) {
		var zero E
		return zero, &OutOfRangeError{Type: typeName[E](), Ordinal: ord, Count: len(strs)}
	}
	return E(ord), nil
}

// stringsOf returns E's bound table without copying.
func stringsOf[E Enum]() []string {
	var zero E
	return zero.EnumStrings()
}

// typeName names E for error payloads, package-qualified.
func typeName[E Enum]() string {
	var zero E
	return fmt.Sprintf("%T", zero)
}
