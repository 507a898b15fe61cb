// Package protoenum bridges enum string associations and protobuf enum
// descriptors. It converts between Go enum values and wire numbers by
// matching association labels against descriptor value names, so local
// enum types can ride protobuf messages without generated wrapper code.
package protoenum

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zero-day-ai/enums"
)

// Number converts an enum value to the wire number of the descriptor
// value whose name matches the value's label. Matching is
// case-insensitive, so a "critical" label finds a CRITICAL descriptor
// value. Returns an error wrapping ErrOutOfRange when v has no label,
// and an UnknownLabelError naming the descriptor when no value name
// matches.
func Number[E enums.Enum](v E, ed protoreflect.EnumDescriptor) (protoreflect.EnumNumber, error) {
	label, err := enums.Label(v)
	if err != nil {
		return 0, err
	}

	values := ed.Values()
	for i := 0; i < values.Len(); i++ {
		vd := values.Get(i)
		if strings.EqualFold(string(vd.Name()), label) {
			return vd.Number(), nil
		}
	}

	return 0, &enums.UnknownLabelError{
		Type:  string(ed.FullName()),
		Label: label,
	}
}

// FromNumber converts a descriptor wire number back to an enum value by
// matching the descriptor value's name against E's labels, again
// case-insensitively.
func FromNumber[E enums.Enum](num protoreflect.EnumNumber, ed protoreflect.EnumDescriptor) (E, error) {
	vd := ed.Values().ByNumber(num)
	if vd == nil {
		var zero E
		return zero, fmt.Errorf("no value %d in %s: %w", num, ed.FullName(), enums.ErrOutOfRange)
	}

	return enums.ParseFold[E](string(vd.Name()))
}
