package enums

import "flag"

// Flag returns a flag.Value that parses command-line tokens into *p, so
// an enumeration can back a flag directly:
//
//	mode := SynScan
//	fs.Var(enums.Flag(&mode), "mode", "scan mode")
//
// Set applies Parse, so an unknown token fails flag parsing with the
// *UnknownLabelError message. The returned value also implements
// flag.Getter; Get returns the current *p as an E.
func Flag[E Enum](p *E) flag.Value {
	return flagValue[E]{p: p}
}

type flagValue[E Enum] struct {
	p *E
}

// String renders the current value's associated string. The flag package
// calls String on a zero flagValue when printing defaults, so a nil
// destination renders as "", as does a value without an association;
// String never fails.
func (f flagValue[E]) String() string {
	if f.p == nil {
		return ""
	}
	s, err := Label(*f.p)
	if err != nil {
		return ""
	}
	return s
}

// Set implements flag.Value.
func (f flagValue[E]) Set(s string) error {
	v, err := Parse[E](s)
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

// Get implements flag.Getter.
func (f flagValue[E]) Get() any {
	if f.p == nil {
		var zero E
		return zero
	}
	return *f.p
}
