// Package enums provides bidirectional conversion between enumeration
// constants and their display strings.
//
// An enumeration type declares its strings once, in its own package, and
// every conversion in this module follows from that single declaration.
// There is no code generation and no central runtime registry: the
// association travels with the type itself, and generic code reaches it
// through the type system.
//
// # Declaring an Association
//
// Declare a named integer type with iota constants, then an EnumStrings
// method returning the strings in constant order:
//
//	type ScanMode int
//
//	const (
//		SynScan ScanMode = iota
//		UDPScan
//		ConnectScan
//		scanModeEnd
//	)
//
//	var scanModeStrings = enums.Checked(scanModeEnd, "syn", "udp", "connect")
//
//	func (ScanMode) EnumStrings() []string { return scanModeStrings }
//
// The trailing sentinel constant is optional. When present, its ordinal
// counts the real values, and Checked panics during package
// initialization if the table length disagrees, so a mismatched
// declaration fails at startup rather than at first use. Without a
// sentinel, bind a plain []string literal and no check occurs.
//
// Method declaration rules enforce the rest of the contract: EnumStrings
// can only be declared in the type's own package, and declaring it twice
// for the same type is a compile error.
//
// # Converting
//
// The conversion surface is generic over any declared enumeration:
//
//	s, err := enums.Label(UDPScan)         // "udp"
//	v, err := enums.Parse[ScanMode]("udp") // UDPScan
//	n := enums.Count[ScanMode]()           // 3
//	all := enums.Labels[ScanMode]()        // fresh copy, declaration order
//
// Parse matches exactly, with no case folding and no whitespace trimming;
// ParseFold is the case-insensitive variant. Fprint and Fscan bind
// associations to streams. Text and Schema cover encoded documents, and
// Flag backs command-line flags.
//
// # Thread Safety
//
// Associations are immutable after package initialization, so every
// function in this package is safe for concurrent use without locking.
//
// # Error Handling
//
// Failed conversions return structured errors (OutOfRangeError,
// UnknownLabelError, ArityError) that match the ErrOutOfRange,
// ErrUnknownLabel, and ErrArityMismatch sentinels under errors.Is. The
// package never logs and never substitutes defaults; callers decide what
// a failed conversion means.
package enums
