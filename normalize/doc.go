// Package normalize rewrites shorthand enum values in configuration
// payloads to their canonical labels.
//
// A Normalizer binds payload fields to enum associations declared with
// the enums package. Each bound field accepts the association's labels
// case-insensitively, plus any registered aliases, and rewrites matches
// to the exact registered label. For example, binding a "scan_type"
// field to a ScanType enum lets "syn" normalize to "SYN_SCAN".
//
// # Usage
//
// Bind fields to enum types, then normalize payloads:
//
//	n := normalize.New()
//	err := normalize.Bind[ScanType](n, "scan_type",
//	    normalize.Alias("syn", "SYN_SCAN"),
//	    normalize.Alias("stealth", "SYN_SCAN"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	input := `{"scan_type": "syn", "target": "example.com"}`
//	normalized := n.JSON(input)
//	// Result: {"scan_type":"SYN_SCAN","target":"example.com"}
//
// Fields are matched by name at any nesting depth, so grouped
// configuration sections normalize without extra bindings.
//
// # Thread Safety
//
// All operations are safe for concurrent use from multiple goroutines.
// A Normalizer uses sync.RWMutex for efficient concurrent access.
//
// # Case Insensitivity
//
// Input values are matched case-insensitively, so "SYN", "syn", and
// "Syn" all match the same binding. The output always uses the exact
// label registered with the enum association.
//
// # Error Handling
//
// Bind reports unknown alias targets immediately so misconfigured
// bindings surface at startup. JSON and YAML are fail-safe: if the
// payload does not parse, they return the original input unchanged
// rather than returning an error, leaving validation to whatever
// consumes the payload.
package normalize
