// Package enumtest provides reusable conformance checks for enum string
// associations.
//
// A package declaring an association can assert the full conversion
// contract with one call from its own tests:
//
//	func TestScanModeContract(t *testing.T) {
//		enumtest.ExerciseEnd(t, scanModeEnd)
//	}
//
// Exercise checks both round trips, table/count agreement, out-of-range
// and unknown-string failures, and stream IO; ExerciseEnd adds the
// sentinel arity check. Associations with duplicate strings cannot round
// trip and are out of the kit's scope.
package enumtest
