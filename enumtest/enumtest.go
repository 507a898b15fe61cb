package enumtest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/enums"
)

// Exercise asserts the conversion contract for E: every value and its
// string round-trip in both directions, Labels agrees with Count, the
// ordinal just past the table fails with ErrOutOfRange and a complete
// payload, unknown strings fail with ErrUnknownLabel, and stream writes
// read back unchanged.
//
// The kit requires E's strings to be unique. Associations that reuse a
// string cannot round-trip every value and need hand-written coverage.
func Exercise[E enums.Enum](t testing.TB) {
	t.Helper()

	n := enums.Count[E]()
	labels := enums.Labels[E]()
	require.Len(t, labels, n, "Labels and Count disagree")

	for i, label := range labels {
		v, err := enums.FromOrdinal[E](i)
		require.NoError(t, err)

		s, err := enums.Label(v)
		require.NoError(t, err)
		require.Equal(t, label, s)

		back, err := enums.Parse[E](label)
		require.NoError(t, err)
		require.Equal(t, v, back)

		var buf bytes.Buffer
		_, err = enums.Fprint(&buf, v)
		require.NoError(t, err)
		scanned, err := enums.Fscan[E](&buf)
		require.NoError(t, err)
		require.Equal(t, v, scanned)
	}

	// One past the end of the table.
	_, err := enums.Label(E(n))
	require.ErrorIs(t, err, enums.ErrOutOfRange)

	var oor *enums.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, n, oor.Ordinal)
	require.Equal(t, n, oor.Count)

	// A string no value is associated with.
	unknown := "?"
	for hasLabel(labels, unknown) {
		unknown += "?"
	}
	_, err = enums.Parse[E](unknown)
	require.ErrorIs(t, err, enums.ErrUnknownLabel)

	var ul *enums.UnknownLabelError
	require.ErrorAs(t, err, &ul)
	require.Equal(t, unknown, ul.Label)
}

// ExerciseEnd runs Exercise and additionally checks that the sentinel
// value agrees with the registered string table.
func ExerciseEnd[E enums.Enum](t testing.TB, end E) {
	t.Helper()

	Exercise[E](t)
	require.NoError(t, enums.Validate(end))
}

func hasLabel(labels []string, s string) bool {
	for _, l := range labels {
		if l == s {
			return true
		}
	}
	return false
}
