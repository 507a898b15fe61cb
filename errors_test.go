package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "out of range",
			err:  &OutOfRangeError{Type: "enums.ScanMode", Ordinal: 7, Count: 3},
			want: "invalid enums.ScanMode value 7: valid range is [0, 2]",
		},
		{
			name: "negative ordinal",
			err:  &OutOfRangeError{Type: "enums.Verbosity", Ordinal: -2, Count: 3},
			want: "invalid enums.Verbosity value -2: valid range is [0, 2]",
		},
		{
			name: "unknown label",
			err:  &UnknownLabelError{Type: "enums.ScanMode", Label: "zz"},
			want: `"zz" is not a valid string representation of enums.ScanMode`,
		},
		{
			name: "arity mismatch",
			err:  &ArityError{Type: "enums.Priority", Strings: 2, Constants: 3},
			want: "enums.Priority: 2 strings registered for 3 enum values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	_, err := Label(ScanMode(9))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrUnknownLabel)
	assert.NotErrorIs(t, err, ErrArityMismatch)

	_, err = Parse[ScanMode]("zz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.NotErrorIs(t, err, ErrOutOfRange)

	err = Validate(priorityEnd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.NotErrorIs(t, err, ErrUnknownLabel)
}

func TestErrorPayloads(t *testing.T) {
	_, err := Label(ScanMode(9))
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "enums.ScanMode", oor.Type)
	assert.Equal(t, 9, oor.Ordinal)
	assert.Equal(t, 3, oor.Count)

	_, err = Parse[Severity]("zz")
	var ul *UnknownLabelError
	require.ErrorAs(t, err, &ul)
	assert.Equal(t, "enums.Severity", ul.Type)
	assert.Equal(t, "zz", ul.Label)

	err = Validate(priorityEnd)
	var ae *ArityError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "enums.Priority", ae.Type)
	assert.Equal(t, 2, ae.Strings)
	assert.Equal(t, 3, ae.Constants)
}
