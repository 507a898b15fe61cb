package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalText(t *testing.T) {
	data, err := MarshalText(SeverityMedium)
	require.NoError(t, err)
	assert.Equal(t, []byte("medium"), data)

	_, err = MarshalText(Severity(9))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestUnmarshalText(t *testing.T) {
	var v Severity
	require.NoError(t, UnmarshalText([]byte("critical"), &v))
	assert.Equal(t, SeverityCritical, v)

	v = SeverityMedium
	err := UnmarshalText([]byte("zz"), &v)
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.Equal(t, SeverityMedium, v, "destination must stay unchanged on failure")
}

type scanConfig struct {
	Mode   Text[ScanMode] `json:"mode" yaml:"mode"`
	Timing Text[Timing]   `json:"timing" yaml:"timing"`
}

func TestTextJSONRoundTrip(t *testing.T) {
	cfg := scanConfig{Mode: NewText(UDPScan), Timing: NewText(TimingSneaky)}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"udp","timing":"sneaky"}`, string(data))

	var back scanConfig
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}

func TestTextJSONUnknownLabel(t *testing.T) {
	var cfg scanConfig
	err := json.Unmarshal([]byte(`{"mode":"zz"}`), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestTextJSONMarshalOutOfRange(t *testing.T) {
	_, err := json.Marshal(scanConfig{Mode: NewText(ScanMode(7))})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTextYAMLRoundTrip(t *testing.T) {
	cfg := scanConfig{Mode: NewText(ConnectScan), Timing: NewText(TimingParanoid)}

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.YAMLEq(t, "mode: connect\ntiming: paranoid\n", string(data))

	var back scanConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}

func TestTextYAMLUnknownLabel(t *testing.T) {
	var cfg scanConfig
	err := yaml.Unmarshal([]byte("mode: zz\n"), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestTextString(t *testing.T) {
	assert.Equal(t, "debug", NewText(Debug).String())
	assert.Equal(t, "enums.ScanMode(9)", NewText(ScanMode(9)).String())
}

func TestSchema(t *testing.T) {
	s := Schema[Severity]()
	assert.Equal(t, "string", s["type"])
	assert.Equal(t, []string{"low", "medium", "high", "critical"}, s["enum"])
}
