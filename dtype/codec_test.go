package dtype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type tensorHeader struct {
	Name  string   `json:"name" yaml:"name"`
	DType DataType `json:"dtype" yaml:"dtype"`
	Shape []int    `json:"shape" yaml:"shape"`
}

func TestJSONUsesCanonicalName(t *testing.T) {
	out, err := json.Marshal(tensorHeader{Name: "w", DType: BF16, Shape: []int{2, 3}})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"w","dtype":"BF16","shape":[2,3]}`, string(out))

	var h tensorHeader
	require.NoError(t, json.Unmarshal([]byte(`{"name":"q","dtype":"INT4","shape":[8]}`), &h))
	require.Equal(t, INT4, h.DType)
}

func TestJSONRejectsUnknown(t *testing.T) {
	var h tensorHeader
	err := json.Unmarshal([]byte(`{"dtype":"int4"}`), &h)
	require.ErrorIs(t, err, ErrUnknownName)

	_, err = json.Marshal(tensorHeader{DType: DataType(42)})
	require.Error(t, err)
}

func TestYAMLUsesCanonicalName(t *testing.T) {
	out, err := yaml.Marshal(tensorHeader{Name: "w", DType: HF8, Shape: []int{4}})
	require.NoError(t, err)
	require.Contains(t, string(out), "dtype: HF8\n")

	var h tensorHeader
	require.NoError(t, yaml.Unmarshal(out, &h))
	require.Equal(t, HF8, h.DType)
	require.Equal(t, "w", h.Name)
}

func TestYAMLRejectsUnknown(t *testing.T) {
	var h tensorHeader
	err := yaml.Unmarshal([]byte("name: x\ndtype: FP64\n"), &h)
	require.ErrorIs(t, err, ErrUnknownName)
	require.Contains(t, err.Error(), "line 2")

	err = yaml.Unmarshal([]byte("dtype: [FP16]\n"), &h)
	require.Error(t, err)

	_, err = yaml.Marshal(tensorHeader{DType: DataType(42)})
	require.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	for _, d := range Values() {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var got DataType
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, d, got)
	}
}
