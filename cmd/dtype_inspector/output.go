package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/miretskiy/dtypes/dtype"
	"github.com/miretskiy/dtypes/internal/config"
)

// record is the printable view of one data type.
type record struct {
	DType       dtype.DataType `json:"dtype" yaml:"dtype"`
	Code        string         `json:"code" yaml:"code"`
	Bits        int            `json:"bits" yaml:"bits"`
	Family      string         `json:"family" yaml:"family"`
	Float       bool           `json:"is_float" yaml:"is_float"`
	SignedInt   bool           `json:"is_signed_int" yaml:"is_signed_int"`
	UnsignedInt bool           `json:"is_unsigned_int" yaml:"is_unsigned_int"`
	Int         bool           `json:"is_int" yaml:"is_int"`
	Description string         `json:"description" yaml:"description"`
}

func newRecord(d dtype.DataType) record {
	return record{
		DType:       d,
		Code:        fmt.Sprintf("0x%08X", d.Code()),
		Bits:        d.Bits(),
		Family:      d.Family().String(),
		Float:       d.IsFloat(),
		SignedInt:   d.IsSignedInt(),
		UnsignedInt: d.IsUnsignedInt(),
		Int:         d.IsInt(),
		Description: d.Description(),
	}
}

func writeRecords(w io.Writer, format string, recs []record) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	default:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "CODE", "BITS", "FAMILY", "DESCRIPTION")
		for _, r := range recs {
			t.Row(r.DType.String(), r.Code, strconv.Itoa(r.Bits), r.Family, r.Description)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}
}

// sizeResult is the printable answer of the size command.
type sizeResult struct {
	DType dtype.DataType `json:"dtype" yaml:"dtype"`
	Count int            `json:"count" yaml:"count"`
	Bits  int            `json:"bits" yaml:"bits"`
	Bytes int            `json:"bytes" yaml:"bytes"`
}

func writeSize(w io.Writer, format string, r sizeResult) error {
	switch format {
	case config.FormatJSON:
		return json.NewEncoder(w).Encode(r)
	case config.FormatYAML:
		return yaml.NewEncoder(w).Encode(r)
	default:
		_, err := fmt.Fprintf(w, "%d x %s (%d bits) = %d bytes\n", r.Count, r.DType, r.Bits, r.Bytes)
		return err
	}
}
