package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// ErrUnknownTraceFormat is returned for a trace path whose extension is
// not .yaml, .yml or .json.
var ErrUnknownTraceFormat = errors.New("render: unknown trace format")

// Trace formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// TraceInput is the scanned wall.
type TraceInput struct {
	Strengths []int `json:"strengths" yaml:"strengths"`
	Threshold int   `json:"threshold" yaml:"threshold"`
}

// TraceFile is the exported record of one scan.
type TraceFile struct {
	RunID  string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Input  TraceInput   `json:"input" yaml:"input"`
	Events []scan.Event `json:"events" yaml:"events"`
	Result scan.Result  `json:"result" yaml:"result"`
}

// FormatFor picks the trace format from the path extension.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTraceFormat, path)
	}
}

// EncodeTrace writes tf to w in format.
func EncodeTrace(w io.Writer, format string, tf TraceFile) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tf); err != nil {
			return fmt.Errorf("encode yaml trace: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tf); err != nil {
			return fmt.Errorf("encode json trace: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTraceFormat, format)
	}
}

// DecodeTrace reads a trace written by EncodeTrace.
func DecodeTrace(r io.Reader, format string) (TraceFile, error) {
	var tf TraceFile
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&tf); err != nil {
			return TraceFile{}, fmt.Errorf("decode yaml trace: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&tf); err != nil {
			return TraceFile{}, fmt.Errorf("decode json trace: %w", err)
		}
	default:
		return TraceFile{}, fmt.Errorf("%w: %q", ErrUnknownTraceFormat, format)
	}
	return tf, nil
}

// WriteTrace creates path and writes tf in the format its extension names.
func WriteTrace(path string, tf TraceFile) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close trace file: %w", cerr)
		}
	}()
	return EncodeTrace(f, format, tf)
}

// ReadTrace loads a trace file written by WriteTrace.
func ReadTrace(path string) (TraceFile, error) {
	format, err := FormatFor(path)
	if err != nil {
		return TraceFile{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return TraceFile{}, fmt.Errorf("open trace file: %w", err)
	}
	defer f.Close()
	return DecodeTrace(f, format)
}
