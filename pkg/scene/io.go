package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/viewalign/pkg/errors"
)

// Marshal encodes a scene as indented JSON.
func Marshal(s Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a scene, assigning ids where missing.
func Unmarshal(data []byte) (Scene, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a scene as JSON to w.
func Write(s Scene, w io.Writer) error {
	return writeTo(s, w)
}

// WriteFile writes a scene to a JSON file.
func WriteFile(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(s, f)
}

// Read decodes a scene from r and validates it.
func Read(r io.Reader) (Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene")
	}
	assignIDs(&s)
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// ReadFile reads and validates a scene file.
func ReadFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Scene{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return Scene{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// MarshalPlan encodes a plan as indented JSON.
func MarshalPlan(p Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlan encodes a plan as JSON to w.
func WritePlan(p Plan, w io.Writer) error {
	return encode(p, w)
}

// UnmarshalPlan decodes a plan.
func UnmarshalPlan(data []byte) (Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return Plan{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode plan")
	}
	return p, nil
}

func assignIDs(s *Scene) {
	for i := range s.Objects {
		if s.Objects[i].ID == "" {
			s.Objects[i].ID = uuid.NewString()
		}
	}
	for i := range s.Tags {
		if s.Tags[i].ID == "" {
			s.Tags[i].ID = uuid.NewString()
		}
	}
}

func writeTo(s Scene, w io.Writer) error {
	return encode(s, w)
}

func encode(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
