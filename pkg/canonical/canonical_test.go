package canonical

import (
	"math"
	"testing"
)

func TestMarshalSortsKeys(t *testing.T) {
	input := map[string]interface{}{
		"c": 3,
		"a": 1,
		"b": 2,
	}

	b, err := Marshal(input)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"a":1,"b":2,"c":3}`
	if string(b) != expected {
		t.Errorf("Marshal = %s, want %s", b, expected)
	}
}

func TestMarshalNestedSorting(t *testing.T) {
	input := map[string]interface{}{
		"z": map[string]interface{}{
			"y": "foo",
			"x": "bar",
		},
		"a": 1,
	}

	b, err := Marshal(input)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"a":1,"z":{"x":"bar","y":"foo"}}`
	if string(b) != expected {
		t.Errorf("Marshal = %s, want %s", b, expected)
	}
}

func TestMarshalStructTags(t *testing.T) {
	type entry struct {
		VersionID   string `json:"versionId"`
		VersionTime string `json:"versionTime"`
		Omitted     string `json:"omitted,omitempty"`
	}

	b, err := Marshal(entry{VersionID: "1-abc", VersionTime: "2024-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"versionId":"1-abc","versionTime":"2024-01-01T00:00:00Z"}`
	if string(b) != expected {
		t.Errorf("Marshal = %s, want %s", b, expected)
	}
}

func TestMarshalNoHTMLEscaping(t *testing.T) {
	b, err := Marshal(map[string]string{"endpoint": "https://example.com/a?b=1&c=2"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"endpoint":"https://example.com/a?b=1&c=2"}`
	if string(b) != expected {
		t.Errorf("Marshal = %s, want %s", b, expected)
	}
}

func TestMarshalRejectsNonFinite(t *testing.T) {
	if _, err := Marshal(map[string]float64{"bad": math.NaN()}); err == nil {
		t.Error("expected error for NaN, got nil")
	}
	if _, err := Marshal(map[string]float64{"bad": math.Inf(1)}); err == nil {
		t.Error("expected error for +Inf, got nil")
	}
}

func TestTransformEquivalentInputs(t *testing.T) {
	variants := []string{
		`{"b": 2, "a": 1}`,
		"{\n  \"a\": 1,\n  \"b\": 2\n}",
		`{"a":1,"b":2}`,
	}

	var first []byte
	for i, v := range variants {
		out, err := Transform([]byte(v))
		if err != nil {
			t.Fatalf("variant %d: %v", i, err)
		}
		if first == nil {
			first = out
			continue
		}
		if string(out) != string(first) {
			t.Errorf("variant %d canonicalized to %s, want %s", i, out, first)
		}
	}
}

func TestTransformMalformed(t *testing.T) {
	if _, err := Transform([]byte(`{"a":`)); err == nil {
		t.Error("expected error for truncated JSON, got nil")
	}
}
