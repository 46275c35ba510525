package charts

import (
	"bytes"
	"reflect"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestFromCountsSortedByLabel(t *testing.T) {
	got := FromCounts(map[string]int{"B": 2, "A": 1, "C": 3})
	want := []Slice{{Label: "A", Value: 1}, {Label: "B", Value: 2}, {Label: "C", Value: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromCounts = %v, want %v", got, want)
	}
}

func TestPieValuesLabels(t *testing.T) {
	values := pieValues([]Slice{
		{Label: "A", Value: 75},
		{Label: "B", Value: 24},
		{Label: "C", Value: 1},
	})

	if len(values) != 3 {
		t.Fatalf("value count = %d, want 3", len(values))
	}
	if values[0].Label != "A (75.0%)" {
		t.Errorf("label = %q, want %q", values[0].Label, "A (75.0%)")
	}
	if values[1].Label != "B (24.0%)" {
		t.Errorf("label = %q, want %q", values[1].Label, "B (24.0%)")
	}
	if values[2].Label != "" {
		t.Errorf("label = %q, want suppressed for a 1%% slice", values[2].Label)
	}
}

func TestPieValuesEmpty(t *testing.T) {
	values := pieValues(nil)
	if len(values) != 1 || values[0].Label != "" {
		t.Errorf("pieValues(nil) = %v, want a single blank segment", values)
	}
}

func TestPieRendersPNG(t *testing.T) {
	png, err := Pie("Building Types", []Slice{{Label: "A", Value: 1}, {Label: "B", Value: 1}})
	if err != nil {
		t.Fatalf("Pie failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("rendered bytes are not a PNG")
	}
}

func TestPieEmptyInput(t *testing.T) {
	png, err := Pie("Building Types", nil)
	if err != nil {
		t.Fatalf("Pie failed on empty input: %v", err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("rendered bytes are not a PNG")
	}
}
