package table

import (
	"errors"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f, err := New(
		[]string{"age", "city", "joined"},
		[][]string{
			{"10", "A", "2021-05-01"},
			{"20", "B", "2022-01-15"},
			{"", "", "2023-03-20"},
		},
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if f.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", f.NumRows())
	}
	if f.NumCols() != 3 {
		t.Errorf("Expected 3 columns, got %d", f.NumCols())
	}

	age := f.Column("age")
	if age == nil {
		t.Fatal("Column age not found")
	}
	if age.Kind != KindNumeric {
		t.Errorf("Expected age to be numeric, got %s", age.Kind)
	}
	if !age.IsMissing(2) {
		t.Error("Expected age row 2 to be missing")
	}
	if v, ok := age.Float(0); !ok || v != 10 {
		t.Errorf("Expected age[0] == 10, got %v (ok=%v)", v, ok)
	}

	city := f.Column("city")
	if city.Kind != KindCategorical {
		t.Errorf("Expected city to be categorical, got %s", city.Kind)
	}

	joined := f.Column("joined")
	if joined.Kind != KindOther {
		t.Errorf("Expected date column to be other, got %s", joined.Kind)
	}
}

func TestNewFrameDuplicateHeaders(t *testing.T) {
	_, err := New([]string{"a", "a"}, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate headers, got %v", err)
	}
}

func TestNewFrameRaggedRows(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for ragged rows, got %v", err)
	}
}

func TestNewFrameNilHeaders(t *testing.T) {
	_, err := New(nil, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil headers, got %v", err)
	}
}

func TestMissingSentinels(t *testing.T) {
	f, err := New(
		[]string{"v"},
		[][]string{{"1"}, {""}, {"NA"}, {"N/A"}, {"NaN"}, {"null"}, {"2"}},
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	v := f.Column("v")
	if v.MissingCount() != 5 {
		t.Errorf("Expected 5 missing cells, got %d", v.MissingCount())
	}
	if v.Kind != KindNumeric {
		t.Errorf("Expected numeric after ignoring sentinels, got %s", v.Kind)
	}
	if got := len(v.Floats()); got != 2 {
		t.Errorf("Expected 2 non-missing floats, got %d", got)
	}
}

func TestMixedColumnIsCategorical(t *testing.T) {
	f, err := New(
		[]string{"v"},
		[][]string{{"1"}, {"two"}, {"3"}},
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if f.Column("v").Kind != KindCategorical {
		t.Errorf("Expected mixed column to be categorical, got %s", f.Column("v").Kind)
	}
}

func TestBooleanLikeColumnIsCategorical(t *testing.T) {
	f, err := New(
		[]string{"flag"},
		[][]string{{"true"}, {"false"}, {"true"}},
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if f.Column("flag").Kind != KindCategorical {
		t.Errorf("Expected boolean-like column to be categorical, got %s", f.Column("flag").Kind)
	}
}

func TestFastIsNumber(t *testing.T) {
	valid := []string{"1", "-1", "+2", "3.14", "-0.5", "1e5", "2.5E-3", "100"}
	for _, s := range valid {
		if !fastIsNumber(s) {
			t.Errorf("Expected %q to be numeric", s)
		}
	}

	invalid := []string{"", "-", "abc", "1.2.3", "e5", "1e", "12a", "Yes"}
	for _, s := range invalid {
		if fastIsNumber(s) {
			t.Errorf("Expected %q to not be numeric", s)
		}
	}
}
