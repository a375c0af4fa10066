package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// february2024 is a trimmed copy of the 2024 dataset served by timor.tech
func february2024() *Dataset {
	return &Dataset{
		Code: 0,
		Records: map[string]Record{
			"01-01": {IsHoliday: true, Name: "元旦", Wage: 3, Date: "2024-01-01", Rest: intPtr(1)},
			"02-04": {IsHoliday: false, Name: "春节前补班", Wage: 1, Date: "2024-02-04", After: boolPtr(false), Target: strPtr("春节")},
			"02-10": {IsHoliday: true, Name: "初一", Wage: 3, Date: "2024-02-10"},
			"02-11": {IsHoliday: true, Name: "初二", Wage: 3, Date: "2024-02-11"},
			"02-12": {IsHoliday: true, Name: "初三", Wage: 3, Date: "2024-02-12"},
			"02-18": {IsHoliday: false, Name: "春节后补班", Wage: 1, Date: "2024-02-18", After: boolPtr(true), Target: strPtr("春节")},
			"02-29": {IsHoliday: true, Name: "test", Wage: 2, Date: "2024-02-29"},
			"03-01": {IsHoliday: true, Name: "outside", Wage: 2, Date: "2024-03-01"},
		},
	}
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func days(m map[int]string) []int {
	out := make([]int, 0, len(m))
	for d := 1; d <= 31; d++ {
		if _, ok := m[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

func TestClassify(t *testing.T) {
	cls, err := Classify(february2024(), 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if got, want := days(cls.Holidays), []int{10, 11, 12, 29}; !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays = %v, want %v", got, want)
	}
	if got, want := days(cls.MakeUp), []int{4, 18}; !reflect.DeepEqual(got, want) {
		t.Errorf("MakeUp = %v, want %v", got, want)
	}
	if cls.Holidays[10] != "初一" {
		t.Errorf("Holidays[10] = %q, want %q", cls.Holidays[10], "初一")
	}
	if len(cls.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", cls.Skipped)
	}
}

func TestClassify_BoundsAreInclusive(t *testing.T) {
	ds := &Dataset{Records: map[string]Record{
		"a": {IsHoliday: true, Date: "2024-01-31"},
		"b": {IsHoliday: true, Date: "2024-02-01"},
		"c": {IsHoliday: false, Date: "2024-02-29"},
		"d": {IsHoliday: true, Date: "2024-03-01"},
		"e": {IsHoliday: true, Date: "2023-02-10"},
	}}

	cls, err := Classify(ds, 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if got, want := days(cls.Holidays), []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays = %v, want %v", got, want)
	}
	if got, want := days(cls.MakeUp), []int{29}; !reflect.DeepEqual(got, want) {
		t.Errorf("MakeUp = %v, want %v", got, want)
	}
}

func TestClassify_EmptyDataset(t *testing.T) {
	tests := []struct {
		name string
		ds   *Dataset
	}{
		{"Nil dataset", nil},
		{"Nil records", &Dataset{}},
		{"Empty records", &Dataset{Records: map[string]Record{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, err := Classify(tt.ds, 2024, time.April)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if len(cls.Holidays) != 0 || len(cls.MakeUp) != 0 || len(cls.Skipped) != 0 {
				t.Errorf("Classify() = %+v, want empty", cls)
			}
		})
	}
}

func TestClassify_DateFormats(t *testing.T) {
	// "2024-2-9" sorts after "2024-02-10" as a string; the classifier must
	// still place it in February.
	ds := &Dataset{Records: map[string]Record{
		"a": {IsHoliday: true, Date: "2024-2-9"},
		"b": {IsHoliday: true, Date: "10.02.2024"},
		"c": {IsHoliday: false, Date: "2024/2/4"},
	}}

	cls, err := Classify(ds, 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if got, want := days(cls.Holidays), []int{9, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays = %v, want %v", got, want)
	}
	if got, want := days(cls.MakeUp), []int{4}; !reflect.DeepEqual(got, want) {
		t.Errorf("MakeUp = %v, want %v", got, want)
	}
}

func TestClassify_SkipsMalformedDates(t *testing.T) {
	ds := &Dataset{Records: map[string]Record{
		"bad":   {IsHoliday: true, Date: "2024-02-30"},
		"empty": {IsHoliday: true, Date: ""},
		"good":  {IsHoliday: true, Date: "2024-02-10"},
	}}

	cls, err := Classify(ds, 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if got, want := days(cls.Holidays), []int{10}; !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays = %v, want %v", got, want)
	}
	if len(cls.Skipped) != 2 {
		t.Fatalf("Skipped = %d records, want 2", len(cls.Skipped))
	}
	if cls.Skipped[0].Key != "bad" || cls.Skipped[1].Key != "empty" {
		t.Errorf("Skipped keys = %q, %q, want bad, empty", cls.Skipped[0].Key, cls.Skipped[1].Key)
	}
	if cls.Skipped[0].Err == nil {
		t.Error("Skipped[0].Err = nil, want parse error")
	}
}

func TestClassify_LastKeyWins(t *testing.T) {
	ds := &Dataset{Records: map[string]Record{
		"02-04":   {IsHoliday: true, Name: "first", Date: "2024-02-04"},
		"02-04-b": {IsHoliday: false, Name: "second", Date: "2024-02-04"},
		"02-10":   {IsHoliday: false, Name: "first", Date: "2024-02-10"},
		"02-10-b": {IsHoliday: true, Name: "second", Date: "2024-02-10"},
	}}

	for i := 0; i < 20; i++ {
		cls, err := Classify(ds, 2024, time.February)
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}

		if cls.IsHoliday(4) || !cls.IsMakeUp(4) {
			t.Fatalf("day 4: holiday=%v makeup=%v, want makeup only", cls.IsHoliday(4), cls.IsMakeUp(4))
		}
		if !cls.IsHoliday(10) || cls.IsMakeUp(10) {
			t.Fatalf("day 10: holiday=%v makeup=%v, want holiday only", cls.IsHoliday(10), cls.IsMakeUp(10))
		}
		if cls.MakeUp[4] != "second" || cls.Holidays[10] != "second" {
			t.Fatalf("names = %q, %q, want second, second", cls.MakeUp[4], cls.Holidays[10])
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	ds := february2024()

	first, err := Classify(ds, 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	second, err := Classify(ds, 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() not idempotent: %+v != %+v", first, second)
	}
	if !reflect.DeepEqual(ds, february2024()) {
		t.Error("Classify() modified its dataset")
	}
}

func TestClassify_InvalidMonth(t *testing.T) {
	_, err := Classify(february2024(), 2024, 13)
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("Classify() error = %v, want ErrInvalidMonth", err)
	}
}

func TestClassification_Tag(t *testing.T) {
	cls, err := Classify(february2024(), 2024, time.February)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	tests := []struct {
		day  int
		want DayTag
	}{
		{4, DayTagMakeUpWorkday},
		{10, DayTagHoliday},
		{5, DayTagOrdinary},
	}

	for _, tt := range tests {
		if got := cls.Tag(tt.day); got != tt.want {
			t.Errorf("Tag(%d) = %s, want %s", tt.day, got, tt.want)
		}
	}
}
