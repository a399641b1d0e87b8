package convert

import (
	"testing"
	"time"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  *float64
	}{
		{"nil", nil, nil},
		{"float", 123.4, ptr(123.4)},
		{"int", 42, ptr(42.0)},
		{"numeric string", "123.4", ptr(123.4)},
		{"garbage string", "abc", nil},
	}
	for _, tc := range tests {
		got := ToFloat64(tc.value)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: got %v, want nil", tc.name, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("%s: got %v, want %v", tc.name, got, *tc.want)
		}
	}
}

func TestToInt(t *testing.T) {
	if got := ToInt("80"); got == nil || *got != 80 {
		t.Errorf("numeric string: got %v, want 80", got)
	}
	if got := ToInt(nil); got != nil {
		t.Errorf("nil: got %v, want nil", *got)
	}
	if got := ToInt("soc"); got != nil {
		t.Errorf("garbage: got %v, want nil", *got)
	}
}

func TestToLocalDatetime(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := ToLocalDatetime(nil); got != nil {
		t.Errorf("nil: got %v, want nil", got)
	}
	if got := ToLocalDatetime(""); got != nil {
		t.Errorf("empty string: got %v, want nil", got)
	}
	if got := ToLocalDatetime("garbage"); got != nil {
		t.Errorf("garbage: got %v, want nil", got)
	}
	if got := ToLocalDatetime(time.Time{}); got != nil {
		t.Errorf("zero time: got %v, want nil", got)
	}

	if got := ToLocalDatetime(utc); got == nil || !got.Equal(utc) {
		t.Errorf("time.Time: got %v, want %v", got, utc)
	}
	if got := ToLocalDatetime(&utc); got == nil || !got.Equal(utc) {
		t.Errorf("*time.Time: got %v, want %v", got, utc)
	}

	if got := ToLocalDatetime("2024-01-01T00:00:00Z"); got == nil || !got.Equal(utc) {
		t.Errorf("RFC3339: got %v, want %v", got, utc)
	}

	// 不带时区的格式按本地时区解释
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	if got := ToLocalDatetime("2024-01-02 03:04:05"); got == nil || !got.Equal(local) {
		t.Errorf("naive layout: got %v, want %v", got, local)
	}
	if got := ToLocalDatetime("20240102030405"); got == nil || !got.Equal(local) {
		t.Errorf("compact layout: got %v, want %v", got, local)
	}

	// epoch 毫秒
	ms := utc.UnixMilli()
	if got := ToLocalDatetime(ms); got == nil || !got.Equal(utc) {
		t.Errorf("epoch millis: got %v, want %v", got, utc)
	}
	if got := ToLocalDatetime(int64(0)); got != nil {
		t.Errorf("zero epoch: got %v, want nil", got)
	}
}

func ptr(f float64) *float64 {
	return &f
}
