package validation

import "testing"

type rfc3339Probe struct {
	Value string `validate:"rfc3339"`
}

type timeslotProbe struct {
	Value string `validate:"timeslot"`
}

func TestRFC3339Validator(t *testing.T) {
	v := New()

	valid := []string{
		"2026-09-01T00:00:00Z",
		"2026-09-01T09:30:00+02:00",
	}
	for _, value := range valid {
		if err := v.Struct(rfc3339Probe{Value: value}); err != nil {
			t.Fatalf("expected %q to be valid: %v", value, err)
		}
	}

	invalid := []string{"", "2026-09-01", "tomorrow", "2026-13-01T00:00:00Z"}
	for _, value := range invalid {
		if err := v.Struct(rfc3339Probe{Value: value}); err == nil {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestTimeslotValidator(t *testing.T) {
	v := New()

	valid := []string{"09:00 AM", "11:00 AM", "01:00 PM", "05:00 PM"}
	for _, value := range valid {
		if err := v.Struct(timeslotProbe{Value: value}); err != nil {
			t.Fatalf("expected %q to be valid: %v", value, err)
		}
	}

	invalid := []string{"", "9:00 AM", "13:00 PM", "09:00", "09:00 am"}
	for _, value := range invalid {
		if err := v.Struct(timeslotProbe{Value: value}); err == nil {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}
