package ignorance

import (
	"strings"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"advise", ActionAdvise, false},
		{"GUARD", ActionGuard, false},
		{" negotiate ", ActionNegotiate, false},
		{"Guarantee", ActionGuarantee, false},
		{"guarantee!", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	p := &recordingPolicy{}
	for _, a := range Actions {
		if err := Apply(p, a, "tok", "c"); err != nil {
			t.Fatalf("Apply(%s) error = %v", a, err)
		}
	}

	want := "advise:tok,guard:tok,negotiate:tok,guarantee:tok:c"
	if got := strings.Join(p.calls, ","); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}

	if err := Apply(p, Action("bogus"), "tok", ""); err == nil {
		t.Error("Apply(bogus) error = nil, want error")
	}
}
