package user

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{in: "EMPLOYER", want: RoleEmployer, ok: true},
		{in: "WORKER", want: RoleWorker, ok: true},
		{in: "worker", ok: false},
		{in: "ADMIN", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseRole(%q): ok=%v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseRole(%q)=%s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRole_Opposite(t *testing.T) {
	if RoleEmployer.Opposite() != RoleWorker {
		t.Fatalf("employer's opposite must be worker")
	}
	if RoleWorker.Opposite() != RoleEmployer {
		t.Fatalf("worker's opposite must be employer")
	}
}
