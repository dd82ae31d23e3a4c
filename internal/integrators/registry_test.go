package integrators

import "testing"

func TestNew(t *testing.T) {
	for _, name := range Names() {
		stepper, err := New(name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
			continue
		}
		info := stepper.Info()
		if info.Name != name {
			t.Errorf("New(%q) reports name %q", name, info.Name)
		}
		if info.Order < 1 || info.Stages < 1 {
			t.Errorf("%s: bad info %+v", name, info)
		}
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
