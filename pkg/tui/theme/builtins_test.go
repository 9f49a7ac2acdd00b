// ABOUTME: Tests for built-in theme lookup
// ABOUTME: Verifies all named builtins resolve and unknown names return nil

package theme

import "testing"

func TestBuiltinLookup(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) = nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
	}

	if th := Builtin("solarized"); th != nil {
		t.Errorf("Builtin(unknown) = %v, want nil", th)
	}
}
