package gates

import (
	"reflect"
	"strings"
	"testing"
)

func TestMarshalYAML(t *testing.T) {
	st := NewStore()
	z, _ := st.AddSection("zeta")
	_, _ = z.AddFlag("b", true)
	_, _ = z.AddFlag("a", false)
	_, _ = st.AddSection("alpha")

	out, err := MarshalYAML(st)
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}

	want := "zeta:\n  b: true\n  a: false\nalpha: {}\n"
	if string(out) != want {
		t.Errorf("MarshalYAML() =\n%s\nwant\n%s", out, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	st := Parse(coreHeader + "\nfeature-a: true\nfeature-b: false\n\n#################### Beta Users ####################\n\n")

	out, err := MarshalYAML(st)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(out)
	if err != nil {
		t.Fatalf("UnmarshalYAML: %v", err)
	}
	if !back.Equal(st) {
		t.Errorf("YAML round trip mismatch:\n%s", out)
	}
}

func TestUnmarshalYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not a mapping", "- a\n- b\n", "expected a mapping"},
		{"non-bool value", "core:\n  a: maybe\n", "not a boolean"},
		{"section not mapping", "core: 3\n", "must be a mapping"},
		{"duplicate flag", "core:\n  a: true\n  a: false\n", "duplicate"},
		{"duplicate after normalization", "core:\n  Dark Mode: true\n  dark-mode: false\n", "duplicate feature gate \"dark-mode\""},
		{"null value", "core:\n  a:\n", "not a boolean"},
		{"explicit null", "core:\n  a: null\n", "not a boolean"},
		{"quoted bool", "core:\n  a: \"true\"\n", "not a boolean"},
		{"marker name", "core:\n  \"#hidden\": true\n", "must start with a letter or number"},
		{"empty name", "core:\n  \":\": true\n", "cannot be empty"},
		{"invalid yaml", "core: [\n", "failed to parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalYAML([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestUnmarshalYAML_Empty(t *testing.T) {
	st, err := UnmarshalYAML(nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}

	st, err = UnmarshalYAML([]byte("core:\n"))
	if err != nil {
		t.Fatal(err)
	}
	if sec, ok := st.Section("core"); !ok || sec.Len() != 0 {
		t.Error("null section body should yield an empty section")
	}
}

func TestUnmarshalYAML_NormalizesNames(t *testing.T) {
	st, err := UnmarshalYAML([]byte("core:\n  \"x: y\": true\n  Dark Mode: false\n"))
	if err != nil {
		t.Fatal(err)
	}

	core, ok := st.Section("core")
	if !ok {
		t.Fatal("section core not found")
	}
	want := []Flag{{"xy", true}, {"dark-mode", false}}
	if got := core.Flags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flags() = %v, want %v", got, want)
	}
	if back := Parse(Serialize(st)); !back.Equal(st) {
		t.Errorf("imported store does not survive a write and read:\n%s", Serialize(back))
	}
}
