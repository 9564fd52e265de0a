package gates

import (
	"reflect"
	"strings"
	"testing"
)

const coreHeader = "#################### core ####################"

func TestParse_Scenario(t *testing.T) {
	text := coreHeader + "\nfeature-a: true\nfeature-b: false\n\n"

	st := Parse(text)
	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}
	core, ok := st.Section("core")
	if !ok {
		t.Fatal("section core not found")
	}
	want := []Flag{{"feature-a", true}, {"feature-b", false}}
	if got := core.Flags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flags() = %v, want %v", got, want)
	}

	if _, err := core.Toggle("feature-b"); err != nil {
		t.Fatal(err)
	}
	want = []Flag{{"feature-a", true}, {"feature-b", true}}
	if got := core.Flags(); !reflect.DeepEqual(got, want) {
		t.Errorf("after toggle Flags() = %v, want %v", got, want)
	}

	out := Serialize(st)
	expected := coreHeader + "\nfeature-a: true\nfeature-b: true\n\n"
	if out != expected {
		t.Errorf("Serialize() = %q, want %q", out, expected)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string][]Flag
		keys []string
	}{
		{
			name: "empty",
			text: "",
			keys: []string{},
		},
		{
			name: "lines before header are ignored",
			text: "stray: true\n" + coreHeader + "\na: true\n",
			keys: []string{"core"},
			want: map[string][]Flag{"core": {{"a", true}}},
		},
		{
			name: "value is case-insensitive true, anything else false",
			text: coreHeader + "\na: TRUE\nb: yes\nc: False\nd:\n",
			keys: []string{"core"},
			want: map[string][]Flag{"core": {{"a", true}, {"b", false}, {"c", false}, {"d", false}}},
		},
		{
			name: "split at first separator",
			text: coreHeader + "\nurl: http://x\n",
			keys: []string{"core"},
			want: map[string][]Flag{"core": {{"url", false}}},
		},
		{
			name: "comments and unparseable lines dropped",
			text: coreHeader + "\n# note: not a flag\nnonsense\n  spaced : true  \n",
			keys: []string{"core"},
			want: map[string][]Flag{"core": {{"spaced", true}}},
		},
		{
			name: "empty section keeps its header",
			text: coreHeader + "\n\n#################### ui ####################\nx: true\n",
			keys: []string{"core", "ui"},
			want: map[string][]Flag{"core": {}, "ui": {{"x", true}}},
		},
		{
			name: "repeated header restarts section in place",
			text: coreHeader + "\na: true\n#################### ui ####################\n" + coreHeader + "\nb: false\n",
			keys: []string{"core", "ui"},
			want: map[string][]Flag{"core": {{"b", false}}, "ui": {}},
		},
		{
			name: "short marker run is not a header",
			text: "########## core ##########\na: true\n",
			keys: []string{},
		},
		{
			name: "section names may contain spaces",
			text: "#################### Payments & Billing ####################\nx: true\n",
			keys: []string{"Payments & Billing"},
			want: map[string][]Flag{"Payments & Billing": {{"x", true}}},
		},
		{
			name: "empty flag name skipped",
			text: coreHeader + "\n: true\n",
			keys: []string{"core"},
			want: map[string][]Flag{"core": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Parse(tt.text)
			if got := st.SectionNames(); !reflect.DeepEqual(got, tt.keys) {
				t.Fatalf("SectionNames() = %v, want %v", got, tt.keys)
			}
			for name, flags := range tt.want {
				sec, _ := st.Section(name)
				got := sec.Flags()
				if len(got) == 0 && len(flags) == 0 {
					continue
				}
				if !reflect.DeepEqual(got, flags) {
					t.Errorf("section %q flags = %v, want %v", name, got, flags)
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	st := NewStore()
	core, _ := st.AddSection("core")
	_, _ = core.AddFlag("feature-a", true)
	_, _ = core.AddFlag("feature-b", false)
	_, _ = st.AddSection("empty one")
	beta, _ := st.AddSection("Beta Program")
	_, _ = beta.AddFlag("z-last", false)
	_, _ = beta.AddFlag("a-first", true)

	text := Serialize(st)
	back := Parse(text)
	if !st.Equal(back) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", text, Serialize(back))
	}

	// Idempotent output.
	if again := Serialize(back); again != text {
		t.Errorf("second Serialize differs:\n%q\n%q", text, again)
	}
}

func TestSerialize_Layout(t *testing.T) {
	st := NewStore()
	_, _ = st.AddSection("empty")
	ui, _ := st.AddSection("ui")
	_, _ = ui.AddFlag("x", true)

	want := "#################### empty ####################\n\n" +
		"#################### ui ####################\nx: true\n\n"
	if got := Serialize(st); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestFormat_CustomMarker(t *testing.T) {
	f := NewFormat("=", 5)
	if got := f.Header("core"); got != "===== core =====" {
		t.Errorf("Header() = %q", got)
	}

	text := "===== core =====\na: true\n#################### other ####################\nb: true\n"
	st := f.Parse(text)
	if got := st.SectionNames(); !reflect.DeepEqual(got, []string{"core"}) {
		t.Fatalf("SectionNames() = %v", got)
	}
	// The '#' header is not a header in this format, so b stays with core.
	core, _ := st.Section("core")
	if got := core.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}

	if !f.Parse(f.Serialize(st)).Equal(st) {
		t.Error("custom format should round trip")
	}
}

func TestFormat_RegexMarker(t *testing.T) {
	f := NewFormat("*", 3)
	st := f.Parse("*** core ***\na: true\n")
	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}
	if !strings.HasPrefix(f.Serialize(st), "*** core ***\n") {
		t.Errorf("Serialize() = %q", f.Serialize(st))
	}
}

func TestParse_LongLineKeepsLaterSections(t *testing.T) {
	text := coreHeader + "\na: true\nnote: " + strings.Repeat("x", 2<<20) + "\n\n" +
		"#################### later ####################\nb: true\n"

	st := Parse(text)
	if got, want := st.SectionNames(), []string{"core", "later"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("SectionNames() = %v, want %v", got, want)
	}
	later, _ := st.Section("later")
	if fl, ok := later.Get("b"); !ok || !fl.Value {
		t.Errorf("later/b = %v, %v; want true", fl, ok)
	}
}

func TestRoundTrip_AddedNames(t *testing.T) {
	st := NewStore()
	core, _ := st.AddSection("core")
	for _, name := range []string{"a:b", "Dark Mode:", "  spaced out  ", "x: y", "2fa"} {
		if _, err := core.AddFlag(name, true); err != nil {
			t.Fatalf("AddFlag(%q): %v", name, err)
		}
	}

	want := []string{"ab", "dark-mode", "spaced-out", "xy", "2fa"}
	if got := core.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if back := Parse(Serialize(st)); !st.Equal(back) {
		t.Errorf("round trip mismatch:\n%s", Serialize(back))
	}
}
