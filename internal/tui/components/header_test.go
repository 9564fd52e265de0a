package components

import (
	"strings"
	"testing"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader()
	if h.data.File != "-" || h.data.Section != "-" {
		t.Errorf("defaults = %+v", h.data)
	}
}

func TestHeader_Setters(t *testing.T) {
	h := NewHeader()

	h.SetFile("gates.yaml")
	h.SetSection("core")
	if h.data.File != "gates.yaml" || h.data.Section != "core" {
		t.Errorf("data = %+v", h.data)
	}

	h.SetSection("")
	if h.data.Section != "-" {
		t.Errorf("empty section = %q, want -", h.data.Section)
	}

	h.SetData(HeaderData{File: "a", Section: "b"})
	if h.data.File != "a" || h.data.Section != "b" {
		t.Errorf("SetData: %+v", h.data)
	}
}

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetFile("/tmp/gates.yaml")
	h.SetSection("Beta Users")
	h.SetWidth(80)

	view := h.View()
	for _, want := range []string{"GATEKEEP", "File: /tmp/gates.yaml", "Section: Beta Users"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}
