package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRenderDeptList_CursorOnSelectedEntry(t *testing.T) {
	a := App{
		departments: []string{"Defence", "Health"},
		selected:    map[string]struct{}{"Defence": {}},
	}

	out := a.renderDeptList(40, 0, a.selected)

	if !utf8.ValidString(out) {
		t.Fatal("list rendering produced invalid UTF-8")
	}
	if !strings.Contains(out, "▸ ◉ Defence") {
		t.Errorf("cursor row lost the selection marker:\n%s", out)
	}
	if !strings.Contains(out, "○ Health") {
		t.Errorf("unselected entry missing its checkbox:\n%s", out)
	}
}

func TestRenderDeptList_CursorWithoutCheckboxes(t *testing.T) {
	a := App{departments: []string{"Defence", "Health"}}

	out := a.renderDeptList(40, 1, nil)

	if !utf8.ValidString(out) {
		t.Fatal("list rendering produced invalid UTF-8")
	}
	if strings.Contains(out, "◉") || strings.Contains(out, "○") {
		t.Errorf("checkboxes rendered without a selection map:\n%s", out)
	}
	if !strings.Contains(out, "▸ Health") {
		t.Errorf("cursor marker missing:\n%s", out)
	}
}
