package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tower-picker/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsSummaryAndRootMenu(t *testing.T) {
	env := newTestEnv(t, 80, 20)
	view := ansi.Strip(env.harness.View())
	for _, want := range []string{
		"tower picker",
		"categories 4/4 · towers 24/24 · team size 3",
		"Filter towers by category (4/4)",
		"Generate random team",
		"type to search",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewShowsMarksOnMultiSelectLevels(t *testing.T) {
	env := newTestEnv(t, 80, 20)
	env.enterRoot(t, menu.IDCategories)
	current := env.harness.Model().currentLevel()
	current.Cursor = current.IndexOf("Support")
	env.harness.Press(tea.KeyTab)

	view := ansi.Strip(env.harness.View())
	if !strings.Contains(view, "[✓] Primary") {
		t.Fatalf("expected Primary marked:\n%s", view)
	}
	if !strings.Contains(view, "[ ] Support") {
		t.Fatalf("expected Support unmarked:\n%s", view)
	}
	if !strings.Contains(view, "marked 3/4") {
		t.Fatalf("expected mark count in summary:\n%s", view)
	}
	if !strings.Contains(view, "tower picker → categories") {
		t.Fatalf("expected breadcrumb header:\n%s", view)
	}
}

func TestViewShowsErrors(t *testing.T) {
	env := newTestEnv(t, 80, 20)
	if err := env.manager.SetItems(env.session, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.enterRoot(t, menu.IDGenerate)
	view := ansi.Strip(env.harness.View())
	if !strings.Contains(view, "Error: invalid team size") {
		t.Fatalf("expected error line:\n%s", view)
	}
}

func TestViewScrollsLongLevels(t *testing.T) {
	env := newTestEnv(t, 80, 12)
	env.enterRoot(t, menu.IDTowers)

	view := ansi.Strip(env.harness.View())
	if strings.Contains(view, "Beast Handler") {
		t.Fatalf("expected last tower outside the viewport:\n%s", view)
	}
	env.harness.Press(tea.KeyEnd)
	view = ansi.Strip(env.harness.View())
	if !strings.Contains(view, "Beast Handler") {
		t.Fatalf("expected last tower visible after end:\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	env := newTestEnv(t, 20, 20)
	for _, line := range strings.Split(ansi.Strip(env.harness.View()), "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestViewRendersTeamSizeForm(t *testing.T) {
	env := newTestEnv(t, 80, 20)
	env.enterRoot(t, menu.IDTeamSize)
	view := ansi.Strip(env.harness.View())
	if !strings.Contains(view, "Team Size") || !strings.Contains(view, "Enter a size from 1 to 23") {
		t.Fatalf("expected team size form:\n%s", view)
	}
}

func TestFooterFollowsLevel(t *testing.T) {
	env := newTestEnv(t, 100, 30)
	m := env.model
	m.showFooter = true
	if got := m.footerText(); got != rootFooter {
		t.Fatalf("unexpected root footer %q", got)
	}
	env.enterRoot(t, menu.IDTowers)
	if got := m.footerText(); got != multiSelectFooter {
		t.Fatalf("unexpected multi-select footer %q", got)
	}
	env.harness.Press(tea.KeyEsc)
	env.enterRoot(t, menu.IDGenerate)
	if got := m.footerText(); got != teamFooter {
		t.Fatalf("unexpected team footer %q", got)
	}
}
