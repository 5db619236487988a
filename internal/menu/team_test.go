package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/tower-picker/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
)

func TestGenerateActionReturnsTeam(t *testing.T) {
	ctx := testContext(t)
	msg := runCmd(t, GenerateAction(ctx, Item{ID: IDGenerate}))
	result, ok := msg.(TeamResult)
	if !ok {
		t.Fatalf("expected TeamResult, got %T", msg)
	}
	if len(result.Team) != 2 {
		t.Fatalf("expected 2 towers, got %v", result.Team)
	}
	if result.Team[0] == result.Team[1] {
		t.Fatalf("team has duplicates: %v", result.Team)
	}
	snap := ctx.Snapshot()
	for _, tower := range result.Team {
		if !snap.IsSelected(tower) {
			t.Fatalf("%s is not in the selection", tower)
		}
	}
}

func TestGenerateActionRejectsOversizedTeam(t *testing.T) {
	ctx := testContext(t)
	ctx.TeamSize = 5
	msg := runCmd(t, GenerateAction(ctx, Item{}))
	result, ok := msg.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if !errors.Is(result.Err, selection.ErrInvalidTeamSize) {
		t.Fatalf("expected ErrInvalidTeamSize, got %v", result.Err)
	}
}

func TestTeamItemsIncludeAssetPath(t *testing.T) {
	ctx := testContext(t)
	items := TeamItems(ctx.Manager.Catalog(), []string{"Druid", "Dart Monkey"})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "Druid" {
		t.Fatalf("unexpected id %q", items[0].ID)
	}
	if !strings.HasSuffix(items[0].Label, "images/druid.png") {
		t.Fatalf("missing asset path in %q", items[0].Label)
	}
	if !strings.Contains(items[1].Label, "Primary") {
		t.Fatalf("missing category in %q", items[1].Label)
	}
}

func TestTeamCopyActionWritesClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	msg := runCmd(t, TeamCopyAction(Context{}, Item{ID: JoinIDs([]string{"Druid", "Alchemist"})}))
	result := msg.(ActionResult)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if copied != "Druid\nAlchemist" {
		t.Fatalf("unexpected clipboard contents %q", copied)
	}
	if result.Info != "Copied 2 towers to the clipboard" {
		t.Fatalf("unexpected info %q", result.Info)
	}
}

func TestTeamCopyActionErrors(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	if result := runCmd(t, TeamCopyAction(Context{}, Item{ID: ""})).(ActionResult); result.Err == nil {
		t.Fatalf("expected error for empty copy")
	}
	result := runCmd(t, TeamCopyAction(Context{}, Item{ID: "Druid"})).(ActionResult)
	if result.Err == nil || !strings.Contains(result.Err.Error(), "no clipboard") {
		t.Fatalf("expected wrapped clipboard error, got %v", result.Err)
	}
}

func TestTeamSizeActionOpensPrompt(t *testing.T) {
	ctx := testContext(t)
	msg := runCmd(t, TeamSizeAction(ctx, Item{}))
	prompt, ok := msg.(TeamSizePrompt)
	if !ok {
		t.Fatalf("expected TeamSizePrompt, got %T", msg)
	}
	if prompt.Min != 1 || prompt.Max != 4 {
		t.Fatalf("unexpected bounds %d..%d", prompt.Min, prompt.Max)
	}
}

func TestTeamSizeActionNeedsTwoTowers(t *testing.T) {
	ctx := testContext(t)
	if err := ctx.Manager.SetItems(ctx.Session, []string{"Druid"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := runCmd(t, TeamSizeAction(ctx, Item{}))
	if result, ok := msg.(ActionResult); !ok || result.Err == nil {
		t.Fatalf("expected error result, got %#v", msg)
	}
}

func typeKeys(form *TeamSizeForm, keys ...tea.KeyMsg) {
	for _, key := range keys {
		form.Update(key)
	}
}

func TestTeamSizeFormSubmitsValidSize(t *testing.T) {
	ctx := testContext(t)
	form := NewTeamSizeForm(TeamSizePrompt{Context: ctx, Min: 1, Max: 4})
	if form.Value() != "2" {
		t.Fatalf("expected current size prefilled, got %q", form.Value())
	}
	typeKeys(form,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")},
	)
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cancel {
		t.Fatalf("expected submit, got done=%v cancel=%v", done, cancel)
	}
	msg := cmd()
	if result, ok := msg.(TeamSizeResult); !ok || result.Size != 3 {
		t.Fatalf("unexpected result %#v", msg)
	}
}

func TestTeamSizeFormRejectsOutOfRange(t *testing.T) {
	ctx := testContext(t)
	form := NewTeamSizeForm(TeamSizePrompt{Context: ctx, Min: 1, Max: 4})
	typeKeys(form,
		tea.KeyMsg{Type: tea.KeyCtrlU},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")},
	)
	cmd, done, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done || cmd != nil {
		t.Fatalf("expected form to stay open")
	}
	if form.Error() != "Team size must be between 1 and 4" {
		t.Fatalf("unexpected error %q", form.Error())
	}

	typeKeys(form, tea.KeyMsg{Type: tea.KeyCtrlU})
	if form.Error() != "Team size required" {
		t.Fatalf("unexpected error %q", form.Error())
	}
	typeKeys(form, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if form.Error() != "Team size must be a number" {
		t.Fatalf("unexpected error %q", form.Error())
	}
}

func TestTeamSizeFormCancel(t *testing.T) {
	form := NewTeamSizeForm(TeamSizePrompt{Min: 1, Max: 4})
	_, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if done || !cancel {
		t.Fatalf("expected cancel, got done=%v cancel=%v", done, cancel)
	}
}
