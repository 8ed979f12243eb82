package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/backend"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/testutil"
)

func startHarness(t *testing.T, gw *testutil.FakeGateway) *Harness {
	t.Helper()
	h := NewHarness(NewModel(gw, 120, 40, false, false, nil))
	h.Start()
	if _, ok := h.Model().Snapshot(); !ok && gw.FailOn["menu"] == nil {
		t.Fatalf("expected initial snapshot to load")
	}
	return h
}

func itemTitles(v menu.View) []string {
	titles := make([]string, len(v.Items))
	for i, it := range v.Items {
		titles[i] = it.Title
	}
	return titles
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

func TestInitialLoadRendersBothLists(t *testing.T) {
	h := startHarness(t, testutil.NewFakeGateway(testutil.SampleMenu()))
	view := h.Model().Rendered()
	if len(view.Categories) != 2 || len(view.Items) != 4 {
		t.Fatalf("unexpected view %#v", view)
	}
	if h.Model().loading {
		t.Fatalf("expected loading to finish")
	}
}

func TestInitialLoadFailureShowsAdminError(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	gw.FailOn["menu"] = errors.New("connection refused")
	h := startHarness(t, gw)
	if got := h.Model().Alert(); got != "Admin error: connection refused" {
		t.Fatalf("expected admin error alert, got %q", got)
	}
	if _, ok := h.Model().Snapshot(); ok {
		t.Fatalf("expected no snapshot after failed load")
	}
	h.Keys("enter")
	if h.Model().Alert() != "" {
		t.Fatalf("expected alert to be dismissed")
	}
}

func TestAddItemWithoutNamesMakesNoRequest(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("ctrl+n")
	if h.Model().Mode() != ModeForm || h.Model().Form().Title() != "Add Item" {
		t.Fatalf("expected add item form, mode %v", h.Model().Mode())
	}
	h.Keys("ctrl+s")
	if h.Model().Alert() != menu.ErrNamesRequired.Error() {
		t.Fatalf("expected names alert, got %q", h.Model().Alert())
	}
	if h.Model().Mode() != ModeForm {
		t.Fatalf("expected form to stay open")
	}
	if calls := gw.MutatingCalls(); len(calls) != 0 {
		t.Fatalf("expected no requests, got %v", calls)
	}
}

func TestAddCategoryCreatesAndReloads(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("tab", "ctrl+n")
	h.Type("Somsa")
	h.Keys("ctrl+s")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected modal to close, mode %v alert %q", h.Model().Mode(), h.Model().Alert())
	}
	if calls := gw.MutatingCalls(); len(calls) != 1 || calls[0] != "create-category" {
		t.Fatalf("unexpected calls %v", calls)
	}
	view := h.Model().Rendered()
	if len(view.Categories) != 3 || view.Categories[2].Title != "Somsa" {
		t.Fatalf("expected new category in view, got %#v", view.Categories)
	}
}

func TestEditItemUploadsBeforePatch(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("enter")
	form := h.Model().Form()
	if form == nil || form.Title() != "Edit Item" || form.Target() != "1" {
		t.Fatalf("expected edit form for item 1")
	}
	form.SetValue("image", writeImage(t, "burger.png"))
	form.SetValue("price", "32000")
	h.Keys("ctrl+s")

	calls := gw.MutatingCalls()
	if len(calls) != 2 || calls[0] != "upload burger.png" || calls[1] != "update-item 1" {
		t.Fatalf("expected upload then patch, got %v", calls)
	}
	patch := gw.Patches[0]
	if patch.ImageURL == nil || *patch.ImageURL != "/uploads/burger.png" {
		t.Fatalf("expected uploaded url in patch, got %v", patch.ImageURL)
	}
	if patch.Price == nil || *patch.Price != 32000 {
		t.Fatalf("expected price in patch, got %v", patch.Price)
	}
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected modal to close")
	}
	if got := h.Model().Rendered().Items[0].Price; got != menu.FormatPrice(32000) {
		t.Fatalf("expected refreshed price, got %q", got)
	}
}

func TestFailedUploadSkipsPatchAndKeepsForm(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	gw.FailOn["upload"] = errors.New("file too large")
	h := startHarness(t, gw)
	h.Keys("enter")
	h.Model().Form().SetValue("image", writeImage(t, "big.png"))
	h.Keys("ctrl+s")

	calls := gw.MutatingCalls()
	if len(calls) != 1 || calls[0] != "upload big.png" {
		t.Fatalf("expected only the upload, got %v", calls)
	}
	if h.Model().Mode() != ModeForm || h.Model().Form() == nil {
		t.Fatalf("expected form to stay open")
	}
	if h.Model().Alert() != "file too large" {
		t.Fatalf("expected upload error alert, got %q", h.Model().Alert())
	}
	if h.Model().submit.Busy() {
		t.Fatalf("expected retry to be possible")
	}
}

func TestDuplicateSaveSendsOneRequest(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("tab", "ctrl+n")
	h.Model().Form().SetValue("name_uz", "Somsa")

	_, save := h.Model().Update(KeyMsg("ctrl+s"))
	if save == nil {
		t.Fatalf("expected save command")
	}
	if _, again := h.Model().Update(KeyMsg("ctrl+s")); again != nil {
		t.Fatalf("expected second save to be ignored")
	}
	h.processCmd(save)
	if calls := gw.MutatingCalls(); len(calls) != 1 {
		t.Fatalf("expected exactly one request, got %v", calls)
	}
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected modal to close after save")
	}
}

// abandonEditAndSaveAdd saves an Edit Category form, escapes it, then saves
// an Add Category form. It returns both save commands without running them.
func abandonEditAndSaveAdd(t *testing.T, h *Harness) (tea.Cmd, tea.Cmd) {
	t.Helper()
	h.Keys("tab", "enter")
	if form := h.Model().Form(); form == nil || form.Title() != "Edit Category" {
		t.Fatalf("expected edit category form")
	}
	_, first := h.Model().Update(KeyMsg("ctrl+s"))
	if first == nil {
		t.Fatalf("expected first save command")
	}
	h.Keys("esc", "ctrl+n")
	if form := h.Model().Form(); form == nil || form.Title() != "Add Category" {
		t.Fatalf("expected add category form")
	}
	h.Model().Form().SetValue("name_uz", "Somsa")
	_, second := h.Model().Update(KeyMsg("ctrl+s"))
	if second == nil {
		t.Fatalf("expected second save command")
	}
	return first, second
}

func TestEarlierSaveResultLeavesNewFormOpen(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	first, second := abandonEditAndSaveAdd(t, h)

	h.processCmd(first)
	if h.Model().Mode() != ModeForm || h.Model().Form() == nil {
		t.Fatalf("expected add form to stay open, mode %v", h.Model().Mode())
	}
	if !h.Model().submit.Busy() {
		t.Fatalf("expected add form to still be submitting")
	}
	if _, again := h.Model().Update(KeyMsg("ctrl+s")); again != nil {
		t.Fatalf("expected save to stay blocked while in flight")
	}

	h.processCmd(second)
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected add form to close on its own result")
	}
	if calls := gw.MutatingCalls(); len(calls) != 2 || calls[0] != "update-category burgers" || calls[1] != "create-category" {
		t.Fatalf("unexpected calls %v", calls)
	}
	if n := len(h.Model().Rendered().Categories); n != 3 {
		t.Fatalf("expected new category in view, got %d", n)
	}
}

func TestEarlierSaveFailureKeepsNewFormBusy(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	gw.FailOn["update-category"] = errors.New(`{"detail":"category not found"}`)
	h := startHarness(t, gw)
	first, second := abandonEditAndSaveAdd(t, h)

	h.processCmd(first)
	if h.Model().Alert() == "" {
		t.Fatalf("expected the earlier failure to be alerted")
	}
	h.Keys("enter")
	if h.Model().Mode() != ModeForm || !h.Model().submit.Busy() {
		t.Fatalf("expected add form to stay submitting, mode %v phase %v", h.Model().Mode(), h.Model().submit.Phase)
	}
	if _, again := h.Model().Update(KeyMsg("ctrl+s")); again != nil {
		t.Fatalf("expected no duplicate save for the add form")
	}

	h.processCmd(second)
	if calls := gw.MutatingCalls(); len(calls) != 2 || calls[1] != "create-category" {
		t.Fatalf("expected one create request, got %v", calls)
	}
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected add form to close")
	}
}

func TestDeclinedDeleteMakesNoRequest(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("ctrl+x")
	if h.Model().Mode() != ModeConfirm {
		t.Fatalf("expected confirmation, mode %v", h.Model().Mode())
	}
	h.Keys("n")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected confirmation to close")
	}
	if calls := gw.MutatingCalls(); len(calls) != 0 {
		t.Fatalf("expected no requests, got %v", calls)
	}
}

func TestDeleteCategoryCascadesInView(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("tab", "ctrl+x", "y")
	if calls := gw.MutatingCalls(); len(calls) != 1 || calls[0] != "delete-category burgers" {
		t.Fatalf("unexpected calls %v", calls)
	}
	view := h.Model().Rendered()
	if len(view.Categories) != 1 || view.Categories[0].Slug != "drinks" {
		t.Fatalf("expected only drinks left, got %#v", view.Categories)
	}
	for _, it := range view.Items {
		if strings.Contains(it.Category, "burgers") {
			t.Fatalf("expected burger items to be gone, got %#v", view.Items)
		}
	}
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	gw.FailOn["delete-item"] = errors.New(`{"detail":"item not found"}`)
	h := startHarness(t, gw)
	h.Keys("ctrl+x", "y")
	if h.Model().Alert() != `{"detail":"item not found"}` {
		t.Fatalf("expected raw body alert, got %q", h.Model().Alert())
	}
	if got := len(h.Model().Rendered().Items); got != 4 {
		t.Fatalf("expected list unchanged, got %d items", got)
	}
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected confirmation to close")
	}
}

func TestReloadFailureAfterMutationClosesModal(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	h.Keys("tab", "ctrl+n")
	h.Model().Form().SetValue("name_uz", "Somsa")
	gw.FailOn["menu"] = errors.New("gateway timeout")
	h.Keys("ctrl+s")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected modal to close")
	}
	if h.Model().Alert() != "gateway timeout" {
		t.Fatalf("expected reload error alert, got %q", h.Model().Alert())
	}
	if got := len(gw.Snapshot().Categories); got != 3 {
		t.Fatalf("expected server to hold the new category, got %d", got)
	}
}

func TestBackendEventRefreshesLists(t *testing.T) {
	gw := testutil.NewFakeGateway(testutil.SampleMenu())
	h := startHarness(t, gw)
	snap := testutil.SampleMenu()
	snap.Items = append(snap.Items, menu.Item{ID: 9, CategorySlug: "drinks", NameUZ: "Kola", NameRU: "Кола"})
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindMenu, Data: snap}})
	titles := itemTitles(h.Model().Rendered())
	if len(titles) != 5 || titles[4] != "Kola" {
		t.Fatalf("expected polled item, got %v", titles)
	}

	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindMenu, Err: errors.New("poll failed")}})
	if h.Model().backendLastErr != "poll failed" {
		t.Fatalf("expected poll error to be recorded")
	}
	if len(h.Model().Rendered().Items) != 5 {
		t.Fatalf("expected last snapshot to stay on screen")
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	m := NewModel(testutil.NewFakeGateway(menu.Snapshot{}), 0, 0, false, false, nil)
	if cmd := m.handleBackendDoneMsg(backendDoneMsg{}); cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
	if m.backend != nil {
		t.Fatalf("expected watcher to be cleared")
	}
}
