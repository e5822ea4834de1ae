package medications

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanimtuba/medication-tracking/internal/medication"
	"github.com/hanimtuba/medication-tracking/internal/view"
	"github.com/hanimtuba/medication-tracking/pkg/logging"
	"github.com/hanimtuba/medication-tracking/pkg/pagetest"
	"github.com/hanimtuba/medication-tracking/pkg/result"
	"github.com/hanimtuba/medication-tracking/pkg/theme"
)

func newTestPage(t *testing.T, remote medication.RemoteSource) (*Page, *pagetest.Harness[*ListState]) {
	t.Helper()
	cache := medication.NewFileCache(filepath.Join(t.TempDir(), "cache.yaml"))
	sink := logging.NewSinkWithLogger(log.New(io.Discard))
	repo := medication.NewRepository(remote, cache, sink)

	p := NewPage(Deps{
		State:  NewListState(),
		List:   medication.NewListMedications(repo),
		Colors: theme.Light(),
		Sink:   sink,
	})
	h := pagetest.NewHarnessWithT[*ListState](t, p)
	// Route both the blocking call and its completion through the manual
	// queue so the test is deterministic.
	p.deps.UI = h.Dispatcher()
	p.deps.Async = h.Dispatcher()
	return p, h
}

func TestLoadSuccessRendersList(t *testing.T) {
	remote := medication.NewStaticRemote(
		medication.New("Ibuprofen", "200mg", "08:00"),
		medication.New("Metformin", "500mg", "08:00,20:00"),
	)
	p, h := newTestPage(t, remote)

	first := h.FirstFrame()
	if text, ok := first.Body.(view.Text); assert.True(t, ok, "pre-ready body should be the empty placeholder") {
		assert.Equal(t, "No medications yet", text.Content)
	}

	// PageReady already emitted loading-started during the commit.
	spinner := h.LastFrame()
	_, ok := spinner.Body.(view.Spinner)
	require.True(t, ok, "loading-started should render the spinner, got %T", spinner.Body)

	h.Pump()

	list, ok := h.LastFrame().Body.(view.ListView)
	require.True(t, ok, "expected the list body, got %T", h.LastFrame().Body)
	assert.Len(t, list.Items, 2)
	assert.False(t, p.deps.State.Loading())
	assert.Nil(t, p.deps.State.Failure())
}

func TestNetworkFailureScenario(t *testing.T) {
	remote := medication.NewStaticRemote()
	remote.FailWith(medication.ErrOffline)
	p, h := newTestPage(t, remote)

	notifications := 0
	p.deps.State.Subscribe(func() { notifications++ })

	h.FirstFrame()
	h.Pump()

	state := p.deps.State
	require.NotNil(t, state.Failure())
	assert.Equal(t, result.KindNetwork, state.Failure().Kind())
	assert.Equal(t, "Network error occurred", state.Failure().Message())
	assert.False(t, state.Loading())
	assert.Equal(t, 2, notifications,
		"a full load emits exactly loading-started and loading-finished")

	banner, ok := h.LastFrame().Body.(view.Banner)
	require.True(t, ok, "failure should render the banner, got %T", h.LastFrame().Body)
	assert.Equal(t, "Network error occurred", banner.Message)
	assert.Equal(t, theme.Light().StatusColor(result.KindNetwork), banner.Color)
}

func TestChromeSlots(t *testing.T) {
	_, h := newTestPage(t, medication.NewStaticRemote())

	frame := h.FirstFrame()
	appBar, ok := frame.AppBar.(view.AppBar)
	require.True(t, ok)
	assert.Equal(t, "Medications", appBar.Title)

	action, ok := frame.PrimaryAction.(view.ActionButton)
	require.True(t, ok)
	assert.Equal(t, "Add medication", action.Label)
}

func TestCompletionAfterUnmountIsSuppressed(t *testing.T) {
	remote := medication.NewStaticRemote(medication.New("Aspirin", "81mg", ""))
	p, h := newTestPage(t, remote)

	h.FirstFrame()
	renders := h.RenderCount()

	h.Unmount()
	h.Pump() // completion lands after unmount

	state := p.deps.State
	assert.True(t, state.Loading(), "fields must reflect pre-unmount values")
	assert.Empty(t, state.Items())
	assert.Nil(t, state.Failure())
	assert.Equal(t, renders, h.RenderCount(), "no render after unmount")
}

func TestReadyFiresOnceAcrossRerenders(t *testing.T) {
	remote := medication.NewStaticRemote()
	_, h := newTestPage(t, remote)

	h.FirstFrame()
	ran := h.Pump()
	require.Equal(t, 2, ran, "one async call and one completion")

	// Extra renders and commit signals must not reload.
	h.Controller().Render()
	h.Controller().FirstFrameCommitted()

	assert.Zero(t, h.Pump(), "no further work may be scheduled")
}
