package cli

import (
	"bytes"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/unveil"
	"github.com/phanxgames/unveil/internal/config"
	"github.com/phanxgames/unveil/page"
)

func testScene(t *testing.T, cfg config.Config) (*unveil.Scene, *page.Page) {
	t.Helper()
	scene, p, err := buildScene(cfg, log.New(io.Discard), nil)
	require.NoError(t, err)
	t.Cleanup(p.Unmount)
	return scene, p
}

func TestBuildScene(t *testing.T) {
	scene, p := testScene(t, config.Default())

	require.Len(t, scene.Cameras(), 1)
	assert.Equal(t, 1024.0, scene.Cameras()[0].Viewport.Width)
	assert.Equal(t, unveil.ColorWhite, scene.ClearColor)
	assert.Len(t, p.Sections(), len(page.Order))
}

func TestBuildSceneInvalidToggles(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = map[string]bool{"rsvp": true}

	_, _, err := buildScene(cfg, log.New(io.Discard), nil)
	assert.ErrorIs(t, err, page.ErrUnknownSection)
}

func TestSimulateRevealsEveryBlockInPageOrder(t *testing.T) {
	scene, p := testScene(t, config.Default())

	res, err := simulate(scene, p, 4, 60)
	require.NoError(t, err)

	assert.Empty(t, res.Hidden)
	assert.Len(t, res.Timeline, len(p.Reveals()))
	assert.Equal(t, p.Height(), res.PageHeight)

	for i := 1; i < len(res.Timeline); i++ {
		prev, cur := res.Timeline[i-1], res.Timeline[i]
		assert.LessOrEqual(t, prev.Time, cur.Time)
		assert.LessOrEqual(t, prev.ScrollTop, cur.ScrollTop)
		assert.LessOrEqual(t,
			slices.Index(page.Order, prev.Section),
			slices.Index(page.Order, cur.Section))
	}
	for _, e := range res.Timeline {
		assert.NotEqual(t, page.Hero, e.Section)
		assert.NotEqual(t, page.Footer, e.Section)
		assert.NotEmpty(t, e.Variant)
	}
	assert.Nil(t, scene.OnRevealChange)
}

func TestSimulateSkipsDisabledSections(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = map[string]bool{"story": false, "events": false}
	scene, p := testScene(t, cfg)

	res, err := simulate(scene, p, 2, 30)
	require.NoError(t, err)
	for _, e := range res.Timeline {
		assert.NotEqual(t, page.Story, e.Section)
		assert.NotEqual(t, page.Events, e.Section)
	}
	assert.Empty(t, res.Hidden)
}

func TestSimulateErrors(t *testing.T) {
	scene, p := testScene(t, config.Default())

	_, err := simulate(scene, p, 1, 0)
	assert.Error(t, err)
	_, err = simulate(scene, p, 0, 60)
	assert.Error(t, err)
	_, err = simulate(unveil.NewScene(), nil, 1, 60)
	assert.Error(t, err)
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	printPlan(&buf, planResult{
		PageHeight: 3200,
		Timeline: []timelineEntry{
			{Time: 0.5, Section: page.Story, Node: "story/photo", Variant: "fadeInUp", ScrollTop: 120},
		},
		Hidden: []string{"gallery/grid"},
	})

	out := buf.String()
	assert.Contains(t, out, "3200px")
	assert.Contains(t, out, "story/photo")
	assert.Contains(t, out, "0.50s")
	assert.Contains(t, out, "never revealed: gallery/grid")
}

func TestBuildSceneLogsClickedLinks(t *testing.T) {
	var buf bytes.Buffer
	scene, p, err := buildScene(config.Default(), newLogger(&buf, log.InfoLevel), nil)
	require.NoError(t, err)
	t.Cleanup(p.Unmount)

	events, ok := p.Section(page.Events)
	require.True(t, ok)
	cards := events.Reveals[1].Node()
	mapLine := cards.ChildAt(0).ChildAt(cards.ChildAt(0).NumChildren() - 1)
	require.Equal(t, "event-0-map", mapLine.Name)

	cam := scene.Cameras()[0]
	cam.SetScrollTop(events.Top + cards.Y - 100)
	for i := 0; i < 60; i++ {
		require.NoError(t, scene.UpdateDelta(1.0/30))
	}

	sx, sy := cam.WorldToScreen(mapLine.LocalToWorld(2, 2))
	scene.InjectClick(sx, sy)
	require.NoError(t, scene.UpdateDelta(1.0/30))
	require.NoError(t, scene.UpdateDelta(1.0/30))

	assert.Contains(t, buf.String(), "link clicked")
	assert.Contains(t, buf.String(), page.DefaultContent().Events.List[0].MapLink)
}
