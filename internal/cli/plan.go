package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/unveil"
	"github.com/phanxgames/unveil/page"
)

// settleTime is how long plan keeps stepping after the scroll reaches the
// bottom, so the last reveals finish their transitions.
const settleTime = 2.0

type planOptions struct {
	duration time.Duration
	fps      int
}

// timelineEntry records one block becoming visible during a simulated scroll.
type timelineEntry struct {
	Time      float64
	Section   page.SectionKind
	Node      string
	Variant   string
	ScrollTop float64
}

// planResult is the outcome of a simulated scroll.
type planResult struct {
	PageHeight float64
	Timeline   []timelineEntry
	// Hidden lists reveals that never became visible, as section/node.
	Hidden []string
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	po := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Scroll the page headlessly and print the reveal timeline",
		Long: `Compose the configured page without a window, scroll it from top to
bottom at constant speed, and print when each block is revealed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := opts.loadConfig(logger)
			if err != nil {
				return err
			}
			scene, p, err := buildScene(cfg, logger, nil)
			if err != nil {
				return err
			}
			defer p.Unmount()

			res, err := simulate(scene, p, po.duration.Seconds(), po.fps)
			if err != nil {
				return err
			}
			logger.Debug("simulation finished", "frames", scene.Frame(), "clock", scene.Clock())
			printPlan(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().DurationVar(&po.duration, "duration", 8*time.Second, "time to scroll from top to bottom")
	cmd.Flags().IntVar(&po.fps, "fps", 60, "simulated frames per second")
	return cmd
}

// simulate scrolls the scene's first camera from the top of p to the bottom
// over duration seconds, stepping fps frames per second, and records every
// scroll-triggered reveal that fires.
func simulate(scene *unveil.Scene, p *page.Page, duration float64, fps int) (planResult, error) {
	if fps <= 0 {
		return planResult{}, fmt.Errorf("simulate: fps must be positive, got %d", fps)
	}
	if duration <= 0 || math.IsInf(duration, 0) || math.IsNaN(duration) {
		return planResult{}, fmt.Errorf("simulate: duration must be positive, got %v", duration)
	}
	cams := scene.Cameras()
	if len(cams) == 0 {
		return planResult{}, errors.New("simulate: scene has no camera")
	}
	cam := cams[0]

	type owner struct {
		kind   page.SectionKind
		reveal *unveil.Reveal
	}
	owners := make(map[*unveil.Node]owner)
	for _, sec := range p.Sections() {
		for _, r := range sec.Reveals {
			owners[r.Node()] = owner{kind: sec.Kind, reveal: r}
		}
	}

	res := planResult{PageHeight: p.Height()}
	prev := scene.OnRevealChange
	defer func() { scene.OnRevealChange = prev }()
	scene.OnRevealChange = func(c unveil.RevealChange) {
		if prev != nil {
			prev(c)
		}
		o, ok := owners[c.Node]
		if !ok || c.State != unveil.RevealVisible {
			return
		}
		res.Timeline = append(res.Timeline, timelineEntry{
			Time:      c.Time,
			Section:   o.kind,
			Node:      c.Node.Name,
			Variant:   o.reveal.Variant().Name,
			ScrollTop: cam.ScrollTop(),
		})
	}

	bottom := math.Max(0, p.Height()-cam.Viewport.Height)
	cam.ScrollTopTo(bottom, float32(duration), ease.Linear)

	dt := 1 / float64(fps)
	frames := int(math.Ceil((duration + settleTime) * float64(fps)))
	for i := 0; i < frames; i++ {
		if err := scene.UpdateDelta(dt); err != nil {
			return res, err
		}
	}

	for _, sec := range p.Sections() {
		for _, r := range sec.Reveals {
			if r.State() == unveil.RevealHidden {
				res.Hidden = append(res.Hidden, string(sec.Kind)+"/"+r.Node().Name)
			}
		}
	}
	return res, nil
}

func printPlan(w io.Writer, res planResult) {
	fmt.Fprintln(w, styleTitle.Render("Reveal timeline"))
	fmt.Fprintln(w, styleDim.Render("page height "+strconv.FormatFloat(res.PageHeight, 'f', 0, 64)+"px"))

	rows := make([][]string, 0, len(res.Timeline))
	for _, e := range res.Timeline {
		rows = append(rows, []string{
			seconds(e.Time),
			string(e.Section),
			e.Node,
			e.Variant,
			strconv.FormatFloat(e.ScrollTop, 'f', 0, 64),
		})
	}
	fmt.Fprintln(w, newTable([]string{"Time", "Section", "Block", "Variant", "Scroll"}, rows))

	if len(res.Hidden) == 0 {
		fmt.Fprintln(w, styleSuccess.Render("✓ every block revealed"))
		return
	}
	for _, h := range res.Hidden {
		fmt.Fprintln(w, styleWarning.Render("! never revealed: "+h))
	}
}
