package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/shape"
)

func renderGameWindow(g *game.State) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 260), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	phase := g.Phase()
	if phase == game.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), phase.String())
		imgui.SameLine()
		if imgui.Button("Restart") {
			g.Restart()
		}
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), phase.String())
	}

	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Separator()

	p := g.Active()
	imgui.Text(fmt.Sprintf("Active: %s rot %s at (%d, %d)", p.Kind, p.Rotation, p.Anchor.X, p.Anchor.Y))
	imgui.Text(fmt.Sprintf("Drop row: %d", g.DropPosition()))

	if held, ok := g.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s (locked: %t)", held, g.JustHeld()))
	} else {
		imgui.Text("Held: none")
	}

	queue := g.Queue(7)
	names := make([]string, len(queue))
	for i, k := range queue {
		names[i] = k.String()
	}
	imgui.Text(fmt.Sprintf("Queue: %v", names))

	imgui.Separator()
	timers, timing := g.Timers(), g.Timing()
	imgui.Text(fmt.Sprintf("Since fall: %s / %s", timers.SinceFall, timing.FallInterval))
	imgui.Text(fmt.Sprintf("Since input: %s / %s", timers.SinceInput, timing.LockDelay))

	fall := float32(timers.SinceFall) / float32(timing.FallInterval)
	imgui.ProgressBarV(min(fall, 1), imgui.NewVec2(-1, 0), "gravity")

	imgui.End()
}

func renderStatsWindow(g *game.State) {
	stats := g.Stats()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 300), imgui.CondOnce)

	if !imgui.BeginV("Statistics", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Pieces dealt: %d", stats.TotalDealt()))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", stats.Locked))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Kinds", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Dealt")
		imgui.TableHeadersRow()

		for _, k := range shape.Kinds {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Dealt(k)))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Clears") {
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d row: %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSchedulerWindow(scheduler *loop.Scheduler) {
	stats := scheduler.GetStats()

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 200), imgui.CondOnce)

	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("System Count: %d", stats.SystemCount))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		systems := stats.Systems
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sortSystems(systems, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, sys := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
		}
		imgui.EndTable()
	}

	imgui.End()
}

// sortSystems orders systems by a table column: name, average, min or max.
func sortSystems(systems []loop.SystemStats, column int, descending bool) {
	sort.SliceStable(systems, func(i, j int) bool {
		left, right := systems[i], systems[j]
		if descending {
			left, right = right, left
		}

		switch column {
		case 1:
			return left.AvgDuration < right.AvgDuration
		case 2:
			return left.MinDuration < right.MinDuration
		case 3:
			return left.MaxDuration < right.MaxDuration
		}
		return left.Name < right.Name
	})
}

func renderHistoryWindow(history *History) {
	if history.Len() == 0 {
		return
	}
	score, lines := history.Ordered()

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 300), imgui.CondOnce)

	if !imgui.BeginV("History", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.BeginTabBar("HistoryTabs") {
		if imgui.BeginTabItem("Score") {
			if implot.BeginPlotV("Score", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Score", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("score", &score[0], int32(len(score)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Lines") {
			if implot.BeginPlotV("Lines", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Lines", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("lines", &lines[0], int32(len(lines)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		imgui.EndTabBar()
	}

	imgui.End()
}
