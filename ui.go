package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JoeLucas99/DemTestFinal3/settings"
)

// button is a clickable rectangle with a centered label.
type button struct {
	rect  image.Rectangle
	label string
}

func (b button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

func (b button) draw(dst *ebiten.Image, hot bool) {
	fill := colorButtonFill
	if hot {
		fill = colorButtonHot
	}
	x := float32(b.rect.Min.X)
	y := float32(b.rect.Min.Y)
	w := float32(b.rect.Dx())
	h := float32(b.rect.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 1, colorButtonEdge, false)
	drawTextCentered(dst, b.label, fontRegular,
		(b.rect.Min.X+b.rect.Max.X)/2, b.rect.Min.Y+(b.rect.Dy()+12)/2, colorHeaderText)
}

// settingRow is one label/value line with stepper buttons on the settings
// screen.
type settingRow struct {
	label string
	value string
	dec   button
	inc   button
	apply func(delta int)
}

var quadrantNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// settingsLayout builds the stepper rows and the start button for the
// current window size. Update reads the rectangles for hit testing and Draw
// paints the same ones, so the two can never disagree.
func (a *App) settingsLayout() ([]settingRow, button) {
	cfg := &a.cfg

	quad := 0
	if cfg.UseCorrectQuadrant {
		quad = cfg.CorrectQuadrant
	}
	quadValue := "off"
	if quad > 0 {
		quadValue = fmt.Sprintf("%d (%s)", quad, quadrantNames[quad-1])
	}
	_, _, step := cfg.Profile.VarianceBounds()

	rows := []settingRow{
		{
			label: "Trials",
			value: strconv.Itoa(cfg.StimulusCount),
			apply: func(d int) {
				cfg.StimulusCount += d
				if cfg.StimulusCount > maxTrials {
					cfg.StimulusCount = maxTrials
				}
			},
		},
		{
			label: "Lines per quadrant",
			value: fmt.Sprintf("%d (%d per board)", cfg.AnglesPerQuadrant, cfg.OptionsPerStimulus()),
			apply: func(d int) { cfg.AnglesPerQuadrant += d },
		},
		{
			label: "Degree variance",
			value: fmt.Sprintf("%.1f°", cfg.DegreeVariance),
			apply: func(d int) { cfg.DegreeVariance += float64(d) * step },
		},
		{
			label: "Matching line quadrant",
			value: quadValue,
			apply: func(d int) {
				q := quad + d
				if q < 0 {
					q = 0
				}
				if q > 4 {
					q = 4
				}
				cfg.UseCorrectQuadrant = q > 0
				if q > 0 {
					cfg.CorrectQuadrant = q
				}
			},
		},
		{
			label: "Variant",
			value: cfg.Profile.String(),
			apply: func(d int) {
				if cfg.Profile == settings.ProfileStandard {
					cfg.Profile = settings.ProfileLegacy
				} else {
					cfg.Profile = settings.ProfileStandard
				}
			},
		},
	}

	px := (a.width - settingsPanelW) / 2
	for i := range rows {
		y := rowStartY + i*rowHeight
		incX := px + settingsPanelW - stepButtonW
		decX := incX - stepButtonW - 10
		rows[i].dec = button{rect: image.Rect(decX, y, decX+stepButtonW, y+stepButtonH), label: "-"}
		rows[i].inc = button{rect: image.Rect(incX, y, incX+stepButtonW, y+stepButtonH), label: "+"}
	}

	sx := (a.width - startButtonW) / 2
	sy := rowStartY + len(rows)*rowHeight + 36
	start := button{rect: image.Rect(sx, sy, sx+startButtonW, sy+startButtonH), label: "Start"}
	return rows, start
}

func (a *App) updateSettings() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if startPressed() {
		a.startSession()
		return nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	rows, start := a.settingsLayout()
	if start.contains(mx, my) {
		a.startSession()
		return nil
	}
	for _, row := range rows {
		if row.dec.contains(mx, my) {
			row.apply(-1)
			a.cfg = a.cfg.Clamp()
			break
		}
		if row.inc.contains(mx, my) {
			row.apply(1)
			a.cfg = a.cfg.Clamp()
			break
		}
	}
	return nil
}

func (a *App) drawSettings(screen *ebiten.Image) {
	drawTextCentered(screen, "Line Orientation Test", fontTitle, a.width/2, 84, colorHeaderText)
	drawTextCentered(screen, "Match the reference line to one of the lines below it",
		fontSmall, a.width/2, 110, colorMutedText)

	var extras []string
	if len(a.cfg.TargetAngles) > 0 && !a.cfg.Profile.RandomTargetsOnly() {
		extras = append(extras, fmt.Sprintf("%d preset targets", len(a.cfg.TargetAngles)))
	}
	if a.cfg.Seed != 0 {
		extras = append(extras, fmt.Sprintf("seed %d", a.cfg.Seed))
	}
	if len(extras) > 0 {
		drawTextCentered(screen, "config file: "+strings.Join(extras, ", "),
			fontSmall, a.width/2, 132, colorMutedText)
	}

	mx, my := ebiten.CursorPosition()
	rows, start := a.settingsLayout()
	px := (a.width - settingsPanelW) / 2
	for i, row := range rows {
		y := rowStartY + i*rowHeight
		drawText(screen, row.label, fontRegular, px, y+21, colorHeaderText)
		drawTextRight(screen, row.value, fontRegular, row.dec.rect.Min.X-18, y+21, colorAccent)
		row.dec.draw(screen, row.dec.contains(mx, my))
		row.inc.draw(screen, row.inc.contains(mx, my))
	}
	start.draw(screen, start.contains(mx, my))
	drawTextCentered(screen, "Enter starts, Esc quits", fontSmall, a.width/2,
		start.rect.Max.Y+28, colorMutedText)

	if a.store == nil {
		drawTextCentered(screen, "results database unavailable; sessions will not be saved",
			fontSmall, a.width/2, a.height-16, colorWrong)
	}
}

func (a *App) resultsButtons() (export, again, back button) {
	const gap = 16
	y := a.height - 76
	left := a.width/2 - (3*resultButtonW+2*gap)/2
	export = button{rect: image.Rect(left, y, left+resultButtonW, y+resultButtonH), label: "Export CSV"}
	left += resultButtonW + gap
	again = button{rect: image.Rect(left, y, left+resultButtonW, y+resultButtonH), label: "Run again"}
	left += resultButtonW + gap
	back = button{rect: image.Rect(left, y, left+resultButtonW, y+resultButtonH), label: "Settings"}
	return export, again, back
}

func (a *App) updateResults() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.startSession()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.scr = screenSettings
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.exportNote = a.exportResults()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	mx, my := ebiten.CursorPosition()
	export, again, back := a.resultsButtons()
	switch {
	case export.contains(mx, my):
		a.exportNote = a.exportResults()
	case again.contains(mx, my):
		a.startSession()
	case back.contains(mx, my):
		a.scr = screenSettings
	}
}

func (a *App) drawResults(screen *ebiten.Image) {
	drawTextCentered(screen, "Results", fontTitle, a.width/2, 84, colorHeaderText)

	sum := a.summary
	pct := 0.0
	if sum.Trials > 0 {
		pct = sum.Accuracy * 100
	}
	lines := []string{
		fmt.Sprintf("Correct: %d of %d (%.0f%%)", sum.Correct, sum.Trials, pct),
		fmt.Sprintf("Median time: %.2f s", float64(sum.MedianMs)/1000),
		fmt.Sprintf("Mean time: %.2f s", float64(sum.MeanMs)/1000),
		fmt.Sprintf("Mean orientation error: %.1f°", sum.MeanErrorDeg),
	}
	for i, s := range lines {
		drawTextCentered(screen, s, fontRegular, a.width/2, 124+i*24, colorHeaderText)
	}
	drawTextCentered(screen, a.saveNote, fontSmall, a.width/2, 124+len(lines)*24+6, colorMutedText)

	a.drawTrialTable(screen, 124+len(lines)*24+40)

	mx, my := ebiten.CursorPosition()
	export, again, back := a.resultsButtons()
	for _, b := range []button{export, again, back} {
		b.draw(screen, b.contains(mx, my))
	}
	if a.exportNote != "" {
		drawTextCentered(screen, a.exportNote, fontSmall, a.width/2, export.rect.Min.Y-14, colorMutedText)
	}
	drawTextCentered(screen, "R runs again, E exports, Esc returns to settings",
		fontSmall, a.width/2, a.height-16, colorMutedText)
}

// drawTrialTable lists per-trial outcomes, truncated to the rows that fit
// above the buttons.
func (a *App) drawTrialTable(screen *ebiten.Image, top int) {
	px := a.width/2 - 210
	drawText(screen, "#", fontSmall, px, top, colorMutedText)
	drawTextRight(screen, "target", fontSmall, px+130, top, colorMutedText)
	drawTextRight(screen, "picked", fontSmall, px+230, top, colorMutedText)
	drawTextRight(screen, "time", fontSmall, px+330, top, colorMutedText)

	maxRows := (a.height - 110 - top) / tableRowH
	if maxRows < 0 {
		maxRows = 0
	}
	shown := len(a.trials)
	if shown > maxRows {
		shown = maxRows
	}
	for i := 0; i < shown; i++ {
		tr := a.trials[i]
		y := top + (i+1)*tableRowH
		clr := colorCorrect
		mark := "ok"
		if !tr.Correct {
			clr = colorWrong
			mark = "miss"
		}
		drawText(screen, strconv.Itoa(tr.Index+1), fontSmall, px, y, colorHeaderText)
		drawTextRight(screen, fmt.Sprintf("%.1f°", tr.TargetAngle), fontSmall, px+130, y, colorHeaderText)
		drawTextRight(screen, fmt.Sprintf("%.1f°", tr.SelectedAngle), fontSmall, px+230, y, colorHeaderText)
		drawTextRight(screen, fmt.Sprintf("%.2f s", float64(tr.ElapsedMs)/1000), fontSmall, px+330, y, colorHeaderText)
		drawText(screen, mark, fontSmall, px+360, y, clr)
	}
	if rest := len(a.trials) - shown; rest > 0 {
		drawText(screen, fmt.Sprintf("and %d more", rest), fontSmall, px, top+(shown+1)*tableRowH, colorMutedText)
	}
}
