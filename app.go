package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JoeLucas99/DemTestFinal3/board"
	"github.com/JoeLucas99/DemTestFinal3/render"
	"github.com/JoeLucas99/DemTestFinal3/results"
	"github.com/JoeLucas99/DemTestFinal3/settings"
	"github.com/JoeLucas99/DemTestFinal3/stimulus"
)

// screen identifies the active top-level view.
type screen int

const (
	screenSettings screen = iota
	screenTest
	screenResults
)

// App is the Ebiten game. It owns the configuration, the screen state
// machine, the running session and the result store.
type App struct {
	cfg     settings.Config
	cfgPath string
	store   *results.Store // nil when the results database is unavailable

	scr  screen
	sess *session

	width  int
	height int

	// Test screen geometry, rebuilt whenever the window size changes.
	boardSize  float64
	boardPos   board.Point
	refSize    float64
	refPos     board.Point
	boardImage *ebiten.Image
	refImage   *ebiten.Image

	lines       []board.Line
	hoveredID   string
	lingerUntil time.Time

	// Results screen state.
	record     results.SessionRecord
	trials     []results.Trial
	summary    results.Summary
	saveNote   string
	exportNote string

	prevAltEnter bool // track previous Alt+Enter state for toggle
	showDebug    bool
}

// NewApp wires the configuration and the result store and starts on the
// settings screen.
func NewApp(cfg settings.Config, cfgPath string) *App {
	a := &App{
		cfg:     cfg.Clamp(),
		cfgPath: cfgPath,
		scr:     screenSettings,
		width:   defaultWindowWidth,
		height:  defaultWindowHeight,
	}
	store, err := results.Open(settings.DefaultDBPath())
	if err != nil {
		log.Printf("Results database unavailable, sessions will not be saved: %v", err)
		return a
	}
	a.store = store
	return a
}

// Close releases the result store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) Update() error {
	a.handleGlobalKeys()

	switch a.scr {
	case screenSettings:
		return a.updateSettings()
	case screenTest:
		a.updateTest()
	case screenResults:
		a.updateResults()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorWindow)

	switch a.scr {
	case screenSettings:
		a.drawSettings(screen)
	case screenTest:
		a.drawTest(screen)
	case screenResults:
		a.drawResults(screen)
	}

	if a.showDebug {
		a.drawDebug(screen)
	}
}

// Layout lets the canvases track whatever size the user drags the window to.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width = outsideWidth
	a.height = outsideHeight
	return outsideWidth, outsideHeight
}

// startSession clamps and persists the configuration, then generates a fresh
// stimulus sequence and switches to the test screen.
func (a *App) startSession() {
	a.cfg = a.cfg.Clamp()
	if err := settings.Save(a.cfgPath, a.cfg); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}

	a.sess = newSession(a.cfg, stimulus.FromConfig(a.cfg), time.Now())
	a.lines = nil
	a.hoveredID = ""
	a.exportNote = ""
	a.scr = screenTest
}

func (a *App) updateTest() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Abort the run; nothing is recorded.
		a.sess = nil
		a.scr = screenSettings
		return
	}
	if a.sess == nil || a.sess.finished() {
		a.scr = screenSettings
		return
	}

	a.layoutCanvases()

	if a.sess.committed {
		a.hoveredID = ""
		if time.Now().After(a.lingerUntil) {
			if !a.sess.advance(time.Now()) {
				a.finishSession()
				return
			}
			a.lines = board.Layout(a.sess.current().Options, a.boardSize)
		}
		return
	}

	mx, my := ebiten.CursorPosition()
	p := board.Point{X: float64(mx) - a.boardPos.X, Y: float64(my) - a.boardPos.Y}
	ln, ok := board.HitTest(p, a.lines, a.boardSize)
	if ok {
		a.hoveredID = ln.ID
	} else {
		a.hoveredID = ""
	}

	if ok && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if a.sess.commit(ln.Angle, time.Now()) {
			a.lingerUntil = time.Now().Add(lingerDuration)
		}
	}
}

// layoutCanvases recomputes the reference and board rectangles from the
// window size. When the board size changes the offscreen images and the line
// anchors are rebuilt together so pointer math always matches the pixels.
func (a *App) layoutCanvases() {
	w := float64(a.width)
	h := float64(a.height)

	contentH := h - headerHeight - 3*uiMargin
	refSize := math.Floor(math.Min(math.Max(contentH*refShare, refMinSize), refMaxSize))
	boardSize := math.Floor(math.Min(w-2*uiMargin, contentH-refSize))
	if boardSize < boardMinSize {
		boardSize = boardMinSize
	}

	a.refSize = refSize
	a.refPos = board.Point{X: (w - refSize) / 2, Y: headerHeight + uiMargin}
	a.boardPos = board.Point{X: (w - boardSize) / 2, Y: headerHeight + 2*uiMargin + refSize}

	if boardSize != a.boardSize || a.boardImage == nil {
		a.boardSize = boardSize
		a.boardImage = ebiten.NewImage(int(boardSize), int(boardSize))
		a.lines = nil
	}
	if a.refImage == nil || a.refImage.Bounds().Dx() != int(refSize) {
		a.refImage = ebiten.NewImage(int(refSize), int(refSize))
	}
	if a.lines == nil && a.sess != nil && !a.sess.finished() {
		a.lines = board.Layout(a.sess.current().Options, a.boardSize)
		a.hoveredID = ""
	}
}

// finishSession scores the run, stores it and switches to the results
// screen.
func (a *App) finishSession() {
	sess := results.NewSession(a.cfg, a.sess.startedAt, time.Now())
	a.trials = a.sess.trials
	a.summary = results.Summarize(a.trials)
	a.record = results.SessionRecord{
		Session:      sess,
		TrialCount:   len(a.trials),
		CorrectCount: a.summary.Correct,
	}

	a.saveNote = "not saved: results database unavailable"
	if a.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := a.store.InsertSession(ctx, sess, a.trials)
		if err != nil {
			log.Printf("Failed to save session: %v", err)
			a.saveNote = fmt.Sprintf("not saved: %v", err)
		} else {
			a.record.ID = id
			a.saveNote = fmt.Sprintf("saved as session %d", id)
		}
	}

	a.sess = nil
	a.scr = screenResults
}

func (a *App) drawTest(screen *ebiten.Image) {
	if a.sess == nil || a.sess.finished() || a.boardImage == nil || a.refImage == nil {
		return
	}

	cur, total := a.sess.progress()
	drawText(screen, fmt.Sprintf("Trial %d of %d", cur, total), fontRegular, int(uiMargin), 28, colorHeaderText)
	drawTextRight(screen, "Esc aborts the run", fontSmall, a.width-int(uiMargin), 28, colorMutedText)
	drawTextCentered(screen, "Click the line that matches the reference", fontSmall, a.width/2, 48, colorMutedText)

	render.Reference(a.refImage, a.sess.current().TargetAngle)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.refPos.X, a.refPos.Y)
	screen.DrawImage(a.refImage, op)

	st := render.State{HoveredID: a.hoveredID, Disabled: a.sess.committed}
	if a.sess.committed {
		st.SelectedAngle = &a.sess.selected
	}
	render.Board(a.boardImage, a.lines, st)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.boardPos.X, a.boardPos.Y)
	screen.DrawImage(a.boardImage, op)
}

// drawDebug prints frame and board internals, toggled with F1.
func (a *App) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.0f TPS: %.0f\nwindow: %dx%d board: %.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), a.width, a.height, a.boardSize)
	if a.sess != nil && !a.sess.finished() {
		st := a.sess.current()
		msg += fmt.Sprintf("\ntrial %d target %.1f relaxed=%v hover=%q",
			a.sess.idx, st.TargetAngle, st.Relaxed, a.hoveredID)
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, a.height-52)
}
