package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/hexaroni/game"
	"github.com/zucenko/hexaroni/model"
	"github.com/zucenko/hexaroni/spectate"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	screenWidth  = 800
	screenHeight = 600
	hudHeight    = 80
)

var errQuit = errors.New("quit")

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press from its source until release. The position
// is frozen on release.
type Stroke struct {
	source   StrokeSource
	currentX int
	currentY int
	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{source: source, currentX: cx, currentY: cy}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

type Game struct {
	cfg      *Config
	settings game.Settings
	ctrl     *game.GameController
	view     BoardView
	start    time.Time
	last     float64

	stroke *Stroke
	drag   *game.Drag

	Tweens      map[*gween.Tween]Action
	banner      string
	bannerAlpha float64
	lastPhase   game.Phase
	lastPlayer  model.Player

	hud                              *Nine
	tileImage, discImage, ringImage *ebiten.Image

	hub         *spectate.Hub
	lastPublish float64
	published   string
}

var hudFace, pieceFace, bannerFace font.Face

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	}
	hudFace = face(20)
	pieceFace = face(16)
	bannerFace = face(48)
}

func NewGame(cfg *Config) (*Game, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	hud, err := NewNine(12, HexToF32(0x202020), 0.85)
	if err != nil {
		return nil, err
	}
	hud.SetPosition(10, 8)
	hud.SetSize(screenWidth-20, hudHeight-16)
	g := &Game{
		cfg:      cfg,
		settings: settings,
		start:    time.Now(),
		Tweens:   make(map[*gween.Tween]Action),
		hud:      hud,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset throws the running match away and sets up a new one.
func (g *Game) reset() error {
	board, err := g.cfg.NewBoard(g.settings)
	if err != nil {
		return err
	}
	g.ctrl = game.NewGameController(g.settings, board)
	g.stroke, g.drag = nil, nil
	g.lastPhase, g.lastPlayer = g.ctrl.State().Phase, model.God
	g.published = ""
	g.view = NewBoardView(board.Size, screenWidth, screenHeight, hudHeight)
	log.WithField("match", g.ctrl.ID.String()).Info("Game.reset new match")
	return g.prepareImages()
}

func (g *Game) prepareImages() error {
	var err error
	r := g.view.Scale
	if g.tileImage, err = ebiten.NewImageFromImage(hexagon(1.12*r), ebiten.FilterLinear); err != nil {
		return err
	}
	if g.discImage, err = ebiten.NewImageFromImage(ring(0.8*r, 0), ebiten.FilterLinear); err != nil {
		return err
	}
	g.ringImage, err = ebiten.NewImageFromImage(ring(0.8*r, 0.45*r), ebiten.FilterLinear)
	return err
}

// hexagon is a white pointy-top hexagon with circumradius r.
func hexagon(r float64) image.Image {
	w := int(math.Ceil(math.Sqrt(3) * r))
	h := int(math.Ceil(2 * r))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x) + 0.5 - float64(w)/2)
			dy := math.Abs(float64(y) + 0.5 - float64(h)/2)
			if dx <= math.Sqrt(3)/2*r && dy <= r-dx/math.Sqrt(3) {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

// ring is a white ring between inner and outer radius; inner 0 is a disc.
func ring(outer, inner float64) image.Image {
	side := int(math.Ceil(2 * outer))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			d := math.Hypot(float64(x)+0.5-outer, float64(y)+0.5-outer)
			if d <= outer && d >= inner {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func (g *Game) now() float64 {
	return time.Since(g.start).Seconds()
}

func (g *Game) update(screen *ebiten.Image) error {
	now := g.now()
	dt := now - g.last
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.ctrl.State().Phase == game.Waiting {
		g.ctrl.StartGame(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.ctrl.Tick(now)
	g.watchState()
	g.updateTweens(float32(dt))
	g.handleInput(now)
	g.publish(now)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen, now)
	return nil
}

// watchState announces phase and turn changes.
func (g *Game) watchState() {
	state := g.ctrl.State()
	player := g.ctrl.CurrentPlayer()
	if state.Phase == g.lastPhase && player == g.lastPlayer {
		return
	}
	g.lastPhase, g.lastPlayer = state.Phase, player
	switch state.Phase {
	case game.Countdown:
		g.flashBanner("Get ready")
	case game.Playing:
		g.flashBanner("Player " + player.Name())
	case game.GameOver:
		if player == model.God {
			g.flashBanner("Nobody survived")
		} else {
			g.flashBanner("Player " + player.Name() + " wins")
		}
	}
}

func (g *Game) handleInput(now float64) {
	if g.stroke == nil {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.beginStroke(&MouseStrokeSource{})
		} else if ids := inpututil.JustPressedTouchIDs(); len(ids) > 0 {
			g.beginStroke(&TouchStrokeSource{ids[0]})
		}
		return
	}
	g.stroke.Update()
	if g.stroke.IsReleased() {
		g.endStroke(now)
	}
}

func (g *Game) beginStroke(source StrokeSource) {
	g.stroke = NewStroke(source)
	if !g.ctrl.State().AllowsMoves() {
		return
	}
	obj, ok := g.ctrl.PieceAtPos(g.view.ToBoard(g.stroke.Position()))
	if !ok || !obj.Props.Draggable || !obj.OwnedBy(g.ctrl.CurrentPlayer()) {
		return
	}
	g.drag = game.NewDrag(obj, g.ctrl)
	log.WithFields(log.Fields{"piece": obj.String(), "targets": len(g.drag.Targets)}).Debug("Game.beginStroke drag")
}

func (g *Game) endStroke(now float64) {
	defer func() { g.stroke, g.drag = nil, nil }()
	if g.drag == nil {
		return
	}
	g.drag.Release(g.ctrl)
	tile, ok := g.ctrl.TileAtPos(g.view.ToBoard(g.stroke.Position()))
	if !ok {
		return
	}
	if m, ok := g.drag.GetMoveTo(tile.Coord); ok {
		g.ctrl.ApplyMove(m, now, g.settings.MoveDuration)
	}
}

// publish feeds the spectator hub on every change and once a second.
func (g *Game) publish(now float64) {
	if g.hub == nil {
		return
	}
	state := g.ctrl.State()
	key := fmt.Sprintf("%s/%d/%d", state.Phase.Name(), state.MoveNr, g.ctrl.Board().Len())
	if key == g.published && now-g.lastPublish < 1 {
		return
	}
	if g.hub.Publish(g.ctrl.Snapshot(now)) {
		g.published = key
		g.lastPublish = now
	}
}

func (g *Game) draw(screen *ebiten.Image, now float64) {
	if err := screen.Fill(COLOR_BG.RGBA(1)); err != nil {
		log.WithError(err).Warn("Game.draw fill")
	}
	board := g.ctrl.Board()
	for _, t := range board.Tiles() {
		g.drawTile(screen, t, now)
	}
	if g.drag != nil {
		for _, target := range g.drag.Targets {
			g.drawImage(screen, g.tileImage, model.ScreenCoordFromHex(target), 0.9, COLOR_TILE_TARGET, 0.55)
		}
	}
	for _, p := range board.Pieces() {
		if g.drag != nil && p.Props.OID == g.drag.Object.Props.OID {
			continue
		}
		g.drawPiece(screen, p, p.ScreenCoord(), now)
	}
	if g.drag != nil {
		if p := board.Get(g.drag.Object.Props.OID); p != nil {
			g.drawPiece(screen, p, g.view.ToBoard(g.stroke.Position()), now)
		}
	}
	g.drawHUD(screen, now)
}

func (g *Game) drawTile(screen *ebiten.Image, t *model.Object, now float64) {
	pos := t.ScreenCoord()
	scale, alpha := 1.0, 1.0
	if s, ok := t.Status(model.StatusWobble); ok {
		pos.X += wobbleOffset(s, now)
	}
	if s, ok := t.Status(model.StatusFalling); ok {
		p := eased(s, now)
		scale, alpha = 1-0.6*p, 1-p
	} else if t.Props.Dead {
		return
	}
	g.drawImage(screen, g.tileImage, pos, scale, COLOR_TILE, alpha)
}

func (g *Game) drawPiece(screen *ebiten.Image, p *model.Object, pos model.ScreenCoord, now float64) {
	scale, alpha := 1.0, 1.0
	if s, ok := p.Status(model.StatusMove); ok && !p.HasStatus(model.StatusDragged) {
		t := eased(s, now)
		pos = s.From.Lerp(s.To, t)
		pos.Y -= s.Height * math.Sin(math.Pi*t)
		scale += 0.3 * s.Height * math.Sin(math.Pi*t)
	}
	if s, ok := p.Status(model.StatusKilled); ok && now >= s.Start {
		t := s.Progress(now)
		pos = pos.Add(s.Knockback.Scale(0.3 * t))
		alpha = 1 - t
	}
	if s, ok := p.Status(model.StatusFalling); ok {
		t := eased(s, now)
		scale, alpha = scale*(1-0.6*t), alpha*(1-t)
	}
	if p.Props.Dead && len(p.Statuses) == 0 {
		return
	}

	switch p.Type {
	case model.Wall:
		g.drawImage(screen, g.tileImage, pos, 0.8*scale, COLOR_WALL, alpha)
		return
	case model.Dasher:
		g.drawImage(screen, g.discImage, pos, scale, PLAYER_COLORS[p.Player], alpha)
	case model.Jumper:
		g.drawImage(screen, g.ringImage, pos, scale, PLAYER_COLORS[p.Player], alpha)
	}
	x, y := g.view.ToScreen(pos)
	label := p.Type.Name()[:1]
	text.Draw(screen, label, pieceFace, int(x)-5, int(y)+6, COLOR_TEXT.RGBA(alpha))
}

// drawImage draws img centred on pos.
func (g *Game) drawImage(screen, img *ebiten.Image, pos model.ScreenCoord, scale float64, c GameColor, alpha float64) {
	w, h := img.Size()
	x, y := g.view.ToScreen(pos)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(c.r, c.g, c.b, alpha)
	screen.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, now float64) {
	g.hud.Draw(screen)
	state := g.ctrl.State()
	player := g.ctrl.CurrentPlayer()

	line := fmt.Sprintf("%s   move %d", state.Phase.Name(), state.MoveNr)
	var hint string
	switch state.Phase {
	case game.Waiting:
		hint = "Enter to start, R to reset, Esc to quit"
	case game.Countdown:
		hint = fmt.Sprintf("starting in %.1fs", g.ctrl.CountdownLeft(now))
	case game.Playing:
		hint = fmt.Sprintf("player %s, %.1fs left", player.Name(), g.ctrl.MoveTimeLeft(now))
		left := g.ctrl.MoveTimeLeft(now) / g.settings.PlayMoveTimeout
		ebitenutil.DrawRect(screen, 24, hudHeight-22, (screenWidth-48)*left, 4, PLAYER_COLORS[player].RGBA(1))
	case game.GameOver:
		hint = "R to play again"
	}
	text.Draw(screen, line, hudFace, 24, 36, COLOR_TEXT.RGBA(1))
	text.Draw(screen, hint, hudFace, 300, 36, PLAYER_COLORS[player].RGBA(1))

	if g.banner != "" && g.bannerAlpha > 0 {
		x := (screenWidth - font.MeasureString(bannerFace, g.banner).Ceil()) / 2
		text.Draw(screen, g.banner, bannerFace, x, screenHeight/2, COLOR_TEXT.RGBA(g.bannerAlpha))
	}
	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, g.ctrl.ID.String(), 10, screenHeight-16)
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Spectate != "" {
		g.hub = spectate.NewHub()
		go g.hub.Loop()
		defer g.hub.Close()
		srv := spectate.NewServer(cfg.Spectate, g.hub)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				log.WithError(err).Error("spectate server stopped")
			}
		}()
	}
	if err := ebiten.Run(g.update, screenWidth, screenHeight, 1, "Hexaroni"); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
