package core

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/core/systems"
	"siegefall/internal/fix"
	"siegefall/internal/input"
	"siegefall/internal/metrics"
	"siegefall/internal/prediction"
	"siegefall/internal/transport"
)

// screenWidth and screenHeight are the window dimensions; pixelsPerUnit
// converts one Fix64 world unit to screen pixels at the render boundary
// only — nothing upstream of Draw ever sees a float.
const (
	screenWidth   = 1280
	screenHeight  = 720
	pixelsPerUnit = 40.0

	localPlayerID input.PlayerID = 0
)

// loopbackSender stands in for a real network socket: this host is also its
// own authoritative server, so whatever the Adapter submits is handed
// straight back as the next confirmed ServerFrame. It exists so cmd/game
// exercises the same submit_input -> deliver_server_frame path a networked
// client would, rather than bypassing the transport layer entirely.
type loopbackSender struct {
	adapter *transport.Adapter
}

func (s *loopbackSender) Send(frame []byte) error {
	typ, body, _, cerr := transport.DecodeMessageHeader(frame)
	if cerr != nil || typ != transport.MessageFrameData {
		return nil
	}
	fd, err := transport.DecodeFrameData(body)
	if err != nil {
		return nil
	}
	s.adapter.DeliverServerFrame(transport.ServerFramePayload{
		FrameNumber: fd.FrameNumber,
		Inputs:      fd.Inputs,
	})
	return nil
}

// Game is the fixed-tick host driver: each Ebiten Update runs exactly one
// simulation tick through the prediction controller, then Draw renders
// predicted_world at whatever wall-clock rate Ebiten calls it.
type Game struct {
	controller *prediction.Controller
	adapter    *transport.Adapter
	metrics    *metrics.Metrics

	toggleHeld bool
}

// NewGame wires a fresh match: pipeline, starting world, prediction
// controller, and a loopback transport adapter standing in for the network.
func NewGame() *Game {
	cfg := systems.DefaultConfig()
	pipeline := systems.NewPipeline(cfg, fix.One, physics.DefaultConfig(), zombieRoster())
	world := newMatchWorld(localPlayerID)
	controller := prediction.NewController(pipeline, world)

	sender := &loopbackSender{}
	adapter := transport.NewAdapter(sender, transport.NewMailbox(64, 1))
	sender.adapter = adapter

	return &Game{
		controller: controller,
		adapter:    adapter,
		metrics:    metrics.New(),
	}
}

// Update runs one fixed simulation tick: reads local input, predicts it
// immediately, round-trips it through the (loopback) transport as though it
// were a server confirmation, then reconciles whatever the mailbox now
// holds.
func (g *Game) Update() error {
	return g.tick(g.readLocalInput())
}

// tick is Update's body, split out so tests can drive a simulation tick
// with an explicit FrameData instead of live keyboard/mouse state (reading
// either outside a running Ebiten loop is undefined).
func (g *Game) tick(local input.FrameData) error {
	start := time.Now()

	frame := input.Frame{local}
	predictedFrame := g.controller.LocalTick(frame)

	if err := g.adapter.SubmitInput(predictedFrame, frame); err != nil {
		return err
	}

	for _, sf := range g.adapter.Mailbox.Drain() {
		action := g.controller.Reconcile(sf.FrameNumber, sf.Inputs)
		g.metrics.ObserveReconcile(g.controller, action)
		if action.State.IsGap() {
			if err := g.adapter.RequestLossFrom(action.RequestLossFrom); err != nil {
				return err
			}
		}
	}

	g.metrics.TickDuration.Observe(time.Since(start).Seconds())
	return nil
}

// readLocalInput samples keyboard and mouse state into one FrameData for
// the local player. The fire target is the cursor position, converted from
// screen space to world space around the player's last known position — the
// one-tick lag this introduces is invisible at 60 TPS.
func (g *Game) readLocalInput() input.FrameData {
	fd := input.FrameData{PlayerID: localPlayerID, Direction: g.readDirection()}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		fd.IsFire = true
		wx, wy := g.cursorWorldPosition()
		fd.FireX = wx.Raw()
		fd.FireY = wy.Raw()
	}

	toggle := ebiten.IsKeyPressed(ebiten.KeyTab)
	fd.IsToggle = toggle && !g.toggleHeld
	g.toggleHeld = toggle

	return fd
}

func (g *Game) readDirection() input.Direction {
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	switch {
	case up && left:
		return input.DirUpLeft
	case up && right:
		return input.DirUpRight
	case down && left:
		return input.DirDownLeft
	case down && right:
		return input.DirDownRight
	case up:
		return input.DirUp
	case down:
		return input.DirDown
	case left:
		return input.DirLeft
	case right:
		return input.DirRight
	default:
		return input.DirNone
	}
}

func (g *Game) cursorWorldPosition() (fix.Fix64, fix.Fix64) {
	cx, cy := ebiten.CursorPosition()
	playerPos, _ := g.localPlayerPosition()

	dx := (float64(cx) - screenWidth/2) / pixelsPerUnit
	dy := (float64(cy) - screenHeight/2) / pixelsPerUnit

	return playerPos.X.Add(fix.FromRaw(int64(dx * float64(fix.One)))),
		playerPos.Y.Add(fix.FromRaw(int64(dy * float64(fix.One))))
}

func (g *Game) localPlayerPosition() (fix.FixVec2, bool) {
	world := g.controller.PredictedWorld()
	for _, e := range world.Query().With(ecs.ComponentTypePlayer).Entities() {
		pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
		if pc.(*components.Player).PlayerID != localPlayerID {
			continue
		}
		tc, ok := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		if !ok {
			return fix.ZeroVec2, false
		}
		return tc.(*components.Transform2D).Position, true
	}
	return fix.ZeroVec2, false
}

// projector converts a world position to a screen pixel position, centred
// on the local player. Draw is the only place in the host a fix.Fix64
// becomes a float64.
type projector func(fix.FixVec2) (float32, float32)

// Draw renders predicted_world.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 36, 255})

	world := g.controller.PredictedWorld()
	playerPos, _ := g.localPlayerPosition()

	project := projector(func(p fix.FixVec2) (float32, float32) {
		x := float32(screenWidth/2.0 + (p.X.ToFloat64()-playerPos.X.ToFloat64())*pixelsPerUnit)
		y := float32(screenHeight/2.0 + (p.Y.ToFloat64()-playerPos.Y.ToFloat64())*pixelsPerUnit)
		return x, y
	})

	g.drawWalls(screen, world, project)
	g.drawBarrels(screen, world, project)
	g.drawExplosions(screen, world, project)
	g.drawZombies(screen, world, project)
	g.drawBullets(screen, world, project)
	g.drawPlayers(screen, world, project)

	ebitenutil.DebugPrintAt(screen,
		"predicted="+strconv.FormatUint(g.controller.PredictedFrame(), 10)+
			" confirmed="+strconv.FormatUint(g.controller.ConfirmedFrame(), 10),
		8, 8)
}

func (g *Game) drawPlayers(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypePlayer).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		x, y := project(tc.(*components.Transform2D).Position)
		clr := color.RGBA{80, 220, 120, 255}
		if pc, ok := world.GetComponent(e, ecs.ComponentTypePlayer); ok && pc.(*components.Player).State == components.PlayerStateStunned {
			clr = color.RGBA{220, 220, 80, 255}
		}
		vector.DrawFilledCircle(screen, x, y, float32(fix.Half.ToFloat64()*pixelsPerUnit), clr, true)
	}
}

func (g *Game) drawZombies(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypeZombieAI).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		x, y := project(tc.(*components.Transform2D).Position)
		clr := color.RGBA{200, 60, 60, 255}
		if zc, ok := world.GetComponent(e, ecs.ComponentTypeZombieAI); ok {
			switch zc.(*components.ZombieAI).State {
			case components.ZombieWindup:
				clr = color.RGBA{230, 140, 40, 255}
			case components.ZombieStrike:
				clr = color.RGBA{255, 40, 40, 255}
			}
		}
		vector.DrawFilledCircle(screen, x, y, float32(fix.Half.ToFloat64()*pixelsPerUnit), clr, true)
	}
}

func (g *Game) drawBullets(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypeBullet).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		x, y := project(tc.(*components.Transform2D).Position)
		vector.DrawFilledCircle(screen, x, y, 4, color.RGBA{250, 230, 90, 255}, true)
	}
}

func (g *Game) drawWalls(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypeWall).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		x, y := project(tc.(*components.Transform2D).Position)
		side := float32(2 * pixelsPerUnit)
		vector.DrawFilledRect(screen, x-side/2, y-side/2, side, side, color.RGBA{140, 140, 150, 255}, true)
	}
}

func (g *Game) drawBarrels(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypeBarrel).With(ecs.ComponentTypeTransform2D).Entities() {
		tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
		x, y := project(tc.(*components.Transform2D).Position)
		side := float32(2 * pixelsPerUnit)
		vector.DrawFilledRect(screen, x-side/2, y-side/2, side, side, color.RGBA{160, 90, 40, 255}, true)
	}
}

func (g *Game) drawExplosions(screen *ebiten.Image, world *ecs.World, project projector) {
	for _, e := range world.Query().With(ecs.ComponentTypeExplosion).Entities() {
		ec, _ := world.GetComponent(e, ecs.ComponentTypeExplosion)
		exp := ec.(*components.Explosion)
		x, y := project(exp.Position)
		r := float32(exp.Radius.ToFloat64() * pixelsPerUnit)
		vector.DrawFilledCircle(screen, x, y, r, color.RGBA{255, 150, 40, 160}, true)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Run starts the Ebiten main loop.
func (g *Game) Run() error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("siegefall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
