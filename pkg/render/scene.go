package render

import (
	"image/color"
	"math"

	"go-scorched-earth/internal/app"
	"go-scorched-earth/internal/component"
	"go-scorched-earth/pkg/ballistics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneOptions sizes the shapes drawn for a snapshot.
type SceneOptions struct {
	BarrelLength     float32
	BarrelWidth      float32
	ProjectileRadius float32
	ImpactRadius     float32
}

// SceneRenderer draws a snapshot: sky, terrain polygon, tanks, shell and its trail.
type SceneRenderer struct {
	palette  Palette
	opts     SceneOptions
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewSceneRenderer(palette Palette, opts SceneOptions) *SceneRenderer {
	if palette.GroundEdge.A == 0 {
		palette.GroundEdge = DarkenColor(palette.Ground)
	}
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		palette:  palette,
		opts:     opts,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 128),
		strokeVs: make([]ebiten.Vertex, 0, 128),
		strokeIs: make([]uint16, 0, 256),
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.Fill(r.palette.Sky)
	r.drawTerrain(screen, s)

	// the trail of a finished shot stays on screen, faded, until the next round
	r.drawTrail(screen, s.Trail, WithAlpha(r.palette.Trail, r.palette.Trail.A/2))
	if p := s.Projectile; p != nil {
		r.drawTrail(screen, p.Trail, r.palette.Trail)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r.opts.ProjectileRadius, r.palette.Projectile, true)
	}

	playerAngle := float64(s.Aim.Angle)
	opponentAngle := float64(45)
	r.drawVehicle(screen, s.Player, playerAngle, r.palette.Player)
	r.drawVehicle(screen, s.Opponent, opponentAngle, r.palette.Opponent)

	if s.HasImpact {
		radius := r.opts.ImpactRadius
		if s.Outcome != component.OutcomeHit {
			radius /= 10
		}
		vector.DrawFilledCircle(screen, float32(s.Impact.X), float32(s.Impact.Y), radius, r.palette.Impact, true)
	}
}

func (r *SceneRenderer) drawTerrain(screen *ebiten.Image, s app.Snapshot) {
	if len(s.Terrain) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(s.Terrain[0].X), float32(s.Terrain[0].Y))
	for _, pt := range s.Terrain[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	// the ground outline is concave, so fill it with the even-odd rule
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	applyColor(r.fillVs, r.palette.Ground)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	})

	// only the top edge gets a stroke; the last three points close the polygon
	var edge vector.Path
	top := s.Terrain[:len(s.Terrain)-3]
	edge.MoveTo(float32(top[0].X), float32(top[0].Y))
	for _, pt := range top[1:] {
		edge.LineTo(float32(pt.X), float32(pt.Y))
	}
	edge.LineTo(float32(s.Terrain[len(s.Terrain)-3].X), float32(s.Terrain[len(s.Terrain)-3].Y))
	r.strokeVs, r.strokeIs = edge.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    2,
		LineJoin: vector.LineJoinRound,
	})
	applyColor(r.strokeVs, r.palette.GroundEdge)
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *SceneRenderer) drawTrail(screen *ebiten.Image, trail []component.Point, c color.RGBA) {
	for i := 1; i < len(trail); i++ {
		a, b := trail[i-1], trail[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, c, true)
	}
}

func (r *SceneRenderer) drawVehicle(screen *ebiten.Image, v component.Vehicle, angleDeg float64, c color.RGBA) {
	if v.Width == 0 {
		return
	}
	body := v.Bounds()
	if !v.Alive {
		c = r.palette.Wreck
	}

	// hull takes the lower half, the turret sits on top of it
	hullTop := body.Top + (body.Bottom-body.Top)/2
	vector.DrawFilledRect(screen, float32(body.Left), float32(hullTop), float32(v.Width), float32(body.Bottom-hullTop), c, true)
	turretR := float32((body.Bottom - hullTop) * 0.8)
	vector.DrawFilledCircle(screen, float32(v.X), float32(hullTop), turretR, c, true)

	if !v.Alive {
		return
	}
	dx, dy := BarrelDirection(angleDeg, v.Facing)
	length := float64(r.opts.BarrelLength)
	vector.StrokeLine(screen,
		float32(v.X), float32(hullTop),
		float32(v.X+dx*length), float32(hullTop+dy*length),
		r.opts.BarrelWidth, c, true)
}

// BarrelDirection returns the unit vector of a barrel raised angleDeg above
// the horizon toward the vehicle's facing, in screen coordinates.
func BarrelDirection(angleDeg float64, facing component.Facing) (dx, dy float64) {
	rad := ballistics.Radians(angleDeg)
	dx = math.Cos(rad)
	if facing == component.FacingLeft {
		dx = -dx
	}
	return dx, -math.Sin(rad)
}
