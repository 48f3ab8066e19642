package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() render.Context {
	return render.NewContext(render.WithViewport(common.Viewport{Width: 800, Height: 600}))
}

func TestNewPerspectiveProjectorRequiresContext(t *testing.T) {
	_, err := NewPerspectiveProjector(nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewPerspectiveProjectorDefaults(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	view := p.ViewData()
	assert.Equal(t, common.Viewport{Width: 800, Height: 600}, view.Viewport)
	assert.Equal(t, mgl32.Vec3{400, 300, 0}, view.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, view.Up)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, view.Forward)
	assert.Equal(t, float32(1), view.Zoom)

	proj := p.Projection()
	assert.InDelta(t, 800.0/600.0, proj.Aspect, 1e-6)
	assert.Equal(t, float32(90), proj.Fov)
	assert.Equal(t, float32(0.1), proj.Near)
	assert.Equal(t, float32(1000), proj.Far)
}

func TestNewPerspectiveProjectorWindowSizeOverridesContext(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext(), WithWindowSize(1920, 1080))
	require.NoError(t, err)

	assert.Equal(t, common.Viewport{Width: 1920, Height: 1080}, p.Viewport())
	assert.Equal(t, mgl32.Vec3{960, 540, 0}, p.ViewData().Position)
	assert.InDelta(t, 16.0/9.0, p.Projection().Aspect, 1e-6)
}

func TestNewPerspectiveProjectorNoDimensions(t *testing.T) {
	ctx := render.NewContext(render.WithViewport(common.Viewport{}))
	_, err := NewPerspectiveProjector(ctx)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPerspectiveViewMatrixIsOrthonormal(t *testing.T) {
	// The supplied up is deliberately skewed off perpendicular; the derived
	// basis must still come out orthonormal.
	p, err := NewPerspectiveProjector(testContext(),
		WithView(NewViewData(
			WithDataViewport(common.Viewport{Width: 800, Height: 600}),
			WithPosition(mgl32.Vec3{12, -3, 40}),
			WithUp(mgl32.Vec3{0.3, 1, 0.2}),
			WithForward(mgl32.Vec3{0.5, -0.2, -1}),
		)),
	)
	require.NoError(t, err)

	m, err := p.ViewMatrix()
	require.NoError(t, err)

	right := m.Row(0).Vec3()
	up := m.Row(1).Vec3()
	back := m.Row(2).Vec3()

	assert.InDelta(t, 1, float64(right.Len()), 1e-5)
	assert.InDelta(t, 1, float64(up.Len()), 1e-5)
	assert.InDelta(t, 1, float64(back.Len()), 1e-5)
	assert.InDelta(t, 0, float64(right.Dot(up)), 1e-5)
	assert.InDelta(t, 0, float64(right.Dot(back)), 1e-5)
	assert.InDelta(t, 0, float64(up.Dot(back)), 1e-5)
}

func TestPerspectiveViewMatrixMatchesLookAt(t *testing.T) {
	pos := mgl32.Vec3{5, 2, 8}
	forward := mgl32.Vec3{0, 0, -1}
	p, err := NewPerspectiveProjector(testContext(),
		WithView(NewViewData(
			WithDataViewport(common.Viewport{Width: 800, Height: 600}),
			WithPosition(pos),
			WithForward(forward),
		)),
	)
	require.NoError(t, err)

	m, err := p.ViewMatrix()
	require.NoError(t, err)

	expected := mgl32.LookAtV(pos, pos.Add(forward), mgl32.Vec3{0, 1, 0})
	assert.True(t, m.ApproxEqualThreshold(expected, 1e-5), "got %v want %v", m, expected)
}

func TestPerspectiveZoomScalesFieldOfView(t *testing.T) {
	// Fov 90 at zoom 2 must produce the same projection as fov 45 at zoom 1.
	zoomed, err := NewPerspectiveProjector(testContext(),
		WithView(NewViewData(
			WithDataViewport(common.Viewport{Width: 800, Height: 600}),
			WithZoom(2),
		)),
		WithPerspective(&PerspectiveProjectionData{Aspect: 800.0 / 600.0, Fov: 90, Near: 0.1, Far: 1000}),
	)
	require.NoError(t, err)

	narrow, err := NewPerspectiveProjector(testContext(),
		WithPerspective(&PerspectiveProjectionData{Aspect: 800.0 / 600.0, Fov: 45, Near: 0.1, Far: 1000}),
	)
	require.NoError(t, err)

	mZoomed, err := zoomed.ProjectionMatrix()
	require.NoError(t, err)
	mNarrow, err := narrow.ProjectionMatrix()
	require.NoError(t, err)

	assert.True(t, mZoomed.ApproxEqualThreshold(mNarrow, 1e-6))
}

func TestPerspectiveProjectionMatrixErrors(t *testing.T) {
	t.Run("invalid projection data", func(t *testing.T) {
		p, err := NewPerspectiveProjector(testContext(),
			WithPerspective(&PerspectiveProjectionData{Aspect: 1, Fov: 90, Near: 10, Far: 10}),
		)
		require.NoError(t, err)
		_, err = p.ProjectionMatrix()
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("zoom below minimum", func(t *testing.T) {
		p, err := NewPerspectiveProjector(testContext())
		require.NoError(t, err)
		p.ViewData().Zoom = 0
		_, err = p.ProjectionMatrix()
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("effective fov out of range", func(t *testing.T) {
		p, err := NewPerspectiveProjector(testContext())
		require.NoError(t, err)
		// fov 90 at zoom 0.4 widens to 225 degrees.
		p.ViewData().Zoom = 0.4
		_, err = p.ProjectionMatrix()
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestPerspectiveViewMatrixDegenerate(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	p.ViewData().Up = p.ViewData().Forward
	_, err = p.ViewMatrix()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	err = p.Use()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = p.MapCoordinate(400, 300)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestPerspectiveUseInstallsState(t *testing.T) {
	ctx := testContext()
	p, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	require.NoError(t, p.Use())

	view, err := p.ViewMatrix()
	require.NoError(t, err)
	projection, err := p.ProjectionMatrix()
	require.NoError(t, err)

	assert.Same(t, p, ctx.CurrentCamera())
	assert.Equal(t, p.Viewport(), ctx.Viewport())
	assert.Equal(t, view, ctx.ViewMatrix())
	assert.Equal(t, projection, ctx.ProjectionMatrix())
}

func TestPerspectiveActivateRequiresPreviousCamera(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	err = p.Activate(func(Projector) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPerspectiveActivateRestoresPreviousCamera(t *testing.T) {
	ctx := testContext()
	base, err := NewViewportProjector(ctx)
	require.NoError(t, err)
	require.NoError(t, base.Use())

	inner, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	called := false
	err = inner.Activate(func(p Projector) error {
		called = true
		assert.Same(t, inner, p)
		assert.Same(t, inner, ctx.CurrentCamera())
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Same(t, base, ctx.CurrentCamera())
}

func TestPerspectiveActivateRestoresOnError(t *testing.T) {
	ctx := testContext()
	base, err := NewViewportProjector(ctx)
	require.NoError(t, err)
	require.NoError(t, base.Use())

	inner, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	boom := errors.New("pass failed")
	err = inner.Activate(func(Projector) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Same(t, base, ctx.CurrentCamera())
}

func TestPerspectiveActivateSurfacesRestoreFailure(t *testing.T) {
	ctx := testContext()
	base, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)
	require.NoError(t, base.Use())

	inner, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	err = inner.Activate(func(Projector) error {
		// Corrupting the base camera makes its restoring Use fail.
		base.ViewData().Up = base.ViewData().Forward
		return nil
	})
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestPerspectiveActivateBlockErrorWinsOverRestoreFailure(t *testing.T) {
	ctx := testContext()
	base, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)
	require.NoError(t, base.Use())

	inner, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	boom := errors.New("pass failed")
	err = inner.Activate(func(Projector) error {
		base.ViewData().Up = base.ViewData().Forward
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestPerspectiveMapCoordinateCenterHitsNearPlane(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	// The viewport center unprojects along the forward axis onto the near
	// clip plane.
	world, err := p.MapCoordinate(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, 400, float64(world.X()), 0.05)
	assert.InDelta(t, 300, float64(world.Y()), 0.05)
	assert.InDelta(t, -0.1, float64(world.Z()), 1e-3)
}

func TestPerspectiveMapCoordinateAtDepthRoundTrip(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	full, err := p.ViewProjectionMatrix()
	require.NoError(t, err)

	near := p.Projection().Near
	far := p.Projection().Far
	vp := p.Viewport()

	worldPoints := []mgl32.Vec3{
		{400, 300, -50},
		{430, 280, -80},
		{350, 340, -5},
	}
	for _, world := range worldPoints {
		clip := full.Mul4x1(world.Vec4(1))
		ndc := clip.Vec3().Mul(1 / clip.W())

		screenX := (ndc.X()+1)/2*float32(vp.Width) + float32(vp.X)
		screenY := (ndc.Y()+1)/2*float32(vp.Height) + float32(vp.Y)
		depth := (ndc.Z() + 1) * (far - near) / 2

		mapped, err := p.MapCoordinateAtDepth(screenX, screenY, depth)
		require.NoError(t, err)
		vecInDelta(t, world, mapped, 0.5)
	}
}

func TestPerspectiveMapCoordinateZeroViewport(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext(),
		WithView(NewViewData()),
	)
	require.NoError(t, err)

	_, err = p.MapCoordinate(10, 10)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPerspectiveFrustum(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	frustum, err := p.Frustum()
	require.NoError(t, err)

	// The default camera sits at the window center looking down -Z.
	assert.True(t, frustum.ContainsPoint(mgl32.Vec3{400, 300, -10}))
	assert.False(t, frustum.ContainsPoint(mgl32.Vec3{400, 300, 10}), "behind the camera")
	assert.False(t, frustum.ContainsPoint(mgl32.Vec3{400, 300, -2000}), "beyond the far plane")
}

func TestPerspectiveGPUUniform(t *testing.T) {
	p, err := NewPerspectiveProjector(testContext())
	require.NoError(t, err)

	uniform, err := p.GPUUniform()
	require.NoError(t, err)

	full, err := p.ViewProjectionMatrix()
	require.NoError(t, err)

	assert.Equal(t, [16]float32(full), uniform.ViewProj)
	assert.Equal(t, [3]float32{400, 300, 0}, uniform.CameraPosition)
}
