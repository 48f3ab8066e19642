package camera

import (
	"testing"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraStackRequiresContext(t *testing.T) {
	_, err := NewCameraStack(nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewCameraStackSeedsBaseEntry(t *testing.T) {
	ctx := testContext()
	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stack.Len())

	base, err := stack.Peek()
	require.NoError(t, err)
	assert.NotNil(t, base.Projector)
	assert.Same(t, base.Projector, ctx.CurrentCamera())

	// The default base is a viewport projector over the context's viewport.
	assert.Equal(t, common.Viewport{Width: 800, Height: 600}, base.Viewport)
	assert.Equal(t, mgl32.Ident4(), base.View)
}

func TestNewCameraStackCustomBaseProjector(t *testing.T) {
	ctx := testContext()
	world, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	stack, err := NewCameraStack(ctx, WithBaseProjector(world))
	require.NoError(t, err)

	base, err := stack.Peek()
	require.NoError(t, err)
	assert.Same(t, world, base.Projector)
	assert.Same(t, world, ctx.CurrentCamera())
}

func TestNewCameraStackInvalidBaseProjector(t *testing.T) {
	ctx := testContext()
	world, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)
	world.ViewData().Up = world.ViewData().Forward

	_, err = NewCameraStack(ctx, WithBaseProjector(world))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestCameraStackPopProtectsBaseEntry(t *testing.T) {
	stack, err := NewCameraStack(testContext())
	require.NoError(t, err)

	_, err = stack.Pop()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 1, stack.Len())
}

func TestCameraStackPushProjectorAndPop(t *testing.T) {
	ctx := testContext()
	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	base, err := stack.Peek()
	require.NoError(t, err)

	world, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	require.NoError(t, stack.PushProjector(world))
	assert.Equal(t, 2, stack.Len())
	assert.Same(t, world, ctx.CurrentCamera())

	worldProjection, err := world.ProjectionMatrix()
	require.NoError(t, err)
	assert.Equal(t, worldProjection, ctx.ProjectionMatrix())

	popped, err := stack.Pop()
	require.NoError(t, err)
	assert.Same(t, world, popped.Projector)
	assert.Equal(t, worldProjection, popped.Projection)
	assert.Equal(t, 1, stack.Len())

	// Popping restores the uncovered base state onto the context.
	assert.Same(t, base.Projector, ctx.CurrentCamera())
	assert.Equal(t, base.Viewport, ctx.Viewport())
	assert.Equal(t, base.Projection, ctx.ProjectionMatrix())
	assert.Equal(t, base.View, ctx.ViewMatrix())
}

func TestCameraStackPushProjectorUseFailure(t *testing.T) {
	ctx := testContext()
	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	world, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)
	world.ViewData().Up = world.ViewData().Forward

	err = stack.PushProjector(world)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.Equal(t, 1, stack.Len(), "failed activation must not grow the stack")
}

func TestCameraStackPushAndPeek(t *testing.T) {
	ctx := testContext()
	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	state := CameraState{
		View:       mgl32.Translate3D(1, 2, 3),
		Projection: mgl32.Ortho(0, 100, 0, 100, -1, 1),
		Viewport:   common.Viewport{Width: 100, Height: 100},
	}
	stack.Push(state)

	assert.Equal(t, 2, stack.Len())

	top, err := stack.Peek()
	require.NoError(t, err)
	assert.Equal(t, state, top)

	// A plain Push never touches the context.
	assert.NotEqual(t, state.Viewport, ctx.Viewport())
}

func TestCameraStackScissorSnapshot(t *testing.T) {
	ctx := testContext()
	baseScissor := &common.Rect{Width: 50, Height: 50}
	ctx.SetScissor(baseScissor)

	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	world, err := NewPerspectiveProjector(ctx)
	require.NoError(t, err)

	passScissor := &common.Rect{X: 10, Y: 10, Width: 200, Height: 200}
	ctx.SetScissor(passScissor)
	require.NoError(t, stack.PushProjector(world))

	popped, err := stack.Pop()
	require.NoError(t, err)
	assert.Same(t, passScissor, popped.Scissor)
	assert.Same(t, baseScissor, ctx.Scissor(), "popping restores the base scissor")
}

func TestCameraStackClear(t *testing.T) {
	ctx := testContext()
	stack, err := NewCameraStack(ctx)
	require.NoError(t, err)

	base, err := stack.Peek()
	require.NoError(t, err)

	for range 3 {
		world, err := NewPerspectiveProjector(ctx)
		require.NoError(t, err)
		require.NoError(t, stack.PushProjector(world))
	}
	require.Equal(t, 4, stack.Len())

	stack.Clear()

	assert.Equal(t, 1, stack.Len())
	assert.Same(t, base.Projector, ctx.CurrentCamera())
	assert.Equal(t, base.Viewport, ctx.Viewport())
	assert.Equal(t, base.Projection, ctx.ProjectionMatrix())
	assert.Equal(t, base.View, ctx.ViewMatrix())
}
