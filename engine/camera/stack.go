package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is an immutable snapshot of everything needed to restore a
// camera activation: the derived matrices, the viewport and optional scissor
// rectangle, and the projector that produced them.
type CameraState struct {
	// View is the snapshotted view matrix.
	View mgl32.Mat4
	// Projection is the snapshotted projection matrix.
	Projection mgl32.Mat4
	// Viewport is the snapshotted viewport rectangle.
	Viewport common.Viewport
	// Scissor is the snapshotted scissor rectangle, nil when no clipping was
	// active.
	Scissor *common.Rect
	// Projector is the camera that produced this state; restoring the state
	// also makes it the context's current camera.
	Projector Projector
}

// CameraStack manages nested camera activations against one rendering
// context, so renderers can temporarily switch viewpoints (render-to-texture,
// split-screen) and restore the previous one. The stack always retains its
// base entry: popping at size 1 fails with ErrInvalidState, guaranteeing a
// fallback camera for the context.
type CameraStack interface {
	// Push appends a camera state without touching the rendering context.
	// Always succeeds.
	//
	// Parameters:
	//   - state: the state to append
	Push(state CameraState)

	// PushProjector activates the projector, snapshots the resulting context
	// state, and pushes the snapshot.
	//
	// Parameters:
	//   - p: the projector to activate and snapshot
	//
	// Returns:
	//   - error: the error from the projector's Use, if any
	PushProjector(p Projector) error

	// Pop removes and returns the top state and restores the uncovered entry
	// onto the rendering context.
	//
	// Returns:
	//   - CameraState: the removed state
	//   - error: ErrInvalidState when only the base entry remains
	Pop() (CameraState, error)

	// Peek returns the top state without removing it.
	//
	// Returns:
	//   - CameraState: the top state
	//   - error: ErrInvalidState if the stack is empty (cannot occur through
	//     the public API)
	Peek() (CameraState, error)

	// Clear discards everything above the base entry and re-synchronizes the
	// rendering context to the base state, so the context never references a
	// discarded snapshot.
	Clear()

	// Len returns the number of states on the stack, including the base
	// entry.
	//
	// Returns:
	//   - int: the stack depth
	Len() int
}

// cameraStack is the implementation of CameraStack.
type cameraStack struct {
	mu *sync.Mutex

	ctx   render.Context
	stack []CameraState
}

var _ CameraStack = &cameraStack{}

// NewCameraStack creates a camera stack bound to the given rendering context
// and seeds it with a protected base entry. The base projector defaults to a
// ViewportProjector over the context's viewport; supply WithBaseProjector to
// override. The base projector is activated once during construction so the
// base snapshot reflects real context state.
//
// Parameters:
//   - ctx: the rendering context the stack restores states onto
//   - options: functional options to configure the stack
//
// Returns:
//   - CameraStack: the newly created stack, holding exactly the base entry
//   - error: ErrInvalidConfiguration if ctx is nil, or the base projector's
//     activation error
func NewCameraStack(ctx render.Context, options ...CameraStackOption) (CameraStack, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: camera stack requires a rendering context", ErrInvalidConfiguration)
	}

	var cfg cameraStackConfig
	for _, option := range options {
		option(&cfg)
	}

	base := cfg.baseProjector
	if base == nil {
		var err error
		base, err = NewViewportProjector(ctx)
		if err != nil {
			return nil, err
		}
	}

	s := &cameraStack{
		mu:  &sync.Mutex{},
		ctx: ctx,
	}
	if err := s.PushProjector(base); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *cameraStack) Push(state CameraState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = append(s.stack, state)
}

func (s *cameraStack) PushProjector(p Projector) error {
	if err := p.Use(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = append(s.stack, s.captureState(p))
	return nil
}

func (s *cameraStack) Pop() (CameraState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) <= 1 {
		return CameraState{}, fmt.Errorf("%w: cannot pop the final camera stack entry", ErrInvalidState)
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.applyState(s.stack[len(s.stack)-1])
	return top, nil
}

func (s *cameraStack) Peek() (CameraState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) == 0 {
		return CameraState{}, fmt.Errorf("%w: camera stack is empty", ErrInvalidState)
	}
	return s.stack[len(s.stack)-1], nil
}

func (s *cameraStack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:1]
	s.applyState(s.stack[0])
}

func (s *cameraStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack)
}

// captureState snapshots the context's current camera state. Caller must hold
// the mutex.
func (s *cameraStack) captureState(p Projector) CameraState {
	return CameraState{
		View:       s.ctx.ViewMatrix(),
		Projection: s.ctx.ProjectionMatrix(),
		Viewport:   s.ctx.Viewport(),
		Scissor:    s.ctx.Scissor(),
		Projector:  p,
	}
}

// applyState installs a snapshot back onto the rendering context. Caller must
// hold the mutex.
func (s *cameraStack) applyState(state CameraState) {
	s.ctx.SetViewport(state.Viewport)
	s.ctx.SetScissor(state.Scissor)
	s.ctx.SetProjectionMatrix(state.Projection)
	s.ctx.SetViewMatrix(state.View)
	s.ctx.SetCurrentCamera(state.Projector)
}
