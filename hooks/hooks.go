// Package hooks manages tissue hooks: selection markers attached to surface
// points, each backed by a deformation constraint in the physics
// collaborator. A hook owns a (triangle, uv) surface point; its material
// anchor is resolved through the lattice embedding, never stored.
package hooks

import (
	"fmt"

	"github.com/meshcut/vntet/lattice"
)

const (
	DefaultHookSize       = 2.5
	DefaultSpringConstant = 40.0
)

// ConstraintSolver is the physics collaborator surface: enough to create,
// move and remove a hook constraint anchored at an embedded material point.
type ConstraintSolver interface {
	AddHook(nodes [4]int, weight [3]float64, world lattice.Vec3, strong bool) (constraintID int)
	MoveHook(constraintID int, world lattice.Vec3)
	DeleteHook(constraintID int)
}

type hookConstraint struct {
	triangle     int
	uv           [2]float64
	tet          int
	weight       [3]float64
	xyz          lattice.Vec3
	constraintID int
	selected     bool
	strong       bool
}

type Hooks struct {
	lat    *lattice.Lattice
	solver ConstraintSolver // nil until physics activation

	hooks   map[int]*hookConstraint
	hookNow int

	HookSize       float64
	SpringConstant float64
}

func NewHooks(lat *lattice.Lattice) (h *Hooks) {
	h = &Hooks{
		lat:            lat,
		hooks:          make(map[int]*hookConstraint),
		HookSize:       DefaultHookSize,
		SpringConstant: DefaultSpringConstant,
	}
	return
}

// ActivatePhysics attaches the constraint solver and creates constraints for
// any hooks added before activation.
func (h *Hooks) ActivatePhysics(solver ConstraintSolver) {
	h.solver = solver
	for _, hk := range h.hooks {
		if hk.constraintID < 0 {
			hk.constraintID = solver.AddHook(h.lat.TetNodes[hk.tet], hk.weight, hk.xyz, hk.strong)
		}
	}
}

/*
AddHook attaches a hook at a (triangle, uv) surface point. The point is
resolved to its embedding pair through point location; an unresolvable point
means the surface and lattice have diverged at that spot and the hook is
refused
*/
func (h *Hooks) AddHook(triangle int, uv [2]float64, strong bool) (hookNumber int, err error) {
	if !h.lat.Surface.TriangleLive(triangle) {
		return -1, fmt.Errorf("cannot hook dead triangle %d", triangle)
	}
	tet, weight, ok := h.lat.RegisterTrianglePoint(triangle, uv)
	if !ok {
		return -1, fmt.Errorf("hook point on triangle %d not embedded in solid material", triangle)
	}
	hk := &hookConstraint{
		triangle:     triangle,
		uv:           uv,
		tet:          tet,
		weight:       weight,
		constraintID: -1,
		strong:       strong,
	}
	hk.xyz = h.lat.GridToWorld(lattice.CentroidWeightToGridLocus(h.lat.TetCentroids[tet], weight))
	if h.solver != nil {
		hk.constraintID = h.solver.AddHook(h.lat.TetNodes[tet], weight, hk.xyz, strong)
	}
	hookNumber = h.hookNow
	h.hooks[hookNumber] = hk
	h.hookNow++
	return
}

// MoveHook drags a hook to a new world position through its constraint.
// Moving a hook before physics activation is a fatal precondition error.
func (h *Hooks) MoveHook(hookNumber int, worldPos lattice.Vec3) bool {
	hk, ok := h.hooks[hookNumber]
	if !ok {
		return false
	}
	if hk.constraintID < 0 {
		panic("attempting to move a hook without physics activation")
	}
	hk.xyz = worldPos
	h.solver.MoveHook(hk.constraintID, worldPos)
	return true
}

// DeleteHook removes a hook. The solver is only told when the hook's
// triangle is still live and a constraint was actually created; a hook on a
// cut-away triangle has nothing left to release.
func (h *Hooks) DeleteHook(hookNumber int) {
	hk, ok := h.hooks[hookNumber]
	if !ok {
		return
	}
	if h.lat.Surface.TriangleLive(hk.triangle) && hk.constraintID > -1 {
		h.solver.DeleteHook(hk.constraintID)
	}
	delete(h.hooks, hookNumber)
}

// SelectHook marks one hook selected and deselects the rest.
func (h *Hooks) SelectHook(hookNumber int) {
	for n, hk := range h.hooks {
		hk.selected = n == hookNumber
	}
}

func (h *Hooks) Selected(hookNumber int) bool {
	hk, ok := h.hooks[hookNumber]
	return ok && hk.selected
}

// HookPosition returns a hook's current world position.
func (h *Hooks) HookPosition(hookNumber int) (pos lattice.Vec3, ok bool) {
	hk, found := h.hooks[hookNumber]
	if !found {
		return pos, false
	}
	return hk.xyz, true
}

// HookAnchor exposes a hook's embedding for the physics collaborator.
func (h *Hooks) HookAnchor(hookNumber int) (tet int, weight [3]float64, ok bool) {
	hk, found := h.hooks[hookNumber]
	if !found {
		return lattice.TetNotFound, weight, false
	}
	return hk.tet, hk.weight, true
}

func (h *Hooks) Count() int { return len(h.hooks) }

/*
PruneDead drops hooks whose triangles have been cut away, returning how many
were removed. Run after every surface topology change
*/
func (h *Hooks) PruneDead() (pruned int) {
	for n, hk := range h.hooks {
		if !h.lat.Surface.TriangleLive(hk.triangle) {
			delete(h.hooks, n)
			pruned++
		}
	}
	return
}
