package plane

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/orbit"
	"github.com/fractalab/fractalab/internal/potential"
)

// WanderingPolicy flags budget-exhausted orbits suspected of escaping very
// slowly. The detection threshold is deliberately pluggable.
type WanderingPolicy func(iters int, finalValue complex128) bool

// Options tunes a compute pass. The zero value gives cycle detection on,
// one worker per CPU and parameters derived from the family.
type Options struct {
	// Workers is the fixed worker pool size; 0 means runtime.NumCPU().
	Workers int
	// ChunkRows is the cancellation granularity in grid rows; 0 means 4.
	ChunkRows int
	// DisableCycleDetection switches to plain escape-time orbits.
	DisableCycleDetection bool
	// DistanceEstimation classifies cells by boundary distance instead.
	DistanceEstimation bool
	// Wandering, when set, reclassifies Bounded cells it matches.
	Wandering WanderingPolicy
	// Orbit overrides the derived orbit parameters when non-zero.
	Orbit orbit.Params
	// Progress, when set, is called after each finished chunk with the
	// number of completed rows. It must be safe for concurrent use.
	Progress func(rowsDone, totalRows int)
}

// Computer runs a family over every cell of a grid. Cells are independent;
// workers own disjoint row ranges and write without locks.
type Computer struct {
	fam  dynamics.Family
	grid grid.PointGrid
	opts Options
}

// New validates the configuration eagerly; invalid setups never reach the
// compute loop.
func New(fam dynamics.Family, g grid.PointGrid, opts Options) (*Computer, error) {
	if err := dynamics.ValidateFamily(fam); err != nil {
		return nil, err
	}
	if g.ResX <= 0 || g.ResY <= 0 {
		return nil, grid.ErrZeroResolution
	}
	if !g.Bounds.IsValid() {
		return nil, grid.ErrDegenerateBounds
	}
	if o := opts.Orbit; o != (orbit.Params{}) {
		if o.MaxIter <= 0 {
			return nil, dynamics.ErrInvalidMaxIter
		}
		if o.EscapeRadius <= 0 {
			return nil, dynamics.ErrInvalidEscapeRadius
		}
	}
	return &Computer{fam: fam, grid: g, opts: opts}, nil
}

func (c *Computer) orbitParams() orbit.Params {
	p := c.opts.Orbit
	if p == (orbit.Params{}) {
		p = orbit.FromFamily(c.fam, c.grid.Bounds.Area())
	}
	if c.opts.DisableCycleDetection {
		p.PeriodicityTolerance = 0
	}
	return p
}

// Compute allocates a fresh plane and fills it. On cancellation the partial
// plane is returned together with the context error.
func (c *Computer) Compute(ctx context.Context) (*IterPlane, error) {
	ip := NewIterPlane(c.grid)
	err := c.ComputeInto(ctx, ip)
	return ip, err
}

// ComputeInto overwrites the destination plane cell by cell, reusing its
// backing storage. Cancellation is cooperative and checked between chunks of
// rows: in-flight cells run to completion, pending cells keep their previous
// values, and no cell is ever left torn.
func (c *Computer) ComputeInto(ctx context.Context, ip *IterPlane) error {
	if ip == nil || len(ip.Cells) != c.grid.NumCells() || ip.Grid.ResX != c.grid.ResX {
		return ErrPlaneMismatch
	}

	params := c.orbitParams()

	workers := c.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := c.opts.ChunkRows
	if chunk <= 0 {
		chunk = 4
	}

	rows := make(chan int)
	go func() {
		defer close(rows)
		for r := 0; r < c.grid.ResY; r += chunk {
			select {
			case rows <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	var rowsDone int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range rows {
				if ctx.Err() != nil {
					return
				}
				end := r + chunk
				if end > c.grid.ResY {
					end = c.grid.ResY
				}
				for py := r; py < end; py++ {
					for px := 0; px < c.grid.ResX; px++ {
						ip.Set(px, py, c.computeCell(px, py, params))
					}
				}
				done := atomic.AddInt64(&rowsDone, int64(end-r))
				if c.opts.Progress != nil {
					c.opts.Progress(int(done), c.grid.ResY)
				}
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}

func (c *Computer) computeCell(px, py int, params orbit.Params) dynamics.PointInfo {
	point := c.grid.ToPlane(px, py)

	if c.opts.DistanceEstimation {
		dist, phase, ok := potential.DistanceEstimate(c.fam, point)
		if !ok {
			return dynamics.BoundedInfo()
		}
		return dynamics.DistanceEstimateInfo(dist, phase)
	}

	param := c.fam.ParamMap(point)
	start := c.fam.StartPoint(point, param)
	if dynamics.IsNan(start) || dynamics.IsNan(param) {
		return dynamics.UnknownInfo()
	}

	res := orbit.NewCycle(c.fam, start, param, params).Run()
	return c.encode(res, param)
}

// RunPoint classifies a single plane point, for interactive queries.
func (c *Computer) RunPoint(point complex128) dynamics.OrbitInfo {
	param := c.fam.ParamMap(point)
	start := c.fam.StartPoint(point, param)
	res := orbit.NewCycle(c.fam, start, param, c.orbitParams()).Run()
	return dynamics.OrbitInfo{
		Start:  start,
		Param:  param,
		Result: c.encode(res, param),
	}
}

// encode maps a terminal orbit state to the stored classification. Every
// failure mode degrades to a defined variant; nothing here can fail the pass.
func (c *Computer) encode(res dynamics.EscapeResult, param complex128) dynamics.PointInfo {
	switch res.Kind {
	case dynamics.EscapeEscaped:
		return potential.EncodeEscape(c.fam, res.Iters, res.FinalValue, param)
	case dynamics.EscapePeriodic:
		return c.identifyMarkedPoint(res, param)
	case dynamics.EscapeKnownPotential:
		return dynamics.KnownPotentialInfo(res.Cycle.Period, res.Cycle.Multiplier, res.Potential)
	case dynamics.EscapeUnknown:
		return dynamics.UnknownInfo()
	default:
		if c.opts.Wandering != nil && c.opts.Wandering(res.Iters, res.FinalValue) {
			return dynamics.WanderingInfo()
		}
		return dynamics.BoundedInfo()
	}
}

// identifyMarkedPoint matches a detected cycle against the family's known
// cycle classes, if it exposes any.
func (c *Computer) identifyMarkedPoint(res dynamics.EscapeResult, param complex128) dynamics.PointInfo {
	locator, ok := c.fam.(dynamics.CycleLocator)
	if !ok {
		return dynamics.PeriodicInfo(res.Cycle)
	}

	tol := c.orbitParams().PeriodicityTolerance * 10
	if tol <= 0 {
		tol = 1e-10
	}
	cycles := locator.Cycles(param, res.Cycle.Period)
	for classID, w := range cycles {
		if dynamics.DistSqr(res.FinalValue, w) < tol {
			return dynamics.MarkedInfo(res.Cycle, classID, locator.NumCycleClasses())
		}
	}
	return dynamics.PeriodicInfo(res.Cycle)
}
