package renderer

import (
	"sync"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/integrator"
)

// Scene is the minimal read-only view of a scene the scheduler needs:
// the aggregate to trace against, the camera to generate rays, and the
// (possibly empty) list of importance-sampled shapes the integrator
// mixes into its PDF at each scattering event. The concrete scene
// container (component K) lives in pkg/scene and satisfies this
// interface; kept narrow here so pkg/renderer never needs to import
// pkg/scene.
type Scene interface {
	Aggregate() core.Aggregate
	Camera() *Camera
	ImportantShapes() []core.Shape
}

// ticket is one (x, y) pixel-sample unit of work.
type ticket struct{ X, Y int }

// accumulator is the shared, row-major RGB sum per pixel. Every
// increment takes the mutex; the critical section is O(1) so contention
// is dominated by trace time, per section 5.
type accumulator struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []core.Vector3
}

func newAccumulator(width, height int) *accumulator {
	return &accumulator{width: width, height: height, pixels: make([]core.Vector3, width*height)}
}

func (a *accumulator) add(x, y int, c core.Vector3) {
	idx := y*a.width + x
	a.mu.Lock()
	a.pixels[idx] = a.pixels[idx].Add(c)
	a.mu.Unlock()
}

// toRGB8 divides every pixel by samples, gamma-corrects, and truncates
// to 8-bit row-major RGB bytes, per 4.J's finalization step.
func (a *accumulator) toRGB8(samples int) []byte {
	out := make([]byte, 0, a.width*a.height*3)
	inv := 1 / float32(samples)
	for _, c := range a.pixels {
		r, g, b := c.Scale(inv).GammaCorrect().ToRGB8()
		out = append(out, r, g, b)
	}
	return out
}

// progress is a monotonic ticket counter that only logs when the
// completion fraction has advanced by more than updateDelta since the
// last print, matching the cadence of original_source/progress.rs so a
// many-goroutine renderer doesn't flood the terminal.
type progress struct {
	mu       sync.Mutex
	done     uint64
	total    uint64
	lastFrac float32
	logger   core.Logger
}

const updateDelta = 0.009

func newProgress(total uint64, logger core.Logger) *progress {
	return &progress{total: total, logger: logger}
}

func (p *progress) increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.total == 0 {
		return
	}
	frac := float32(p.done) / float32(p.total)
	if frac-p.lastFrac > updateDelta || p.done == p.total {
		p.lastFrac = frac
		if p.logger != nil {
			p.logger.Printf("\rrendering: %.1f%% (%d/%d tickets)", frac*100, p.done, p.total)
		}
	}
}

// Render drains a ticket queue of width*height*samples (x, y) pairs
// across numWorkers workers (the calling goroutine runs one of them and
// numWorkers-1 more are spawned), accumulating into a shared pixel buffer, and returns
// the final row-major 8-bit RGB image bytes. Grounded on the teacher's
// pkg/renderer/worker_pool.go for the channel-based task distribution
// shape, replacing its tile/pass abstraction (built for progressive,
// multi-pass rendering, out of scope here) with spec 4.J's flat
// per-pixel-sample ticket queue.
func Render(scene Scene, integ *integrator.PathIntegrator, width, height, samples, numWorkers int, seed int64, logger core.Logger) []byte {
	if numWorkers < 1 {
		numWorkers = 1
	}

	totalTickets := width * height * samples
	tickets := make(chan ticket, totalTickets)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for s := 0; s < samples; s++ {
				tickets <- ticket{X: x, Y: y}
			}
		}
	}
	close(tickets)

	accum := newAccumulator(width, height)
	prog := newProgress(uint64(totalTickets), logger)

	aggregate := scene.Aggregate()
	camera := scene.Camera()
	important := scene.ImportantShapes()

	var wg sync.WaitGroup
	wg.Add(numWorkers - 1)
	for w := 1; w < numWorkers; w++ {
		go func(workerID int) {
			defer wg.Done()
			renderWorker(workerID, seed, tickets, accum, prog, aggregate, camera, important, integ, width, height)
		}(w)
	}
	renderWorker(0, seed, tickets, accum, prog, aggregate, camera, important, integ, width, height)
	wg.Wait()

	if logger != nil {
		logger.Printf("\n")
	}
	return accum.toRGB8(samples)
}

func renderWorker(
	workerID int,
	seed int64,
	tickets <-chan ticket,
	accum *accumulator,
	prog *progress,
	aggregate core.Aggregate,
	camera *Camera,
	important []core.Shape,
	integ *integrator.PathIntegrator,
	width, height int,
) {
	sampler := core.NewRNGSampler(seed + int64(workerID)*9781)
	ws := core.NewWorkspace(workspaceCapacity(aggregate))

	for t := range tickets {
		u1, v1 := sampler.Get2D()
		u := (float32(t.X) + u1) / float32(width)
		v := (float32(height-t.Y) + v1) / float32(height)

		ray := camera.GetRay(u, v, sampler)
		color := integ.Trace(ray, aggregate, important, ws, sampler)
		accum.add(t.X, t.Y, color)
		prog.increment()
	}
}

// workspaceCapacity sizes a BVH traversal Workspace to the tree's node
// count; aggregates without a meaningful node count (List) get a small
// fixed stack, since List's HitClosest never touches ws.
func workspaceCapacity(aggregate core.Aggregate) int {
	type nodeCounter interface{ NodeCount() int }
	if nc, ok := aggregate.(nodeCounter); ok {
		return nc.NodeCount()
	}
	return 8
}
