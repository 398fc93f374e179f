// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"
)

func init() {
	// Keep the main goroutine on the main OS thread so Main can hand it
	// to platforms that only run there.
	runtime.LockOSThread()
}

// lifecycle is the process-wide registry behind Main and Wait.
type lifecycle struct {
	mu     sync.Mutex
	inits  map[Platform]func() error
	joined sync.WaitGroup
	mainQ  chan func()
	inMain atomix.Uint32
}

var procs = lifecycle{
	inits: make(map[Platform]func() error),
	mainQ: make(chan func()),
}

// initPlatform runs p.Init at most once per platform value and returns
// the same result to every later caller.
func initPlatform(p Platform) error {
	procs.mu.Lock()
	once, ok := procs.inits[p]
	if !ok {
		once = sync.OnceValue(p.Init)
		procs.inits[p] = once
	}
	procs.mu.Unlock()
	return once()
}

// Controller owns a window's worker thread and its process-exit policy.
// Read-only for the host: queries never block except Wait and Shutdown.
type Controller struct {
	policy  JoinPolicy
	running atomix.Uint32
	done    chan struct{}
	close   func() error
}

func newController(policy JoinPolicy) *Controller {
	return &Controller{policy: policy, done: make(chan struct{})}
}

// start spawns the worker. On main-thread platforms the worker body is
// handed to Main instead of a fresh OS thread.
func (c *Controller) start(body func(), onMain bool) {
	if c.policy == JoinWait {
		procs.joined.Add(1)
	}
	c.running.Store(1)
	if onMain {
		go func() { procs.mainQ <- body }()
		return
	}
	go func() {
		// The thread is discarded on exit rather than returned to the
		// scheduler: native toolkits leave thread-local state behind.
		runtime.LockOSThread()
		body()
	}()
}

// finish is called by the worker as its last action.
func (c *Controller) finish() {
	c.running.Store(0)
	close(c.done)
	if c.policy == JoinWait {
		procs.joined.Done()
	}
}

// Policy returns the join policy chosen at Create.
func (c *Controller) Policy() JoinPolicy {
	return c.policy
}

// Running reports worker liveness. Racy by nature: a native close may be
// in flight. Never blocks.
func (c *Controller) Running() bool {
	return c.running.Load() != 0
}

// Done returns a channel closed once the worker has terminated.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the worker has terminated.
func (c *Controller) Wait() {
	<-c.done
}

// Shutdown enqueues a close and blocks until the worker has joined.
// Returns immediately if the worker already terminated.
func (c *Controller) Shutdown() {
	select {
	case <-c.done:
		return
	default:
	}
	// ErrChannelClosed here means the session is already closing.
	_ = c.close()
	<-c.done
}

// Main runs fn on a new goroutine while the calling goroutine, which must
// be the program's main goroutine, serves windows of platforms that need
// the main thread. Main returns after fn has returned and every window
// created with JoinWait has terminated. Call it from func main:
//
//	func main() {
//		webwin.Main(run)
//	}
//
// Main-thread windows run one after another: each occupies the main
// thread until it closes.
func Main(fn func()) {
	procs.inMain.Store(1)
	defer procs.inMain.Store(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	serve(done)

	joined := make(chan struct{})
	go func() {
		procs.joined.Wait()
		close(joined)
	}()
	serve(joined)
}

// serve runs main-thread window bodies until stop is closed.
func serve(stop <-chan struct{}) {
	for {
		select {
		case body := <-procs.mainQ:
			body()
		case <-stop:
			return
		}
	}
}

// Wait blocks until every window created with JoinWait has terminated.
// Programs whose platform runs on any thread may call Wait at the end of
// main instead of using Main.
func Wait() {
	procs.joined.Wait()
}

func mainActive() bool {
	return procs.inMain.Load() != 0
}
