package action

import (
	"log"
	"sync"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
)

// Executor performs a concrete OS operation. Implementations must treat
// unknown actions as no-ops, not errors.
type Executor interface {
	Execute(act Action) error
}

// StopSignal reports the emergency-stop condition. Polled once per
// dispatch, before anything else.
type StopSignal interface {
	Triggered() bool
}

// Gate owns the execution-enabled flag and dispatches intents through it.
// The flag starts disabled, is toggled only by explicit user command, and
// is forced off by an emergency stop. Nothing re-enables it automatically.
// Safe for concurrent use; the tray and server toggle it from other
// goroutines.
type Gate struct {
	mu      sync.Mutex
	enabled bool

	table Table
	exec  Executor
	stop  StopSignal
}

// NewGate builds a Gate in the disabled state. A nil stop means no
// emergency-stop collaborator is wired.
func NewGate(table Table, exec Executor, stop StopSignal) *Gate {
	if table == nil {
		table = DefaultTable()
	}
	return &Gate{table: table, exec: exec, stop: stop}
}

// Enable turns execution on. Only an explicit user command calls this.
func (g *Gate) Enable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = true
	log.Printf("action: execution enabled")
}

// Disable turns execution off.
func (g *Gate) Disable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = false
	log.Printf("action: execution disabled")
}

// Enabled reports the current flag.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// Dispatch resolves and, if permitted, executes the intent's action. The
// emergency stop is checked first: when triggered the gate disables itself
// and the dispatch is reported as an emergency stop regardless of the
// prior flag. Dispatch never returns an error; failures degrade into the
// record.
func (g *Gate) Dispatch(sig intent.Signal) Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	act := g.table.Resolve(sig.Intent)

	if g.stop != nil && g.stop.Triggered() {
		g.enabled = false
		log.Printf("action: emergency stop, execution disabled (intent=%s action=%s)", sig.Intent, act)
		return newRecord(sig.Intent, act, StatusEmergencyStop)
	}

	if act == NoAction {
		log.Printf("action: no action required (intent=%s)", sig.Intent)
		return newRecord(sig.Intent, act, StatusNoAction)
	}

	if !g.enabled {
		log.Printf("action: blocked (execution disabled): %s", act)
		return newRecord(sig.Intent, act, StatusBlocked)
	}

	log.Printf("action: executing %s (intent=%s)", act, sig.Intent)
	if err := g.exec.Execute(act); err != nil {
		log.Printf("action: executing %s failed: %v", act, err)
		rec := newRecord(sig.Intent, act, StatusError)
		rec.Err = err.Error()
		return rec
	}
	return newRecord(sig.Intent, act, StatusExecuted)
}
