package script

import (
	"fmt"
	"time"

	"github.com/chazu/treen/pkg/scad"
)

// EvalTimeout is the hard limit for one evaluation. The engine cannot
// kill the interpreter goroutine, so a timed-out run keeps going in the
// background; the generation check in waitEval discards whatever it
// eventually produces.
const EvalTimeout = 5 * time.Second

type evalOutcome struct {
	tree  *scad.Node
	errs  []EvalError
	fatal error
}

// waitEval collects the outcome for generation gen, giving up after
// EvalTimeout.
func (e *Engine) waitEval(ch <-chan evalOutcome, gen uint64) (*scad.Node, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by a newer request")
		}
		return out.tree, out.errs, out.fatal

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
