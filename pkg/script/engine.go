// Package script evaluates lisp scene scripts into scad trees. Every
// evaluation runs in a fresh sandboxed zygomys interpreter with the shape
// builtins installed; the returned tree is the value of the script's last
// expression.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/treen/pkg/scad"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError is a non-fatal problem in the evaluated script, such as a
// parse error, a bad builtin argument or a failed shape validation.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scene scripts. It is safe for concurrent use: every
// Evaluate call runs in a fresh sandboxed interpreter, and a generation
// counter lets the engine discard results that a newer call superseded.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine returns a ready Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source and returns the scene tree it builds.
//
// Return semantics:
//   - success: tree, nil, nil
//   - parse or runtime failure in the script: nil, eval errors, nil
//   - fatal failure (timeout, panic, superseded run): nil, nil, error
func (e *Engine) Evaluate(source string) (*scad.Node, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalOutcome{fatal: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		tree, evalErrs := evaluate(source)
		ch <- evalOutcome{tree: tree, errs: evalErrs}
	}()

	return e.waitEval(ch, gen)
}

// evaluate runs one script in a fresh sandbox. Empty source is a valid
// script and builds the empty solid.
func evaluate(source string) (*scad.Node, []EvalError) {
	if strings.TrimSpace(source) == "" {
		return scad.Union(), nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env)

	if err := env.LoadString(preprocess(source)); err != nil {
		return nil, interpreterErrors(err)
	}
	last, err := env.Run()
	if err != nil {
		return nil, interpreterErrors(err)
	}

	shape, ok := last.(*sexpShape)
	if !ok {
		return nil, []EvalError{{Message: fmt.Sprintf("script must end with a shape expression, got %s", kindOf(last))}}
	}
	return shape.node, nil
}

// onLinePattern matches interpreter messages like "Error on line 3: ...".
var onLinePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// atLinePattern matches the shorter "line 3: ..." form.
var atLinePattern = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// interpreterErrors converts an interpreter error into EvalErrors, pulling
// a line number out of the message when one is present.
func interpreterErrors(err error) []EvalError {
	msg := err.Error()
	if m := onLinePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := atLinePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
