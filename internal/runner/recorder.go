package runner

import (
	"context"
	"sync"
)

// Invocation is one call observed by a Recorder.
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// Command returns the invocation as a single command line.
func (i Invocation) Command() string {
	return commandLine(i.Name, i.Args)
}

// Recorder is a Runner that records invocations instead of running them.
// Hook, when set, runs for each call and decides the result; it may also
// create files to stand in for what the real command would write.
type Recorder struct {
	Hook func(inv Invocation) (*Output, error)

	mu    sync.Mutex
	calls []Invocation
}

// Run records the invocation and returns the Hook result, or a zero Output.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) (*Output, error) {
	inv := Invocation{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	r.mu.Unlock()

	if r.Hook != nil {
		return r.Hook(inv)
	}
	return &Output{}, nil
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}

// Commands returns the recorded invocations as command lines.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Command()
	}
	return out
}
