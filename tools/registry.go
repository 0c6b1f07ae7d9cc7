package tools

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/metricskey"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/agentools", "tools")

// Registry maps tool names to handlers.
// It is populated at startup and must not be mutated once dispatching begins;
// Dispatch itself keeps no state between invocations.
type Registry struct {
	tools    *orderedmap.OrderedMap[string, ITool]
	callback Callback
}

func NewRegistry() *Registry {
	return &Registry{
		tools: orderedmap.New[string, ITool](),
	}
}

// WithCallback sets the callback notified on every dispatch.
func (r *Registry) WithCallback(cb Callback) *Registry {
	r.callback = cb
	return r
}

// Register adds tools to the registry, rejecting duplicate names.
func (r *Registry) Register(list ...ITool) error {
	for _, tool := range list {
		if _, ok := r.tools.Get(tool.Name()); ok {
			return errors.Newf("tool already registered: %s", tool.Name())
		}
		r.tools.Set(tool.Name(), tool)
	}
	return nil
}

func (r *Registry) Get(name string) (ITool, bool) {
	return r.tools.Get(name)
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []ITool {
	res := make([]ITool, 0, r.tools.Len())
	for pair := r.tools.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, pair.Value)
	}
	return res
}

func (r *Registry) Len() int {
	return r.tools.Len()
}

// Dispatch invokes the named tool and wraps the outcome in a Result.
// It is a total function: unknown names, tool errors and panics are all
// returned as classified errors, never raised to the caller.
func (r *Registry) Dispatch(ctx context.Context, req *Request) (res *Result) {
	res = &Result{
		ID:   uuid.NewString(),
		Tool: req.Tool,
	}

	tool, ok := r.tools.Get(req.Tool)
	if !ok {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, req.Tool)
		res.Error = NewErrorf(KindNotFound, "tool not found: %s", req.Tool)
		return res
	}

	input := req.Input()

	defer func() {
		if rec := recover(); rec != nil {
			metricskey.StatsToolCallsFailed.IncrCounter(1, req.Tool)
			res.Error = NewErrorf(KindUnknown, "tool %s panicked: %v", req.Tool, rec)
			logger.ContextKV(ctx, xlog.ERROR,
				"event", "tool_panic",
				"tool", req.Tool,
				"err", rec,
			)
		}
	}()

	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, req.Tool)

	if r.callback != nil {
		r.callback.OnToolStart(ctx, tool, input)
	}

	out, err := tool.Call(ctx, input)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, req.Tool)
		res.Error = ClassifyError(err)
		if r.callback != nil {
			r.callback.OnToolError(ctx, tool, input, err)
		}
		logger.ContextKV(ctx, xlog.ERROR,
			"event", "tool_error",
			"tool", req.Tool,
			"kind", res.Error.Kind,
			"err", err.Error(),
		)
		return res
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, req.Tool)
	res.Output = out
	if r.callback != nil {
		r.callback.OnToolEnd(ctx, tool, input, out)
	}
	logger.ContextKV(ctx, xlog.DEBUG,
		"event", "tool_end",
		"tool", req.Tool,
		"id", res.ID,
	)
	return res
}
