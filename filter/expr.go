package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/twitchlens/analytics"
)

// channelFilter implements CompiledFilter using the expr language
type channelFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newFilterCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *filterCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow status properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &channelFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.size()
	}
	return 0
}

// Evaluate evaluates the filter against a status row
func (f *channelFilter) Evaluate(status analytics.ChannelStatus) bool {
	env := runtimeEnvironment(status)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Rows that fail to evaluate are treated as non-matching
		return false
	}

	if matched, ok := result.(bool); ok {
		return matched
	}
	return false
}

// Expression returns the original expression
func (f *channelFilter) Expression() string {
	return f.expression
}

// helperFunctions creates the static helpers available during compilation
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// runtimeEnvironment creates the evaluation environment for one status row
func runtimeEnvironment(status analytics.ChannelStatus) map[string]any {
	env := make(map[string]any, 16)

	addHelperFunctions(env)

	// Status helpers using closures
	env["playing"] = func(game string) bool {
		return status.Live && strings.EqualFold(status.Game, game)
	}
	env["titleContains"] = func(substr string) bool {
		return strings.Contains(strings.ToLower(status.Title), strings.ToLower(substr))
	}

	// Direct status properties for convenience
	env["Status"] = status
	env["Channel"] = status.Channel
	env["DisplayName"] = status.DisplayName
	env["Description"] = status.Description
	env["Live"] = status.Live
	env["Title"] = status.Title
	env["Game"] = status.Game
	env["Viewers"] = status.Viewers
	env["Failed"] = status.Failed()

	return env
}
