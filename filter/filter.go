// Package filter compiles expressions into predicates over channel
// status rows, using the expr language for evaluation.
package filter

import (
	"github.com/s0up4200/twitchlens/analytics"
)

// defaultCompiler backs the package-level helpers.
var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles a filter expression using the default compiler.
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// CreateFilter compiles an expression and returns it as a plain predicate.
func CreateFilter(expression string) (func(analytics.ChannelStatus) bool, error) {
	filter, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return filter.Evaluate, nil
}

// Apply returns the status rows matching the filter, preserving order.
func Apply(filter Filter, statuses []analytics.ChannelStatus) []analytics.ChannelStatus {
	matches := make([]analytics.ChannelStatus, 0, len(statuses))
	for _, status := range statuses {
		if filter.Evaluate(status) {
			matches = append(matches, status)
		}
	}
	return matches
}
