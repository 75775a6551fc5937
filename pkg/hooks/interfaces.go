package hooks

import "context"

// Runner executes hooks around a download.
type Runner interface {
	// Execute runs the hook registered for hookType. A missing hook is not an error.
	Execute(ctx context.Context, hookType HookType, hc HookContext) error

	// HasScript checks if a hook of the specified type is registered.
	HasScript(hookType HookType) bool
}
