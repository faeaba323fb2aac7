package middleware

import "context"

// Command runs one named CLI command with its arguments.
type Command func(ctx context.Context, name string, args []string) error

// Chain applies mws so the first one is outermost.
func Chain(cmd Command, mws ...func(Command) Command) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}
