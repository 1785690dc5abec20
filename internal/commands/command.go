// Package commands wraps engine operations as two-phase request objects:
// inputs are captured and completed at construction, Execute performs the
// call and surfaces the engine's errors unchanged.
package commands

import "context"

type Command interface {
	Execute(ctx context.Context) error
}
