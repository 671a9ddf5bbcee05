package dashboard

import "context"

// Controller runs the reducer and its effects to completion, one action at
// a time. It is not safe for concurrent use.
type Controller struct {
	runner Runner
	state  State
}

func NewController(runner Runner) *Controller {
	return &Controller{runner: runner, state: NewState()}
}

func (c *Controller) State() State {
	return c.state
}

// Dispatch applies action and every follow-up completion in FIFO order,
// returning the settled state.
func (c *Controller) Dispatch(ctx context.Context, action Action) State {
	queue := []Action{action}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		var effects []Effect
		c.state, effects = Reduce(c.state, next)
		for _, effect := range effects {
			queue = append(queue, c.runner.Run(ctx, effect))
		}
	}
	return c.state
}
