package discord

import (
	"github.com/kvisle/herald/internal/command"
)

// execute fans every attached handler of one variant out on its own
// goroutine and joins them all. The first error observed in join order wins;
// otherwise the last joined success is the reply. Later errors still get
// logged so a misbehaving duplicate handler is visible.
func execute[R any, F ~func(*command.Context, R) (command.Response, error)](ctx *command.Context, fns []F, req R) (command.Response, error) {
	if len(fns) == 0 {
		return command.None(), command.ErrNotImplemented
	}

	if len(fns) == 1 {
		return fns[0](ctx, req)
	}

	type outcome struct {
		resp command.Response
		err  error
	}

	ch := make(chan outcome, len(fns))
	for _, fn := range fns {
		go func(fn F) {
			resp, err := fn(ctx, req)
			ch <- outcome{resp: resp, err: err}
		}(fn)
	}

	var firstErr error
	resp := command.None()

	for range fns {
		out := <-ch
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			} else {
				ctx.Log.Error().Err(out.err).Msg("additional handler error suppressed")
			}
			continue
		}
		resp = out.resp
	}

	if firstErr != nil {
		return command.None(), firstErr
	}
	return resp, nil
}
