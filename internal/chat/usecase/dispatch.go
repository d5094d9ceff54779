package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/toolcall"
	"github.com/binguliki/IntelliLearn/internal/tools"
)

// dispatch runs every resolvable tool request concurrently and waits for all
// of them before returning. Requests naming an unregistered tool are dropped.
// A failure in one call never cancels or blocks the others, and a panic
// inside a tool is contained to its own result.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, reqs []toolcall.Request) []chat.ToolResult {
	type job struct {
		req  toolcall.Request
		tool tools.Tool
	}

	jobs := make([]job, 0, len(reqs))
	for _, r := range reqs {
		tool, ok := uc.registry.Get(r.Name)
		if !ok {
			uc.l.Warnf(ctx, "chat.usecase.dispatch: unknown tool %q", r.Name)
			continue
		}
		jobs = append(jobs, job{req: r, tool: tool})
	}
	if len(jobs) == 0 {
		return nil
	}

	results := make([]chat.ToolResult, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = uc.runTool(ctx, sc, j.tool, j.req)
		}(i, j)
	}
	wg.Wait()

	return results
}

func (uc *implUseCase) runTool(ctx context.Context, sc model.Scope, tool tools.Tool, req toolcall.Request) (res chat.ToolResult) {
	res.Name = req.Name
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.usecase.runTool.%s: panic: %v", req.Name, r)
			res.Payload = nil
			res.Err = fmt.Errorf("tool %s panicked: %v", req.Name, r)
		}
	}()

	tctx, cancel := context.WithTimeout(ctx, uc.toolTimeout)
	defer cancel()

	payload, err := tool.Execute(tctx, sc, req.Args)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.runTool.%s: %v", req.Name, err)
	}
	res.Payload = payload
	res.Err = err
	return res
}
