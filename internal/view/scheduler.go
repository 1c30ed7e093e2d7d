package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotboard/pkg/stockapi"
)

// SchedulerView is one snapshot of the scheduler console: a task page
// plus the dataset catalog.
type SchedulerView struct {
	Phase     Phase
	Page      int // 1-based
	PageSize  int
	Total     int
	Pages     int
	Tasks     []stockapi.Task
	Datasets  []stockapi.Dataset
	DsErr     string // dataset fetch failure, "" when ok
	ActionErr string // last mutation failure, "" when ok
	Err       string
}

// LoadScheduler fetches the task page and the dataset catalog in parallel.
// Losing the catalog degrades the page (no dataset picker), it does not
// fail it.
func LoadScheduler(ctx context.Context, client *stockapi.Client, page, pageSize int) SchedulerView {
	var (
		tasks    *stockapi.TasksResponse
		datasets []stockapi.Dataset
		tasksErr error
		dsErr    error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, tasksErr = client.Tasks(gctx, page, pageSize)
		return nil
	})
	g.Go(func() error {
		datasets, dsErr = client.Datasets(gctx)
		return nil
	})
	_ = g.Wait()

	v := SchedulerView{Page: page, PageSize: pageSize}
	if dsErr != nil {
		v.DsErr = dsErr.Error()
	} else {
		v.Datasets = datasets
	}

	if tasksErr != nil {
		v.Phase = PhaseFailed
		v.Err = tasksErr.Error()
		return v
	}

	v.Total = tasks.Total
	v.Pages = PageCount(tasks.Total, pageSize)
	v.Tasks = tasks.Items
	if len(tasks.Items) == 0 {
		v.Phase = PhaseEmpty
	} else {
		v.Phase = PhaseReady
	}
	return v
}

// ApplyTask runs one scheduler mutation and reloads the snapshot so the
// page reflects the backend's actual post-state. A failed mutation still
// reloads; its error is carried in ActionErr alongside whatever the
// backend now reports.
func ApplyTask(ctx context.Context, client *stockapi.Client, page, pageSize int, mutate func(context.Context) error) SchedulerView {
	mutErr := mutate(ctx)
	v := LoadScheduler(ctx, client, page, pageSize)
	if mutErr != nil {
		v.ActionErr = mutErr.Error()
	}
	return v
}

// TaskLogsView is one page of task execution logs.
type TaskLogsView struct {
	Phase    Phase
	TaskID   int64 // 0 means all tasks
	Page     int
	PageSize int
	Total    int
	Pages    int
	Items    []stockapi.TaskLog
	Err      string
}

// LoadTaskLogs fetches one page of execution logs.
func LoadTaskLogs(ctx context.Context, client *stockapi.Client, taskID int64, page, pageSize int) TaskLogsView {
	resp, err := client.TaskLogs(ctx, taskID, page, pageSize)
	if err != nil {
		return TaskLogsView{
			Phase:    PhaseFailed,
			TaskID:   taskID,
			Page:     page,
			PageSize: pageSize,
			Err:      err.Error(),
		}
	}

	v := TaskLogsView{
		TaskID:   taskID,
		Page:     page,
		PageSize: pageSize,
		Total:    resp.Total,
		Pages:    PageCount(resp.Total, pageSize),
		Items:    resp.Items,
	}
	if len(resp.Items) == 0 {
		v.Phase = PhaseEmpty
	} else {
		v.Phase = PhaseReady
	}
	return v
}
