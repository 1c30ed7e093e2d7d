package stockapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Tasks fetches one page of scheduler tasks. Pages are 1-based.
func (c *Client) Tasks(ctx context.Context, page, pageSize int) (*TasksResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var resp TasksResponse
	if err := c.get(ctx, "/api/scheduler/tasks", query, &resp); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &resp, nil
}

// CreateTask registers a new scheduled task.
func (c *Client) CreateTask(ctx context.Context, req TaskRequest) (*Task, error) {
	var task Task
	if err := c.send(ctx, http.MethodPost, "/api/scheduler/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("create task %s: %w", req.Name, err)
	}
	return &task, nil
}

// UpdateTask replaces a task's definition.
func (c *Client) UpdateTask(ctx context.Context, id int64, req TaskRequest) (*Task, error) {
	var task Task
	path := "/api/scheduler/tasks/" + strconv.FormatInt(id, 10)
	if err := c.send(ctx, http.MethodPut, path, req, &task); err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return &task, nil
}

// DeleteTask removes a task and its pending schedule.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	path := "/api/scheduler/tasks/" + strconv.FormatInt(id, 10)
	if err := c.send(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// RunTask triggers an immediate out-of-schedule run.
func (c *Client) RunTask(ctx context.Context, id int64) (*TaskLog, error) {
	var log TaskLog
	path := "/api/scheduler/tasks/" + strconv.FormatInt(id, 10) + "/run"
	if err := c.send(ctx, http.MethodPost, path, nil, &log); err != nil {
		return nil, fmt.Errorf("run task %d: %w", id, err)
	}
	return &log, nil
}

// Datasets lists the datasets tasks can ingest.
func (c *Client) Datasets(ctx context.Context) ([]Dataset, error) {
	var resp struct {
		Datasets []Dataset `json:"datasets"`
	}
	if err := c.get(ctx, "/api/scheduler/datasets", nil, &resp); err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return resp.Datasets, nil
}

// TaskLogs fetches one page of execution logs. taskID 0 lists logs for all
// tasks.
func (c *Client) TaskLogs(ctx context.Context, taskID int64, page, pageSize int) (*TaskLogsResponse, error) {
	query := url.Values{}
	if taskID > 0 {
		query.Set("task_id", strconv.FormatInt(taskID, 10))
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var resp TaskLogsResponse
	if err := c.get(ctx, "/api/scheduler/logs", query, &resp); err != nil {
		return nil, fmt.Errorf("list task logs: %w", err)
	}

	return &resp, nil
}
