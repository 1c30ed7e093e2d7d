package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotboard/pkg/stockapi"
)

// MonitorView is one snapshot of the smart-monitor control panel.
type MonitorView struct {
	Phase   Phase
	Status  *stockapi.MonitorStatus
	Signals []stockapi.MonitorSignal
	SigErr  string // signal fetch failure, "" when ok
	Err     string
}

// LoadMonitor fetches the daemon status and the recent signals in
// parallel. Status is the page's backbone: without it the page is failed,
// while missing signals only degrade it.
func LoadMonitor(ctx context.Context, client *stockapi.Client, signalLimit int) MonitorView {
	var (
		status  *stockapi.MonitorStatus
		signals []stockapi.MonitorSignal
		stErr   error
		sigErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, stErr = client.MonitorStatus(gctx)
		return nil
	})
	g.Go(func() error {
		signals, sigErr = client.MonitorSignals(gctx, signalLimit)
		return nil
	})
	_ = g.Wait()

	v := MonitorView{}
	if sigErr != nil {
		v.SigErr = sigErr.Error()
	} else {
		v.Signals = signals
	}

	if stErr != nil {
		v.Phase = PhaseFailed
		v.Err = stErr.Error()
		return v
	}

	v.Phase = PhaseReady
	v.Status = status
	return v
}

// SetMonitorRunning starts or stops the monitor and returns a snapshot of
// the resulting state. The returned status comes from the control call
// itself; signals are re-fetched to match.
func SetMonitorRunning(ctx context.Context, client *stockapi.Client, run bool, signalLimit int) MonitorView {
	var (
		status *stockapi.MonitorStatus
		err    error
	)
	if run {
		status, err = client.StartMonitor(ctx)
	} else {
		status, err = client.StopMonitor(ctx)
	}
	if err != nil {
		return MonitorView{Phase: PhaseFailed, Err: err.Error()}
	}

	v := MonitorView{Phase: PhaseReady, Status: status}
	signals, sigErr := client.MonitorSignals(ctx, signalLimit)
	if sigErr != nil {
		v.SigErr = sigErr.Error()
	} else {
		v.Signals = signals
	}
	return v
}
