package monitor

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"crashwatch/internal/collector"
	"crashwatch/internal/model"
	"crashwatch/internal/notifier"
	"crashwatch/internal/recorder"
	"crashwatch/internal/state"
	"crashwatch/internal/strategy"
)

// ErrNoMarketData is returned when every instrument fetch failed.
var ErrNoMarketData = errors.New("no market data available")

// Notifier delivers a formatted message.
type Notifier interface {
	Send(text string) error
}

// Runner executes one monitoring pass: fetch, evaluate, transition, notify,
// persist.
type Runner struct {
	Collector  *collector.Collector
	Store      *state.Store
	Notifier   Notifier
	Recorder   recorder.Recorder
	Thresholds strategy.Thresholds
	Log        *zap.SugaredLogger

	// Now is overridable for tests.
	Now func() time.Time
}

// NewRunner creates a Runner.
func NewRunner(col *collector.Collector, st *state.Store, n Notifier, rec recorder.Recorder, th strategy.Thresholds, log *zap.SugaredLogger) *Runner {
	return &Runner{
		Collector:  col,
		Store:      st,
		Notifier:   n,
		Recorder:   rec,
		Thresholds: th,
		Log:        log,
		Now:        time.Now,
	}
}

// Run performs a single pass. The only fatal error is a fully failed fetch;
// everything else is logged and the run completes.
func (r *Runner) Run() error {
	r.Log.Infof("run started")

	snap := r.Collector.Collect()
	if snap.Empty() {
		return ErrNoMarketData
	}
	r.logSnapshot(snap)

	triggered, trigger := strategy.Evaluate(snap, r.Thresholds)
	if snap.Primary == nil || snap.Volatility == nil {
		r.Log.Warnf("primary or volatility data missing, no crash judgement possible")
	}

	prev := r.Store.Load()
	now := r.Now()
	transition := r.transition(prev, snap, triggered, trigger, now)

	r.record(snap, triggered, trigger, transition)
	r.Log.Infof("run completed: transition=%s", transition)
	return nil
}

// transition applies the state machine, sends the appropriate alert, and
// persists the new state. It returns the transition label.
func (r *Runner) transition(prev *model.CrashState, snap *model.MarketSnapshot, triggered bool, trigger string, now time.Time) string {
	next := &model.CrashState{LastChecked: &now}
	label := recorder.TransitionNone

	switch {
	case triggered && !prev.IsCrash:
		r.Log.Infof("crash detected: %s", trigger)
		r.send(notifier.FormatInitialAlert(snap, trigger))
		next.IsCrash = true
		next.FirstDetected = &now
		label = recorder.TransitionInitial

	case triggered && prev.IsCrash:
		r.Log.Infof("crash continuing since %v", prev.FirstDetected)
		r.send(notifier.FormatContinuationAlert(snap))
		next.IsCrash = true
		next.FirstDetected = prev.FirstDetected
		label = recorder.TransitionContinuation

	case !triggered && prev.IsCrash:
		r.Log.Infof("recovered from crash state")
		label = recorder.TransitionRecovery

	default:
		r.Log.Infof("normal market conditions")
	}

	if err := r.Store.Save(next); err != nil {
		r.Log.Errorf("save state: %v", err)
	}
	return label
}

func (r *Runner) send(text string) {
	if err := r.Notifier.Send(text); err != nil {
		r.Log.Errorf("send notification: %v", err)
		return
	}
	r.Log.Infof("notification sent")
}

func (r *Runner) record(snap *model.MarketSnapshot, triggered bool, trigger, transition string) {
	rec := &recorder.RunRecord{
		Triggered:  triggered,
		Trigger:    trigger,
		Transition: transition,
	}
	if snap.Primary != nil {
		rec.PrimaryPrice = snap.Primary.Current
		rec.PrimaryDrawdown = snap.Primary.Drawdown
	}
	if snap.Broad != nil {
		rec.BroadPrice = snap.Broad.Current
		rec.BroadDrawdown = snap.Broad.Drawdown
	}
	if snap.Volatility != nil {
		rec.VolatilityValue = snap.Volatility.Current
	}
	if err := r.Recorder.RecordRun(rec); err != nil {
		r.Log.Errorf("record run: %v", err)
	}
}

func (r *Runner) logSnapshot(snap *model.MarketSnapshot) {
	if snap.Primary != nil {
		r.Log.Infof("%s: %.2f (%.2f%% vs 52w high %.2f)",
			snap.Primary.Symbol, snap.Primary.Current, snap.Primary.Drawdown, snap.Primary.High52w)
	}
	if snap.Broad != nil {
		r.Log.Infof("%s: %.2f (%.2f%% vs 52w high %.2f)",
			snap.Broad.Symbol, snap.Broad.Current, snap.Broad.Drawdown, snap.Broad.High52w)
	}
	if snap.Volatility != nil {
		r.Log.Infof("%s: %.2f", snap.Volatility.Symbol, snap.Volatility.Current)
	}
}
