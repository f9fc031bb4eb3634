package domain

import (
	"time"
)

// Stage names the resolution pipeline steps.
type Stage string

const (
	StageCompile     Stage = "compile"
	StageExtract     Stage = "extract"
	StageModelAlias  Stage = "model_alias"
	StageParameters  Stage = "parameters"
	StageCopyDecay   Stage = "copy_decay"
	StageChargeConj  Stage = "charge_conj"
	StageDuplicates  Stage = "duplicates"
	StageFreezeTable Stage = "freeze"
)

// StageEvent describes one finished pipeline stage.
type StageEvent struct {
	Stage    Stage
	Decays   int // working decays after the stage
	Duration time.Duration
	Err      error
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnStage      func(*StageEvent)
	OnDiagnostic func(Diagnostic)
}

// Stage invokes OnStage when set.
func (h LifecycleHooks) Stage(ev *StageEvent) {
	if h.OnStage != nil {
		h.OnStage(ev)
	}
}

// Diagnostic invokes OnDiagnostic when set.
func (h LifecycleHooks) Diagnostic(d Diagnostic) {
	if h.OnDiagnostic != nil {
		h.OnDiagnostic(d)
	}
}
