package domain

// Operation steps reported by the provider for asynchronous jobs.
const (
	StepBill   = "BILL"
	StepWait   = "WAIT"
	StepRun    = "RUN"
	StepDone   = "DONE"
	StepError  = "ERROR"
	StepCancel = "CANCEL"
)

// Operation is a handle to an asynchronous provider-side job.
//
// The legacy transport returns a numeric job id that can be polled with
// operation.info. The REST transport only returns a human-readable message,
// so its operations are not trackable.
type Operation struct {
	ID      int
	Step    string
	Message string

	// Raw is the provider response the operation was built from.
	Raw Record
}

// Trackable reports whether the operation can be polled for progress.
func (o *Operation) Trackable() bool {
	return o != nil && o.ID != 0
}

// Done reports whether the operation reached a terminal step.
func (o *Operation) Done() bool {
	switch o.Step {
	case StepDone, StepError, StepCancel:
		return true
	}
	return false
}

// Failed reports whether the operation ended without success.
func (o *Operation) Failed() bool {
	return o.Step == StepError || o.Step == StepCancel
}

// OperationFromRecord builds an Operation from a provider result.
func OperationFromRecord(rec Record) *Operation {
	op := &Operation{Raw: rec}
	if id, ok := rec.Int("id"); ok {
		op.ID = id
	}
	op.Step = rec.String("step")
	op.Message = rec.String("message")
	return op
}
