package model

type BookingStatus string

const (
	BookingStatusDraft      BookingStatus = "draft"
	BookingStatusReceived   BookingStatus = "received"
	BookingStatusProcessing BookingStatus = "processing"
	BookingStatusWarning    BookingStatus = "warning"
	BookingStatusCompleted  BookingStatus = "completed"
)

// BookingStatuses lists every status in display order.
var BookingStatuses = []BookingStatus{
	BookingStatusDraft,
	BookingStatusReceived,
	BookingStatusProcessing,
	BookingStatusWarning,
	BookingStatusCompleted,
}

// progressOrder holds the ordinal steps. Warning is not a step of its own.
var progressOrder = []BookingStatus{
	BookingStatusDraft,
	BookingStatusReceived,
	BookingStatusProcessing,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusDraft, BookingStatusReceived, BookingStatusProcessing, BookingStatusWarning, BookingStatusCompleted:
		return true
	}

	return false
}

func ParseBookingStatus(value string) (BookingStatus, error) {
	status := BookingStatus(value)
	if !status.Valid() {
		return "", invalidValue(ErrInvalidBookingStatus, value)
	}

	return status, nil
}

// ProgressIndex maps a status onto the progress bar. Warning shares the
// ordinal of processing; anything unknown sits at the start.
func ProgressIndex(status BookingStatus) int {
	switch status {
	case BookingStatusReceived:
		return 1
	case BookingStatusProcessing, BookingStatusWarning:
		return 2
	case BookingStatusCompleted:
		return 3
	default:
		return 0
	}
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

type ProgressStep struct {
	Status BookingStatus `json:"status"`
	Index  int           `json:"index"`
	State  StepState     `json:"state"`
}

func ProgressSteps(status BookingStatus) []ProgressStep {
	current := ProgressIndex(status)
	steps := make([]ProgressStep, 0, len(progressOrder))

	for i, s := range progressOrder {
		state := StepPending

		switch {
		case i < current:
			state = StepCompleted
		case i == current:
			state = StepCurrent
		}

		steps = append(steps, ProgressStep{Status: s, Index: i, State: state})
	}

	return steps
}

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
)

var JobStatuses = []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusCompleted}

var jobStatusRank = map[JobStatus]int{
	JobStatusPending:    0,
	JobStatusProcessing: 1,
	JobStatusCompleted:  2,
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatusRank[s]

	return ok
}

func ParseJobStatus(value string) (JobStatus, error) {
	status := JobStatus(value)
	if !status.Valid() {
		return "", invalidValue(ErrInvalidJobStatus, value)
	}

	return status, nil
}

// CanTransitionJob allows forward moves along pending, processing, completed.
// Staying on the same status is allowed and changes nothing.
func CanTransitionJob(from, to JobStatus) bool {
	fromRank, ok := jobStatusRank[from]
	if !ok {
		return false
	}

	toRank, ok := jobStatusRank[to]
	if !ok {
		return false
	}

	return toRank >= fromRank
}
