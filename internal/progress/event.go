package progress

// Event statuses, emitted in this order on every stream.
const (
	StatusInitializing = "initializing"
	StatusProcessing   = "processing"
	StatusCompleted    = "completed"
)

// Event is one status update on a generation stream. Depending on the
// workflow variant a processing event carries either a completed/total step
// count or a percentage progress value.
type Event struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Completed  *int   `json:"completed,omitempty"`
	Total      *int   `json:"total,omitempty"`
	Progress   int    `json:"progress,omitempty"`
	CreationID string `json:"creation_id,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
}

// StepEvent builds a processing event with a discrete step count.
// Pointers keep "completed": 0 on the wire.
func StepEvent(message string, completed, total int) Event {
	return Event{
		Status:    StatusProcessing,
		Message:   message,
		Completed: &completed,
		Total:     &total,
	}
}

// PercentEvent builds a processing event with a percentage progress value.
func PercentEvent(message string, percent int) Event {
	return Event{
		Status:   StatusProcessing,
		Message:  message,
		Progress: percent,
	}
}
