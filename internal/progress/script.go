package progress

import "vidgencraft-mock-backend/internal/locator"

// Script is the declarative per-workflow event sequence: an initializing
// message, the ordered processing steps, and a completion message. The runner
// interprets it; workflows only differ in data.
type Script struct {
	// Workflow is the locator segment embedded in the final video URL.
	Workflow    string
	InitMessage string
	Steps       []Event
	DoneMessage string
	// ThreadCreationID mints one creation id per connection and stamps it
	// on every event, as the audio pipeline does.
	ThreadCreationID bool
}

// TextToVideo reports discrete prompt-processing steps.
var TextToVideo = Script{
	Workflow:    locator.WorkflowTextToVideo,
	InitMessage: "Starting text to video generation",
	Steps: []Event{
		StepEvent("Processing prompts", 0, 3),
		StepEvent("Processing prompts", 1, 3),
		StepEvent("Processing prompts", 2, 3),
		StepEvent("Processing prompts", 3, 3),
	},
	DoneMessage: "Video generation completed",
}

// ImageToVideo reports percentage progress.
var ImageToVideo = Script{
	Workflow:    locator.WorkflowImageToVideo,
	InitMessage: "Starting image to video generation",
	Steps: []Event{
		PercentEvent("Processing image", 25),
		PercentEvent("Generating video", 50),
		PercentEvent("Finalizing", 75),
	},
	DoneMessage: "Video generation completed",
}

// AudioGeneration reports percentage progress with the creation id threaded
// through every event.
var AudioGeneration = Script{
	Workflow:    locator.WorkflowSoundEffects,
	InitMessage: "Starting audio generation",
	Steps: []Event{
		PercentEvent("Generating audio for video", 30),
		PercentEvent("Applying audio to video", 70),
	},
	DoneMessage:      "Audio generation completed",
	ThreadCreationID: true,
}

// render expands the script into the concrete event sequence for one
// connection. The package-level scripts are never mutated.
func (sc Script) render(resultID string, loc *locator.Generator) []Event {
	events := make([]Event, 0, len(sc.Steps)+2)
	events = append(events, Event{Status: StatusInitializing, Message: sc.InitMessage})
	events = append(events, sc.Steps...)
	events = append(events, Event{
		Status:   StatusCompleted,
		Message:  sc.DoneMessage,
		VideoURL: loc.OutputVideoURL(sc.Workflow, resultID),
	})
	if sc.ThreadCreationID {
		for i := range events {
			events[i].CreationID = resultID
		}
	}
	return events
}
