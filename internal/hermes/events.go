package hermes

// SubjectAnalysisCompleted is published once per analysed conversation.
const SubjectAnalysisCompleted = "swarm.vidocq.analysis.completed"

// AnalysisEvent describes the outcome of an analysis. It never carries
// message content.
type AnalysisEvent struct {
	RequestID       string `json:"request_id"`
	Source          string `json:"source"` // "remote" or "local"
	Level           string `json:"level,omitempty"`
	MessageCount    int    `json:"message_count"`
	FlaggedMessages int    `json:"flagged_messages"`
	Timestamp       string `json:"timestamp"`
}
