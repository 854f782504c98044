package llm

// Task identifies the kind of coaching call being made, for telemetry and
// observer events.
type Task string

const (
	TaskOnboarding Task = "onboarding"
	TaskRefine     Task = "refine"
	TaskChat       Task = "chat"
	TaskPsychology Task = "psychology"
	TaskBehavior   Task = "behavior"
)

// Config holds the settings for the chat-completions client.
// Model and temperature are configuration, not per-call parameters.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	TimeoutMs   int

	// Optional attribution headers some gateways (OpenRouter) accept.
	Referer  string
	AppTitle string
}

// DefaultConfig returns the settings the hosted app shipped with.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://openrouter.ai/api/v1",
		Model:       "anthropic/claude-3.5-sonnet",
		Temperature: 0.7,
		TimeoutMs:   30000,
	}
}
