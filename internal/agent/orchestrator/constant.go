package orchestrator

const (
	// MaxAgentSteps bounds the reason/act/observe loop for one prompt.
	MaxAgentSteps = 5

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 300
)

// Tool guidance appended to the caller's system prompt when tools are registered.
const toolGuidance = `

TOOLS:
- Use check_availability before promising that a table is free on a date and time.
- Use get_opening_hours and get_menu for exact hours and dishes instead of guessing.
- Dates passed to tools use DD/MM/YYYY, YYYY-MM-DD or words like "tomorrow".
- Never complete a booking yourself. Ask the user to say "I want to book" to start one.`
