package domain

// ProcessState is the readable scheduler state of the server process.
type ProcessState string

const (
	ProcessRunning  ProcessState = "running"
	ProcessSleeping ProcessState = "sleeping"
	ProcessStopped  ProcessState = "stopped"
	ProcessIdle     ProcessState = "idle"
	ProcessZombie   ProcessState = "zombie"
	ProcessWaiting  ProcessState = "waiting"
	ProcessLocked   ProcessState = "locked"
	ProcessUnknown  ProcessState = "unknown"
)

// ParseProcessState maps the single letter codes reported by ps and /proc.
func ParseProcessState(code string) ProcessState {
	switch code {
	case "R":
		return ProcessRunning
	case "S":
		return ProcessSleeping
	case "T":
		return ProcessStopped
	case "I":
		return ProcessIdle
	case "Z":
		return ProcessZombie
	case "W", "D":
		return ProcessWaiting
	case "L":
		return ProcessLocked
	default:
		return ProcessUnknown
	}
}
