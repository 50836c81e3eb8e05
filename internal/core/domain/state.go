package domain

// TaskState represents the lifecycle state of a scheduled task.
type TaskState string

const (
	// TaskPending indicates the task is scheduled but not yet initialized.
	TaskPending TaskState = "pending"
	// TaskRunning indicates the task has been initialized and is executed every tick.
	TaskRunning TaskState = "running"
	// TaskFinished indicates the task reported completion and its End hook ran.
	TaskFinished TaskState = "finished"
	// TaskInterrupted indicates the task was cancelled, displaced or failed.
	TaskInterrupted TaskState = "interrupted"
)

// IsTerminal checks if a state is terminal (Finished or Interrupted).
func (s TaskState) IsTerminal() bool {
	return s == TaskFinished || s == TaskInterrupted
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
