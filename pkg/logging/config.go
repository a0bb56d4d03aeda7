package logging

const (
	BaseDataDir   = "data"
	LogsDir       = "logs"
	LogFileFormat = "2006-01-02.log"
	TimeFormat    = "2006-01-02 15:04:05"
)

// Rotation defaults for the per-process log file.
const (
	defaultMaxSizeMB  = 50
	defaultMaxAgeDays = 30
	defaultMaxBackups = 10
)

// ProcessName names the log directory of a binary
type ProcessName string

const (
	OperatorProcess      ProcessName = "operator"
	TaskGeneratorProcess ProcessName = "taskgenerator"
	RegistrationProcess  ProcessName = "registration"
	TestProcess          ProcessName = "test"
)

type LoggerConfig struct {
	ProcessName   ProcessName
	IsDevelopment bool

	// LogDir overrides data/logs/<process> when set.
	LogDir string
}
