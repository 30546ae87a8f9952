package types

// CLIArgs represents the command-line arguments shared by every audit command.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string
	Dir        string
	ReportName string
	ReportType []string
	LogLevel   string
	LogFormat  string
	Plain      bool

	// Flags específicas de subcomandos
	Threshold *int
	State     string
}
