package log

// Options holds the logging flags shared by every command.
type Options struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"TERMKEY_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of cluttering the screen" env:"TERMKEY_LOG_FILE" type:"path"`
	RawFile string `help:"Mirror raw input events to this file" env:"TERMKEY_LOG_RAW_FILE" type:"path"`
}
