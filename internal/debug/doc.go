// Package debug provides the engine's optional structured debug logger.
//
// When the GUI_DEBUG environment variable is set to a file path, debug
// records are appended to that file. Otherwise, logging is a no-op until a
// host installs its own logger with [SetLogger]. [Open] builds a separate
// logger on its own file handle for callers that configure a log path.
package debug
