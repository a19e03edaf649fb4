// Package logging provides a simple leveled logging interface for the
// gallery generator.
//
// The log level is controlled by the DEBUG and LOG_LEVEL environment
// variables. DEBUG=true enables debug output; otherwise LOG_LEVEL may be
// one of debug, info, warn, or error. The default level is info.
package logging
