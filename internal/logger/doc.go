// Package logger configures the zerolog logger used by the command line tools.
package logger
