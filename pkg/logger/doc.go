/*
Package logger wraps uber-go/zap behind a small interface with verbosity
levels and structured fields.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 1,
	})

	log.Info("Search started")   // verbosity >= 1
	log.Debug("File read")       // verbosity >= 2
	log.Trace("Line matched")    // verbosity >= 3

Verbosity Levels:

	0: Warn, Error (default)
	1: Info + Level 0
	2: Debug + Level 1
	3: Trace + Level 2

Trace entries are emitted at zap's debug level with a "TRACE: " prefix.

Structured Logging:

	log.WithFields(logger.Fields{
	    "path":    "poem.txt",
	    "matches": 2,
	}).Info("Search completed")

Output Example (JSON):

	{"level":"info","ts":"2024-01-20T15:04:05.000Z","logger":"minigrep","message":"Search completed","path":"poem.txt","matches":2}

Logs go to os.Stderr unless Config.Output says otherwise. Standard output is
reserved for matched lines.
*/
package logger
