// Package logutil manages the package loggers of this module. Loggers are
// obtained with GetLogger and write to a shared output, which defaults to
// discarding everything; SetOutput and SetOutputFile retarget all of them at
// once. The lens engine logs exactly one kind of event (see the lens package),
// so leaving the output at its default keeps the engine entirely silent.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix, writing to the shared
// output. It is safe for concurrent use, as are the returned loggers.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger, both
// existing and future ones, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file,
// created if needed. An empty name reverts to discarding.
func SetOutputFile(fname string) error {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	if fname == "" {
		out = io.Discard
	} else {
		file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		outFile = file
		out = file
	}
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
