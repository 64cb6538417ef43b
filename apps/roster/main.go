package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/edcentre/core"
	"github.com/trezcool/edcentre/core/person"
	"github.com/trezcool/edcentre/services/logger"
	"github.com/trezcool/edcentre/storage/database/inmem"
)

var isTerminalFunc = term.IsTerminal

func main() {
	conf := core.Conf

	// set up logging
	logOut, err := openLogOutput(conf.LogFile)
	errAndDie(err)
	rlog := logsvc.NewRollbarLogger(logsvc.NewZeroLogger(logOut, conf.LogLevel), conf)
	shutdown := func() {
		rlog.Close()
		logOut.Close()
	}
	defer shutdown()

	// set up DB & services
	db, err := inmemdb.Open()
	errAndDie(err)
	rosterSvc := person.NewService(inmemdb.NewRosterRepository(db), rlog)

	// start CLI
	cli := commandLine{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isTerminalFunc(int(os.Stdin.Fd())) && isTerminalFunc(int(os.Stdout.Fd())),
		conf:        conf,
		svc:         rosterSvc,
		log:         rlog,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			rlog.Error("roster stopped", err)
		}
		shutdown()
		os.Exit(1)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openLogOutput appends to the file at `path`, or writes to stderr when `path` is empty.
func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	return f, nil
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
