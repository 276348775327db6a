package main

import (
	"fmt"
	"os"

	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/version"
	"bennypowers.dev/abbrls/lsp"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	logLevel := pflag.String("log-level", "info", "Minimum server log level: debug, info, warn or error")
	verbose := pflag.CountP("verbose", "v", "Log JSON-RPC traffic (repeat for more detail)")
	showVersion := pflag.Bool("version", false, "Print version information and exit")
	webSocket := pflag.String("websocket", "", "Serve over websocket on this address instead of stdio")
	tcp := pflag.String("tcp", "", "Serve over TCP on this address instead of stdio")
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Error("%v", err)
		os.Exit(2)
	}
	log.SetLevel(level)
	log.Debug("Build info: %v", version.GetBuildInfo())

	// glsp logs through commonlog; verbosity 0 keeps it quiet
	commonlog.Configure(*verbose, nil)

	server, err := lsp.NewServer()
	if err != nil {
		log.Error("Failed to create LSP server: %v", err)
		os.Exit(1)
	}

	switch {
	case *webSocket != "":
		err = server.RunWebSocket(*webSocket)
	case *tcp != "":
		err = server.RunTCP(*tcp)
	default:
		// stdio for VSCode and other editors
		err = server.RunStdio()
	}
	_ = server.Close()
	if err != nil {
		log.Error("Server error: %v", err)
		os.Exit(1)
	}
}
