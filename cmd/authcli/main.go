package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/iliyamo/auth-service/internal/client/cli"
)

func main() {
	_ = godotenv.Load()

	server := flag.String("server", defaultServer(), "base URL of the auth service")
	sessionPath := flag.String("session", "", "path of the session file (default: ~/.authcli/session.json)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	app := cli.NewApp(*server, *sessionPath)
	if err := app.Run(context.Background(), flag.Arg(0)); err != nil {
		log.Fatalf("%v", err)
	}
}

func defaultServer() string {
	if v := os.Getenv("AUTH_SERVER_URL"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <register|login|whoami|logout>\n\n", os.Args[0])
	flag.PrintDefaults()
}
