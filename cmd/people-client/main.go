// ABOUTME: Entry point for people-client, a command-line client for people-gateway
// ABOUTME: Parses global flags, loads config and dispatches to a command

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: people-client [-addr host:port] [-config path] <command> [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  ping                                      Check the gateway answers")
	fmt.Fprintln(os.Stderr, "  create -name N [-email E] [-phone P:T]... Create a person")
	fmt.Fprintln(os.Stderr, "  get ID                                    Show one person")
	fmt.Fprintln(os.Stderr, "  list [START [END]]                        List people by position (END -1 reads to the end)")
	fmt.Fprintln(os.Stderr, "  update ID [-name N] [-email E] [-phone P:T]...")
	fmt.Fprintln(os.Stderr, "                                            Update the given fields")
	fmt.Fprintln(os.Stderr, "  delete ID                                 Delete one person")
	fmt.Fprintln(os.Stderr, "  purge ID...                               Delete many people over one stream")
	fmt.Fprintln(os.Stderr, "  demo [-n COUNT]                           Run every call against fake people")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Phone types: mobile, home, work (default mobile).")
}

func main() {
	global := flag.NewFlagSet("people-client", flag.ExitOnError)
	global.Usage = usage
	addr := global.String("addr", "", "gateway gRPC address (overrides config)")
	cfgPath := global.String("config", clientConfigPath(), "client config file")
	_ = global.Parse(os.Args[1:])

	args := global.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if err := run(args, *addr, *cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, addrOverride, cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if addrOverride != "" {
		cfg.Gateway.Addr = addrOverride
	}
	if cfg.Output.Color != nil {
		color.NoColor = !*cfg.Output.Color
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn, err := grpc.NewClient(cfg.Gateway.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", cfg.Gateway.Addr, err)
	}
	defer conn.Close()

	return newClient(conn, os.Stdout).run(ctx, args[0], args[1:])
}
