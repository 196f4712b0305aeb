package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/client"
	"auction-storefront/internal/config"
	"auction-storefront/internal/session"
	"auction-storefront/utils"
)

const usage = `usage: auction-storefront [-config file] <command> [flags] [args]

commands:
  list          list auctions (-type -status -min -max -sort -q)
  show ID       show one auction with its images
  bid ID AMOUNT place a bid
  close ID      close an auction (admin)
  close-all     close every open auction matching the list filters (admin)
  import FILE   import auctions from CSV (admin)
  export        export auctions to CSV (-id, -o)
  login         log in (-email, -password)
  logout        log out and revoke the token
  import-users FILE
                create user accounts from a list of emails (admin)
  whoami        show the current session
  sandbox       run the in-memory backend
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", auctionerrors.Message(err))
		os.Exit(1)
	}
}

// app carries what every command needs
type app struct {
	cfg     *config.Config
	session *session.Session
	client  *client.Client
	out     io.Writer
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("auction-storefront", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	configPath := global.String("config", "", "path to a YAML config file")
	if err := global.Parse(args); err != nil {
		fmt.Fprint(stdout, usage)
		return err
	}
	if global.NArg() == 0 {
		fmt.Fprint(stdout, usage)
		return flag.ErrHelp
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	utils.ConfigureLogger(cfg.Level, nil)

	maxUpload, err := cfg.MaxUploadBytes()
	if err != nil {
		return err
	}

	sess := session.New(session.NewFileStore(cfg.TokenDir))
	a := &app{
		cfg:     cfg,
		session: sess,
		client:  client.New(cfg.BaseURL, sess, client.WithTimeout(cfg.Timeout), client.WithMaxUploadSize(maxUpload)),
		out:     stdout,
	}

	command, rest := global.Arg(0), global.Args()[1:]
	utils.Debug("cli: running command", map[string]any{"command": command, "api": cfg.BaseURL})

	switch command {
	case "list":
		return a.list(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "bid":
		return a.bid(ctx, rest)
	case "close":
		return a.close(ctx, rest)
	case "close-all":
		return a.closeAll(ctx, rest)
	case "import":
		return a.importAuctions(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "import-users":
		return a.importUsers(ctx, rest)
	case "whoami":
		return a.whoami()
	case "sandbox":
		return runSandbox(ctx, cfg, maxUpload, stdout)
	case "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
