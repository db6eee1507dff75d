package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// Seed credentials created by the seed command.
const (
	seedUsername = "testuser"
	seedPassword = "password123"
)

var errUsage = errors.New("invalid arguments")

type cli struct {
	app *app.App
	out io.Writer
	in  io.Reader

	ok   func(w io.Writer, format string, a ...any)
	info func(w io.Writer, format string, a ...any)
	warn func(w io.Writer, format string, a ...any)
}

func newCLI(a *app.App, out io.Writer, in io.Reader) *cli {
	return &cli{
		app:  a,
		out:  out,
		in:   in,
		ok:   color.New(color.FgGreen).FprintfFunc(),
		info: color.New(color.FgCyan).FprintfFunc(),
		warn: color.New(color.FgYellow).FprintfFunc(),
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cli <command> [arguments]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  seed                                   create the default test user")
	fmt.Fprintln(w, "  register <username>                    register a user (password is prompted)")
	fmt.Fprintln(w, "  accounts                               list active accounts")
	fmt.Fprintln(w, "  open <user_id> <balance> [name]        open an account")
	fmt.Fprintln(w, "  close <account_number>                 close an account")
	fmt.Fprintln(w, "  transfer <source> <destination> <amt>  transfer funds")
	fmt.Fprintln(w, "  history <account_number>               list transfers of an account")
}

func (c *cli) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage(c.out)
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "seed":
		err = c.seed(ctx)
	case "register":
		err = c.register(ctx, rest)
	case "accounts":
		err = c.accounts(ctx)
	case "open":
		err = c.open(ctx, rest)
	case "close":
		err = c.close(ctx, rest)
	case "transfer":
		err = c.transfer(ctx, rest)
	case "history":
		err = c.history(ctx, rest)
	default:
		usage(c.out)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if msg := domain.Message(err); msg != "" {
		return errors.New(msg)
	}
	return err
}

func (c *cli) seed(ctx context.Context) error {
	_, err := c.app.UserService.GetByUsername(ctx, seedUsername)
	switch {
	case err == nil:
		c.warn(c.out, "user %s already exists\n", seedUsername)
		return nil
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}
	u, err := c.app.UserService.Register(ctx, seedUsername, seedPassword)
	if err != nil {
		return err
	}
	c.ok(c.out, "seeded user %s (%s)\n", u.Username, u.ID)
	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: register <username>", errUsage)
	}
	fmt.Fprint(c.out, "Password: ")
	password, err := c.readPassword()
	fmt.Fprintln(c.out)
	if err != nil {
		return err
	}
	u, err := c.app.UserService.Register(ctx, args[0], password)
	if err != nil {
		return err
	}
	c.ok(c.out, "registered %s (%s)\n", u.Username, u.ID)
	return nil
}

// readPassword reads without echo on a terminal and a plain line otherwise.
func (c *cli) readPassword() (string, error) {
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *cli) accounts(ctx context.Context) error {
	accounts, err := c.app.AccountService.ListActiveAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		c.warn(c.out, "no active accounts\n")
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tBALANCE\tNAME\tOWNER")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Number, a.Balance, a.Name, a.UserID)
	}
	return tw.Flush()
}

func (c *cli) open(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: open <user_id> <balance> [name]", errUsage)
	}
	userID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	balance, err := money.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}
	name := ""
	if len(args) == 3 {
		name = args[2]
	}
	acc, err := c.app.AccountService.CreateAccount(ctx, userID, balance, name)
	if err != nil {
		return err
	}
	c.ok(c.out, "opened account %s with balance %s\n", acc.Number, acc.Balance)
	return nil
}

func (c *cli) close(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: close <account_number>", errUsage)
	}
	if err := c.app.AccountService.CloseAccount(ctx, args[0]); err != nil {
		return err
	}
	c.ok(c.out, "account %s closed\n", args[0])
	return nil
}

func (c *cli) transfer(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: transfer <source> <destination> <amount>", errUsage)
	}
	amount, err := money.Parse(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	balance, err := c.app.AccountService.TransferFunds(ctx, args[0], args[1], amount)
	if err != nil {
		return err
	}
	c.ok(c.out, "transferred %s, new balance of %s is %s\n", amount, args[0], balance)
	return nil
}

func (c *cli) history(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: history <account_number>", errUsage)
	}
	txs, err := c.app.AccountService.History(ctx, args[0])
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		c.warn(c.out, "no transfers for %s\n", args[0])
		return nil
	}
	c.info(c.out, "%d transfer(s) for %s\n", len(txs), args[0])
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tAMOUNT\tSOURCE\tDESTINATION")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Amount, tx.SourceAccountID, tx.DestinationAccountID)
	}
	return tw.Flush()
}
