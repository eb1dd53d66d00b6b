// Command bankdemo seeds a small in-memory bank, runs a couple of transfers,
// prints the ledger report, and drops into an interactive shell when run from
// a terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/ledgerhouse/bankledger/infra/initializer"
	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/ledgerhouse/bankledger/pkg/config"
	"github.com/ledgerhouse/bankledger/pkg/domain"
	"github.com/ledgerhouse/bankledger/pkg/ledger"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	deps := initializer.InitializeDependencies(cfg)
	svc := deps.Ledger

	seed(svc)
	printReport(svc)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		repl(svc)
	}
}

// seed replays the canonical demo script: a central account funded with
// initial capital, a personal account with a cash deposit, and two transfers
// from the central account.
func seed(svc *ledger.Service) {
	central := svc.CreateAccount("CENTRAL BANK ACCOUNT", "2018-02-16", "-")
	if _, err := svc.Deposit(central.Number, 10_000_000, "Treasury Plc", "initial funds"); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}

	personal := svc.CreateAccount("ANDREW SMITH", "1975-02-15", "psst secret")
	if _, err := svc.Deposit(personal.Number, 50_000, "ATM03223", "cash deposit"); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}

	if _, err := central.TransferTo(account.PartyOf(personal), 150_000, "payroll advance"); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}
	if _, err := svc.Transfer(account.PartyKey(central.Number), account.PartyOf(personal), 150_000, "expense reimbursement"); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}
}

func printReport(svc *ledger.Service) {
	header := color.New(color.FgCyan, color.Bold)
	number := color.New(color.FgYellow)
	amount := color.New(color.FgGreen, color.Bold)

	header.Println("CURRENT LEDGER")
	for _, row := range svc.CurrentLedger() {
		number.Printf("  %s", row.AccountNumber)
		fmt.Printf("  %-24s", row.Owner)
		amount.Printf("%14d\n", row.Balance)
	}
	header.Print("TOTAL CAPITAL ")
	amount.Printf("%d\n", svc.TotalCapital())
}

const replHelp = `commands:
  create <owner> <birthdate> <secret>   register a new account
  deposit <number> <amount> [remark]    unilateral deposit
  transfer <from> <to> <amount> [rem]   move funds between accounts
  find <name-or-number>                 look up accounts
  history <number>                      print an account's history
  remove <name-or-number>               delete an account
  ledger                                print the ledger report
  capital                               print total capital
  quit`

// repl reads commands from stdin until EOF or quit. Errors are printed, never
// fatal.
func repl(svc *ledger.Service) {
	fmt.Println(replHelp)
	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.FgMagenta, color.Bold)
	for {
		prompt.Print("bank> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		if err := dispatch(svc, args[0], args[1:]); err != nil {
			reportError(err)
		}
	}
}

func dispatch(svc *ledger.Service, cmd string, args []string) error {
	switch cmd {
	case "create":
		if len(args) < 3 {
			return errors.New("usage: create <owner> <birthdate> <secret>")
		}
		owner := strings.Join(args[:len(args)-2], " ")
		a := svc.CreateAccount(owner, args[len(args)-2], args[len(args)-1])
		fmt.Printf("created %s for %s\n", a.Number, a.OwnerName)
	case "deposit":
		if len(args) < 2 {
			return errors.New("usage: deposit <number> <amount> [remark]")
		}
		amt, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		txID, err := svc.Deposit(args[0], amt, "cash desk", strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		fmt.Println("transaction", txID)
	case "transfer":
		if len(args) < 3 {
			return errors.New("usage: transfer <from> <to> <amount> [remark]")
		}
		amt, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		txID, err := svc.Transfer(account.PartyKey(args[0]), account.PartyKey(args[1]), amt, strings.Join(args[3:], " "))
		if err != nil {
			return err
		}
		fmt.Println("transaction", txID)
	case "find":
		if len(args) < 1 {
			return errors.New("usage: find <name-or-number>")
		}
		search := strings.Join(args, " ")
		if a, err := svc.FindByNumber(search); err == nil {
			fmt.Printf("%s  %s  balance %d\n", a.Number, a.OwnerName, a.Balance)
			return nil
		}
		matches := svc.FindByName(search)
		if len(matches) == 0 {
			fmt.Println("no accounts found")
			return nil
		}
		for _, a := range matches {
			fmt.Printf("%s  %s  balance %d\n", a.Number, a.OwnerName, a.Balance)
		}
	case "history":
		if len(args) < 1 {
			return errors.New("usage: history <number>")
		}
		a, err := svc.FindByNumber(args[0])
		if err != nil {
			return err
		}
		for _, e := range a.History {
			fmt.Printf("%s  %12d  after %12d  %s  %s  %s\n",
				e.When.Format("2006-01-02 15:04:05"), e.Amount, e.BalanceAfter,
				e.TransactionID, e.Counterparty, e.Remark)
		}
	case "remove":
		if len(args) < 1 {
			return errors.New("usage: remove <name-or-number>")
		}
		a, err := svc.Remove(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("removed %s (%s)\n", a.Number, a.OwnerName)
	case "ledger":
		printReport(svc)
	case "capital":
		fmt.Println(svc.TotalCapital())
	case "help":
		fmt.Println(replHelp)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

// reportError prints structured detail for the ambiguous-name case so the
// user can retry with an account number.
func reportError(err error) {
	var ambiguous *domain.AmbiguousNameError
	if errors.As(err, &ambiguous) {
		color.Red("%v", err)
		for _, c := range ambiguous.Candidates {
			fmt.Printf("  %s  %s  born %s\n", c.Number, c.Name, c.BirthDate)
		}
		return
	}
	color.Red("%v", err)
}
