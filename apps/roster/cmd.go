package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/trezcool/edcentre/core"
	"github.com/trezcool/edcentre/core/person"
)

var (
	errHelp = errors.New("help provided")

	menuRule    = strings.Repeat("=", 43)
	roleChoices = map[string]person.Role{
		"1": person.RoleTeacher,
		"2": person.RoleAdmin,
		"3": person.RoleStudent,
	}
)

type commandLine struct {
	in          io.Reader
	out         io.Writer
	interactive bool // stdin & stdout are a terminal

	conf *core.Config
	svc  *person.Service
	log  core.Logger

	con *console
}

func (cli *commandLine) printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  roster [-no-color] - manage the education centre roster interactively")
	fs.SetOutput(cli.out)
	fs.PrintDefaults()
}

func (cli *commandLine) run(args []string) error {
	fs := flag.NewFlagSet("roster", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	noColor := fs.Bool("no-color", false, "Disable coloured output.")

	if len(args) > 1 {
		if err := fs.Parse(args[1:]); err != nil {
			cli.printUsage(fs)
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if fs.NArg() > 0 {
			cli.printUsage(fs)
			return errHelp
		}
	}

	cli.con = newConsole(cli.in, cli.out, cli.interactive && !*noColor)
	if err := cli.loop(); err != nil && !core.IsShutdown(err) {
		return err
	}
	return nil
}

// loop serves the main menu until the user exits or the input is closed.
func (cli *commandLine) loop() error {
	for {
		if cli.interactive {
			cli.con.Clear()
		}
		cli.printMenu()

		choice, err := cli.con.Prompt("Please select an option (1-6): ")
		if err != nil {
			return err
		}
		choice = core.CleanString(choice)
		cli.log.Debug("menu choice", map[string]interface{}{"choice": choice})

		switch choice {
		case "1":
			err = cli.addRecord()
		case "2":
			err = cli.viewAll()
		case "3":
			err = cli.viewByGroup()
		case "4":
			err = cli.editRecord()
		case "5":
			err = cli.deleteRecord()
		case "6":
			return nil
		default:
			cli.con.Warn("Invalid option. Press Enter to try again.")
			err = cli.pause("")
		}
		if err != nil {
			return err
		}
	}
}

func (cli *commandLine) printMenu() {
	cli.con.Title(menuRule)
	cli.con.Title(centre(strings.ToUpper(cli.conf.AppName), len(menuRule)))
	cli.con.Title(menuRule)
	cli.con.Println("1. Add New Data")
	cli.con.Println("2. View All Existing Data")
	cli.con.Println("3. View Data by User Group")
	cli.con.Println("4. Edit Existing Data")
	cli.con.Println("5. Delete Existing Data")
	cli.con.Println("6. Exit")
	cli.con.Title(menuRule)
}

func (cli *commandLine) pause(msg string) error {
	_, err := cli.con.Prompt(msg)
	return err
}

func (cli *commandLine) display(rec person.Record) {
	for _, line := range person.RenderDisplay(rec) {
		cli.con.Println(line)
	}
}

func (cli *commandLine) addRecord() error {
	cli.con.Println("\n--- Add New Record ---")
	cli.con.Println("Select Role: 1. Teacher | 2. Admin | 3. Student")
	choice, err := cli.con.Prompt("Choice: ")
	if err != nil {
		return err
	}
	role, ok := roleChoices[core.CleanString(choice)]
	if !ok {
		cli.con.Warn("Invalid role. Press Enter.")
		return cli.pause("")
	}

	rec, err := person.New(role)
	if err != nil {
		return err
	}
	if err := person.RunGuidedInput(rec, cli.con); err != nil {
		return err
	}
	if err := cli.svc.Append(rec); err != nil {
		if !cli.reportValidation(err) {
			return err
		}
		return cli.pause("Press Enter to return...")
	}
	cli.con.Success("\nRecord added successfully!")
	return cli.pause("Press Enter to return...")
}

func (cli *commandLine) viewAll() error {
	cli.con.Println("\n--- All Records ---")
	var count int
	for rec := range cli.svc.ListAll() {
		cli.display(rec)
		count++
	}
	if count == 0 {
		cli.con.Println("No records found.")
	}
	return cli.pause("\nPress Enter to return...")
}

func (cli *commandLine) viewByGroup() error {
	cli.con.Println("\n--- View by Role ---")
	filter, err := cli.con.Prompt("Enter role (Teacher / Admin / Student): ")
	if err != nil {
		return err
	}
	var found bool
	for rec := range cli.svc.FilterByRole(filter) {
		cli.display(rec)
		found = true
	}
	if !found {
		cli.con.Println("No records found for this role.")
	}
	return cli.pause("\nPress Enter to return...")
}

func (cli *commandLine) editRecord() error {
	cli.con.Println("\n--- Edit Record ---")
	rec, err := cli.findPerson()
	if err != nil {
		return err
	}
	if rec != nil {
		cli.con.Println("\n[ Current Details ]")
		cli.display(rec)

		cli.con.Println("\n>>> UPDATING MODE (Press Enter to keep existing values) <<<")
		if err := person.RunGuidedEdit(rec, cli.con); err != nil {
			return err
		}
		if err := cli.svc.Update(rec); err != nil {
			if !cli.reportValidation(err) {
				return err
			}
		} else {
			cli.con.Success("\nRecord updated successfully!")
		}
	}
	return cli.pause("Press Enter to return...")
}

func (cli *commandLine) deleteRecord() error {
	cli.con.Println("\n--- Delete Record ---")
	rec, err := cli.findPerson()
	if err != nil {
		return err
	}
	if rec != nil {
		confirm, err := cli.con.Prompt(fmt.Sprintf("Are you sure you want to delete %s? (y/n): ", rec.Base().Name))
		if err != nil {
			return err
		}
		if strings.EqualFold(confirm, "y") {
			if err := cli.svc.Remove(rec); err != nil {
				return err
			}
			cli.con.Success("Record deleted.")
		} else {
			cli.con.Println("Cancelled.")
		}
	}
	return cli.pause("Press Enter to return...")
}

// findPerson asks for a full name and returns the first matching record, or nil when there is none.
func (cli *commandLine) findPerson() (person.Record, error) {
	name, err := cli.con.Prompt("Enter the full name of the person: ")
	if err != nil {
		return nil, err
	}
	rec, err := cli.svc.FindByName(name)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, person.ErrNotFound) {
		return nil, err
	}

	cli.con.Warn("Person not found.")
	if suggestions := cli.svc.Suggest(name); len(suggestions) > 0 {
		cli.con.Println("Did you mean: " + strings.Join(suggestions, ", ") + "?")
	}
	return nil, nil
}

// reportValidation prints the field errors of a core.ValidationError and reports whether `err` was one.
func (cli *commandLine) reportValidation(err error) bool {
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	cli.log.Warn("record rejected", err)
	for _, fld := range vErr.Fields {
		cli.con.Warn(">>> Error: " + fld.Error)
	}
	return true
}

func centre(s string, width int) string {
	if pad := (width - len(s)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
