package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/messaging"
	"github.com/edumanage/portal/core/school"
	"github.com/edumanage/portal/core/session"
	"github.com/edumanage/portal/core/timetable"
	"github.com/edumanage/portal/services/paystack"
	"github.com/edumanage/portal/services/push"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

type commandLine struct {
	session   *session.Service
	school    *school.Service
	finance   *finance.Service
	academics *academics.Service
	timetable *timetable.Service
	activity  *activity.Service
	messaging *messaging.Service
	paystack  *paystacksvc.Service

	// listings go through the stores: refresh, then read the cache
	students     *school.StudentStore
	teachers     *school.TeacherStore
	parents      *school.ParentStore
	parentRecord *school.SingleParentStore
	classes      *school.ClassStore
	subjects     *school.SubjectStore
	invoices     *finance.InvoiceStore
	activities   *activity.Store

	feed     *pushsvc.Feed
	push     *pushsvc.Subscriber
	notifier core.Notifier
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                      - log in (password prompted)")
	fmt.Println("  logout                                  - log out")
	fmt.Println("  whoami                                  - show the logged in account")
	fmt.Println()
	fmt.Println("Admin portal:")
	fmt.Println("  students|teachers|parents|classes|subjects          - list records")
	fmt.Println("  register-student|register-teacher|register-parent   - add a record")
	fmt.Println("  add-class|add-subject                               - add a record")
	fmt.Println("  delete-student|delete-teacher|delete-parent|delete-class|delete-subject -id ID")
	fmt.Println("  invoice|class-invoice                   - generate invoices")
	fmt.Println("  pay                                     - record a payment")
	fmt.Println("  transactions -student ID                - list a student's payments")
	fmt.Println("  balances                                - customer balances report")
	fmt.Println("  stats                                   - dashboard stats")
	fmt.Println()
	fmt.Println("Teacher portal:")
	fmt.Println("  timetable                               - render the weekly grid")
	fmt.Println("  add-slot                                - add a timetable entry")
	fmt.Println("  marks -class ID -subject ID -term T -year Y -exam TYPE")
	fmt.Println("  submit-marks                            - enter marks for a class")
	fmt.Println("  report -student ID -term T -exam TYPE -class ID")
	fmt.Println("  activities|add-activity|assignment")
	fmt.Println()
	fmt.Println("Parent portal:")
	fmt.Println("  balance|statements|checkout|child-activities|enroll -id ID|assignments")
	fmt.Println()
	fmt.Println("Messaging:")
	fmt.Println("  conversations                           - list who you can message")
	fmt.Println("  chat -with ID                           - show a conversation")
	fmt.Println("  send -to ID -message TEXT               - send a message")
	fmt.Println("  notifications                           - follow payment notifications")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	rest := args[2:]

	switch args[1] {
	case "login":
		return cli.login(rest)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()

	case "students":
		return cli.listStudents()
	case "teachers":
		return cli.listTeachers()
	case "parents":
		return cli.listParents()
	case "classes":
		return cli.listClasses()
	case "subjects":
		return cli.listSubjects()
	case "register-student":
		return cli.registerStudent(rest)
	case "register-teacher":
		return cli.registerTeacher(rest)
	case "register-parent":
		return cli.registerParent(rest)
	case "add-class":
		return cli.addClass(rest)
	case "add-subject":
		return cli.addSubject(rest)
	case "delete-student", "delete-teacher", "delete-parent", "delete-class", "delete-subject":
		return cli.deleteRecord(args[1], rest)
	case "invoice":
		return cli.generateInvoice(rest, false)
	case "class-invoice":
		return cli.generateInvoice(rest, true)
	case "pay":
		return cli.recordPayment(rest)
	case "transactions":
		return cli.listTransactions(rest)
	case "balances":
		return cli.listBalances()
	case "stats":
		return cli.showStats()

	case "timetable":
		return cli.showTimetable()
	case "add-slot":
		return cli.addTimetableSlot(rest)
	case "marks":
		return cli.listMarks(rest)
	case "submit-marks":
		return cli.submitMarks(rest)
	case "report":
		return cli.showReport(rest)
	case "activities":
		return cli.listActivities()
	case "add-activity":
		return cli.addActivity(rest)
	case "assignment":
		return cli.createAssignment(rest)

	case "balance":
		return cli.showBalance()
	case "statements":
		return cli.showStatements()
	case "checkout":
		return cli.checkout()
	case "child-activities":
		return cli.listChildActivities()
	case "enroll":
		return cli.enroll(rest)
	case "assignments":
		return cli.listAssignments()

	case "conversations":
		return cli.listConversations()
	case "chat":
		return cli.showChat(rest)
	case "send":
		return cli.sendMessage(rest)
	case "notifications":
		return cli.followNotifications()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(args []string) error {
	cmd := newFlagSet("login")
	email := cmd.String("email", "", "The account email. The password will be prompted next.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		cmd.Usage()
		return errHelp
	}

	claims, err := cli.session.Login(context.Background(), session.Credentials{
		Email:    *email,
		Password: string(pwd),
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Logged in as " + claims.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.session.Logout(context.Background()); err != nil {
		return err
	}
	cli.notifier.Success("Logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", claims.UserID, claims.Role)
	return nil
}

// currentParent resolves the logged in parent's record; the parent portal
// commands all start from it. The record is cached in its store, so a failed
// refresh still serves the last known one.
func (cli *commandLine) currentParent(ctx context.Context) (school.Parent, error) {
	claims, err := cli.session.Current()
	if err != nil {
		return school.Parent{}, err
	}
	if err := cli.parentRecord.Refresh(ctx, claims.UserID); err != nil {
		return school.Parent{}, err
	}
	p := cli.parentRecord.Parent()
	if p == nil {
		return school.Parent{}, errors.New("parent record unavailable")
	}
	return *p, nil
}
