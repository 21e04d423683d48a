package main

import (
	"context"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/school"
)

func (cli *commandLine) listStudents() error {
	if err := cli.students.Refresh(context.Background()); err != nil {
		return err
	}
	for _, g := range cli.students.Groups() {
		fmt.Printf("%s:\n", g.ClassName)
		for _, st := range g.Students {
			fmt.Printf("  %-8s %-25s %-8s age %-3d %s  balance %.2f\n",
				st.ID, st.FullName(), st.Gender, st.Age, st.RegNo, st.Balance)
		}
	}
	return nil
}

func (cli *commandLine) listTeachers() error {
	if err := cli.teachers.Refresh(context.Background()); err != nil {
		return err
	}
	for _, t := range cli.teachers.Teachers() {
		fmt.Printf("%-8s %-25s %-25s %s\n",
			t.ID, t.CommonDetails.FullName(), t.CommonDetails.Email, t.Position)
	}
	return nil
}

func (cli *commandLine) listParents() error {
	if err := cli.parents.Refresh(context.Background()); err != nil {
		return err
	}
	for _, p := range cli.parents.Parents() {
		fmt.Printf("%-8s %-25s %-25s child %s\n",
			p.ID, p.CommonDetails.FullName(), p.CommonDetails.Email, p.ChildID)
	}
	return nil
}

func (cli *commandLine) listClasses() error {
	if err := cli.classes.Refresh(context.Background()); err != nil {
		return err
	}
	for _, c := range cli.classes.Classes() {
		fmt.Printf("%-8s %-15s subjects: %s\n", c.ID, c.ClassName, strings.Join(c.Subjects, ", "))
	}
	return nil
}

func (cli *commandLine) listSubjects() error {
	if err := cli.subjects.Refresh(context.Background()); err != nil {
		return err
	}
	for _, sub := range cli.subjects.Subjects() {
		fmt.Printf("%-8s %-20s %s\n", sub.ID, sub.Name, sub.Code)
	}
	return nil
}

func (cli *commandLine) registerStudent(args []string) error {
	cmd := newFlagSet("register-student")
	first := cmd.String("first", "", "First name")
	middle := cmd.String("middle", "", "Middle name")
	last := cmd.String("last", "", "Last name")
	class := cmd.String("class", "", "Class id")
	gender := cmd.String("gender", "", "Male or Female")
	age := cmd.Int("age", 0, "Age in years")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.school.RegisterStudent(context.Background(), school.NewStudent{
		FirstName:    *first,
		MiddleName:   *middle,
		LastName:     *last,
		CurrentClass: *class,
		Gender:       *gender,
		Age:          *age,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Student registered")
	return nil
}

func (cli *commandLine) registerTeacher(args []string) error {
	cmd := newFlagSet("register-teacher")
	first := cmd.String("first", "", "First name")
	last := cmd.String("last", "", "Last name")
	email := cmd.String("email", "", "Email. The password will be prompted next.")
	phone := cmd.String("phone", "", "Phone number")
	position := cmd.String("position", "Teacher", "Position")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	err = cli.school.RegisterTeacher(context.Background(), school.NewTeacher{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Phone:     *phone,
		Password:  string(pwd),
		Position:  *position,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Teacher registered")
	return nil
}

func (cli *commandLine) registerParent(args []string) error {
	cmd := newFlagSet("register-parent")
	first := cmd.String("first", "", "First name")
	last := cmd.String("last", "", "Last name")
	email := cmd.String("email", "", "Email. The password will be prompted next.")
	phone := cmd.String("phone", "", "Phone number")
	regNo := cmd.String("regno", "", "The child's registration number")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	err = cli.school.RegisterParent(context.Background(), school.NewParent{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Phone:           *phone,
		Password:        string(pwd),
		ConfirmPassword: string(pwd),
		RegNo:           *regNo,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Parent registered")
	return nil
}

func (cli *commandLine) addClass(args []string) error {
	cmd := newFlagSet("add-class")
	name := cmd.String("name", "", "Class name")
	subjects := cmd.String("subjects", "", "Comma-separated subject ids")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.school.AddClass(context.Background(), school.NewClass{
		ClassName: *name,
		Subjects:  splitList(*subjects),
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Class added")
	return nil
}

func (cli *commandLine) addSubject(args []string) error {
	cmd := newFlagSet("add-subject")
	name := cmd.String("name", "", "Subject name")
	code := cmd.String("code", "", "Subject code")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.school.AddSubject(context.Background(), school.NewSubject{Name: *name, Code: *code})
	if err != nil {
		return err
	}
	cli.notifier.Success("Subject added")
	return nil
}

func (cli *commandLine) deleteRecord(kind string, args []string) error {
	cmd := newFlagSet(kind)
	id := cmd.String("id", "", "The record id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	ctx := context.Background()
	var err error
	switch kind {
	case "delete-student":
		err = cli.school.DeleteStudent(ctx, *id)
	case "delete-teacher":
		err = cli.school.DeleteTeacher(ctx, *id)
	case "delete-parent":
		err = cli.school.DeleteParent(ctx, *id)
	case "delete-class":
		err = cli.school.DeleteClass(ctx, *id)
	case "delete-subject":
		err = cli.school.DeleteSubject(ctx, *id)
	}
	if err != nil {
		return err
	}
	cli.notifier.Success("Deleted " + *id)
	return nil
}

func (cli *commandLine) generateInvoice(args []string, wholeClass bool) error {
	cmd := newFlagSet("invoice")
	student := cmd.String("student", "", "Student id (single invoice)")
	class := cmd.String("class", "", "Class id (class-wide invoice)")
	term := cmd.String("term", "1", "Term (1, 2 or 3)")
	year := cmd.Int("year", time.Now().Year(), "Year")
	items := cmd.String("items", "", "Items as desc=amount,desc=amount")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	inv := finance.NewInvoice{
		StudentID:  *student,
		ClassID:    *class,
		Term:       *term,
		Year:       *year,
		IssuedDate: time.Now().Format("2006-01-02"),
		Items:      parseItems(*items),
	}
	ctx := context.Background()
	var err error
	if wholeClass {
		err = cli.finance.GenerateClassInvoice(ctx, inv)
	} else {
		err = cli.finance.GenerateInvoice(ctx, inv)
	}
	if err != nil {
		return err
	}
	cli.notifier.Success("Invoice generated")
	return nil
}

func (cli *commandLine) recordPayment(args []string) error {
	cmd := newFlagSet("pay")
	student := cmd.String("student", "", "Student id")
	amount := cmd.Float64("amount", 0, "Amount paid")
	method := cmd.String("method", finance.MethodCash, "One of: "+strings.Join(finance.Methods, ", "))
	reference := cmd.String("ref", "", "Payment reference (generated when empty)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.finance.RecordPayment(context.Background(), finance.NewPayment{
		StudentID: *student,
		Amount:    *amount,
		Method:    *method,
		Reference: *reference,
		Date:      time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Payment recorded")
	return nil
}

func (cli *commandLine) listTransactions(args []string) error {
	cmd := newFlagSet("transactions")
	student := cmd.String("student", "", "Student id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *student == "" {
		cmd.Usage()
		return errHelp
	}

	payments, err := cli.finance.Transactions(context.Background(), *student)
	if err != nil {
		return err
	}
	for _, p := range payments {
		fmt.Printf("%-8s %10.2f %-15s %s\n", p.ID, p.Amount, p.Method, p.Reference)
	}
	fmt.Printf("total paid: %.2f\n", finance.PaidTotal(payments))
	return nil
}

func (cli *commandLine) listBalances() error {
	balances, err := cli.finance.CustomerBalances(context.Background())
	if err != nil {
		return err
	}
	for _, b := range balances {
		fmt.Printf("%-8s %-25s %10.2f\n", b.StudentID, b.Name, b.Balance)
	}
	return nil
}

func (cli *commandLine) showStats() error {
	ctx := context.Background()
	students, err := cli.academics.StudentStats(ctx)
	if err != nil {
		return err
	}
	teachers, err := cli.academics.TeacherStats(ctx)
	if err != nil {
		return err
	}
	users, err := cli.academics.TotalUsers(ctx)
	if err != nil {
		return err
	}
	dist, err := cli.academics.ClassDistribution(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("students: %d (%s %.1f%%)\n", students.TotalStudents, students.TrendDirection, students.TrendPercentage)
	fmt.Printf("teachers: %d (%s %.1f%%)\n", teachers.TotalTeachers, teachers.TrendDirection, teachers.TrendPercentage)
	fmt.Printf("users:    %d (%s %.1f%%)\n", users.TotalUsers, users.TrendDirection, users.TrendPercentage)
	for _, d := range dist {
		fmt.Printf("%-15s total %-3d M %-3d F %-3d\n", d.ClassName, d.TotalStudents, d.MaleCount, d.FemaleCount)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseItems(s string) []finance.InvoiceItem {
	items := make([]finance.InvoiceItem, 0)
	for _, part := range splitList(s) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		var amount float64
		fmt.Sscanf(kv[1], "%f", &amount)
		items = append(items, finance.InvoiceItem{Description: kv[0], Amount: amount})
	}
	return items
}
