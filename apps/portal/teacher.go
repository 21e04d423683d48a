package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/school"
	"github.com/edumanage/portal/core/timetable"
)

// showTimetable renders the weekly grid: rows are the time ranges discovered
// in the data, columns the school week.
func (cli *commandLine) showTimetable() error {
	entries, err := cli.timetable.Entries(context.Background())
	if err != nil {
		return err
	}
	grid := timetable.BuildGrid(entries)

	fmt.Printf("%-13s", "")
	for _, day := range grid.Days {
		fmt.Printf(" %-22s", day)
	}
	fmt.Println()
	for i, r := range grid.Ranges {
		fmt.Printf("%s-%s", r.Start, r.End)
		for _, day := range grid.Days {
			fmt.Printf(" %-22s", cellLabel(grid.Cell(day, i)))
		}
		fmt.Println()
	}
	return nil
}

func cellLabel(entries []timetable.Entry) string {
	if len(entries) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsLesson() {
			label := e.Subject
			if e.Class != nil {
				label += " (" + e.Class.ClassName + ")"
			}
			labels = append(labels, label)
		} else {
			labels = append(labels, e.ActivityType)
		}
	}
	return strings.Join(labels, " / ")
}

func (cli *commandLine) addTimetableSlot(args []string) error {
	cmd := newFlagSet("add-slot")
	term := cmd.String("term", "1", "Term (1, 2 or 3)")
	week := cmd.String("week", "1", "Week number")
	day := cmd.String("day", "", "Weekday, e.g. Monday")
	kind := cmd.String("type", timetable.ActivityLesson, "One of: "+strings.Join(timetable.ActivityTypes, ", "))
	from := cmd.String("from", "", "Start time HH:MM")
	to := cmd.String("to", "", "End time HH:MM")
	teacher := cmd.String("teacher", "", "Teacher id (lessons only)")
	class := cmd.String("class", "", "Class id (lessons only)")
	subject := cmd.String("subject", "", "Subject name (lessons only)")
	room := cmd.String("room", "", "Room (lessons only)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.timetable.Create(context.Background(), timetable.NewEntry{
		Term:         *term,
		Week:         *week,
		Day:          *day,
		ActivityType: *kind,
		TimeSlot:     [2]string{*from, *to},
		TeacherID:    *teacher,
		ClassID:      *class,
		Subject:      *subject,
		Room:         *room,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Timetable entry created")
	return nil
}

func (cli *commandLine) listMarks(args []string) error {
	cmd := newFlagSet("marks")
	class := cmd.String("class", "", "Class id")
	subject := cmd.String("subject", "", "Subject id")
	term := cmd.String("term", "1", "Term")
	year := cmd.Int("year", time.Now().Year(), "Year")
	exam := cmd.String("exam", academics.ExamMidterm, "One of: "+strings.Join(academics.ExamTypes, ", "))
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *class == "" || *subject == "" {
		cmd.Usage()
		return errHelp
	}

	ctx := context.Background()
	marks, err := cli.academics.Marks(ctx, *class, academics.MarkQuery{
		SubjectID: *subject,
		Term:      *term,
		Year:      *year,
		ExamType:  *exam,
	})
	if err != nil {
		return err
	}
	roster, err := cli.academics.ClassStudents(ctx, *class)
	if err != nil {
		return err
	}

	for _, line := range markLines(roster, marks) {
		fmt.Println(line)
	}
	return nil
}

// markLines renders one line per mark, then one per still-unmarked student.
// Marks for students outside the fetched roster keep the join's fallback name.
func markLines(roster []school.Student, marks []academics.Mark) []string {
	lines := make([]string, 0, len(roster)+len(marks))
	for _, m := range marks {
		lines = append(lines, fmt.Sprintf("%-25s %6.1f", school.StudentNameByID(roster, m.StudentID), m.Score))
	}
	for _, st := range academics.UnmarkedStudents(roster, marks) {
		lines = append(lines, fmt.Sprintf("%-25s (no mark)", st.FullName()))
	}
	return lines
}

// submitMarks reads one -score student=marks pair per student and submits the
// sheet in one go.
func (cli *commandLine) submitMarks(args []string) error {
	cmd := newFlagSet("submit-marks")
	class := cmd.String("class", "", "Class id")
	subject := cmd.String("subject", "", "Subject id")
	term := cmd.String("term", "1", "Term")
	year := cmd.Int("year", time.Now().Year(), "Year")
	exam := cmd.String("exam", academics.ExamMidterm, "Exam type")
	scores := cmd.String("scores", "", "Scores as studentId=marks,studentId=marks")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	var marks []academics.StudentMark
	for _, part := range splitList(*scores) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		score, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return errors.Wrapf(err, "bad score %q", part)
		}
		marks = append(marks, academics.StudentMark{StudentID: kv[0], Score: score})
	}

	err := cli.academics.SubmitMarks(context.Background(), academics.MarkSheet{
		ClassID:   *class,
		SubjectID: *subject,
		Term:      *term,
		Year:      *year,
		ExamType:  *exam,
		Marks:     marks,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Marks submitted")
	return nil
}

func (cli *commandLine) showReport(args []string) error {
	cmd := newFlagSet("report")
	student := cmd.String("student", "", "Student id")
	term := cmd.String("term", "1", "Term")
	exam := cmd.String("exam", academics.ExamMidterm, "Exam type")
	class := cmd.String("class", "", "Class id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *student == "" || *class == "" {
		cmd.Usage()
		return errHelp
	}

	report, err := cli.academics.GenerateReport(context.Background(), *student, *term, *exam, *class)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s, %s, %s\n", report.Details.FirstName, report.Details.LastName,
		report.Details.Gender, report.Details.ClassName)
	for _, sub := range report.Subjects {
		fmt.Printf("  %-20s %6.1f  %s\n", sub.Name, sub.Score, sub.Grade)
	}
	return nil
}

func (cli *commandLine) listActivities() error {
	if err := cli.activities.Refresh(context.Background()); err != nil {
		return err
	}
	printActivities(cli.activities.Activities())
	return nil
}

func printActivities(activities []activity.Activity) {
	for _, a := range activities {
		fmt.Printf("%-8s %-20s %-12s %s %s\n", a.ID, a.Name, a.Category, a.Schedule.Day, a.Schedule.Time)
	}
}

func (cli *commandLine) addActivity(args []string) error {
	cmd := newFlagSet("add-activity")
	name := cmd.String("name", "", "Activity name")
	desc := cmd.String("desc", "", "Description")
	category := cmd.String("category", "", "Category, e.g. Clubs")
	day := cmd.String("day", "", "Weekday")
	at := cmd.String("time", "", "Time, e.g. 04:00 PM")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.activity.Create(context.Background(), activity.NewActivity{
		Name:        *name,
		Description: *desc,
		Category:    *category,
		Schedule:    activity.Schedule{Day: *day, Time: *at},
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Activity created")
	return nil
}

func (cli *commandLine) createAssignment(args []string) error {
	cmd := newFlagSet("assignment")
	title := cmd.String("title", "", "Title")
	desc := cmd.String("desc", "", "Description")
	content := cmd.String("content", "", "Assignment body")
	due := cmd.String("due", "", "Due date YYYY-MM-DD")
	points := cmd.Int("points", 100, "Maximum points")
	class := cmd.String("class", "", "Class id")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	err := cli.academics.CreateAssignment(context.Background(), academics.NewAssignment{
		Title:       *title,
		Description: *desc,
		Content:     *content,
		DueDate:     *due,
		MaxPoints:   *points,
		ClassID:     *class,
	})
	if err != nil {
		return err
	}
	cli.notifier.Success("Assignment created")
	return nil
}
