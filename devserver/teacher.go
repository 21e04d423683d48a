package devserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/school"
	"github.com/edumanage/portal/core/timetable"
)

func (s *server) registerTeacherAPI(g *echo.Group) {
	g.GET("/get-classes", s.getTeacherClasses)
	g.GET("/get-class/:id/subjects", s.getClassSubjects)
	g.GET("/:classId/students", s.getClassStudents)
	g.GET("/:classId/marks", s.getMarks)
	g.GET("/get-marks/:classId", s.getClassMarks)
	g.POST("/submit-marks", s.submitMarks)
	g.GET("/generate-report/:studentId/:term/:examType/:classId", s.generateReport)
	g.GET("/students-analytics", s.getStudentsAnalytics)
	g.POST("/create-assignment", s.createAssignment)

	g.GET("/timetable", s.getTimetable)
	g.POST("/create", s.createTimetableEntry)

	g.GET("/activities", s.getActivities)
	g.POST("/activities", s.createActivity)
}

// getTeacherClasses answers with 201 like the real backend does; so do the
// other teacher reads marked below.
func (s *server) getTeacherClasses(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.classes)
}

func (s *server) getClassSubjects(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, c := range db.classes {
		if c.ID == ctx.Param("id") {
			subjects := make([]school.Subject, 0, len(c.Subjects))
			for _, sid := range c.Subjects {
				for _, sub := range db.subjects {
					if sub.ID == sid {
						subjects = append(subjects, sub)
					}
				}
			}
			return ctx.JSON(http.StatusOK, subjects)
		}
	}
	return errHTTPNotFound
}

func (s *server) getClassStudents(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	students := make([]school.Student, 0)
	for _, st := range db.students {
		if st.CurrentClass == ctx.Param("classId") {
			students = append(students, st)
		}
	}
	return ctx.JSON(http.StatusCreated, students)
}

func (s *server) getMarks(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	year, _ := strconv.Atoi(ctx.QueryParam("year"))
	subjectID, term, examType := ctx.QueryParam("subjectId"), ctx.QueryParam("term"), ctx.QueryParam("examType")

	marks := make([]academics.Mark, 0)
	for _, m := range db.marks {
		if m.SubjectID == subjectID && m.Term == term && m.Year == year && m.ExamType == examType &&
			db.studentInClassLocked(m.StudentID, ctx.Param("classId")) {
			marks = append(marks, m)
		}
	}
	return ctx.JSON(http.StatusOK, marks)
}

func (s *server) getClassMarks(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	term, examType := ctx.QueryParam("term"), ctx.QueryParam("examType")
	marks := make([]academics.Mark, 0)
	for _, m := range db.marks {
		if m.Term == term && m.ExamType == examType &&
			db.studentInClassLocked(m.StudentID, ctx.Param("classId")) {
			marks = append(marks, m)
		}
	}
	return ctx.JSON(http.StatusOK, marks)
}

func (s *server) submitMarks(ctx echo.Context) error {
	var sheet academics.MarkSheet
	if err := ctx.Bind(&sheet); err != nil {
		return errors.Wrap(err, "binding mark sheet")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()

	// one mark per (student, subject, term, year, examType); resubmission updates
	for _, sm := range sheet.Marks {
		updated := false
		for i, m := range db.marks {
			if m.StudentID == sm.StudentID && m.SubjectID == sheet.SubjectID &&
				m.Term == sheet.Term && m.Year == sheet.Year && m.ExamType == sheet.ExamType {
				db.marks[i].Score = sm.Score
				updated = true
				break
			}
		}
		if !updated {
			db.marks = append(db.marks, academics.Mark{
				ID: db.nextID("m"), StudentID: sm.StudentID, SubjectID: sheet.SubjectID,
				Term: sheet.Term, Year: sheet.Year, ExamType: sheet.ExamType, Score: sm.Score,
			})
		}
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Marks submitted"})
}

func (s *server) generateReport(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	var student *school.Student
	for i, st := range db.students {
		if st.ID == ctx.Param("studentId") {
			student = &db.students[i]
			break
		}
	}
	if student == nil {
		return errHTTPNotFound
	}

	report := academics.ReportCard{
		Details: academics.ReportDetails{
			StudentID: student.ID,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			Gender:    student.Gender,
			ClassName: db.classNameLocked(student.CurrentClass),
		},
	}
	for _, m := range db.marks {
		if m.StudentID == student.ID && m.Term == ctx.Param("term") && m.ExamType == ctx.Param("examType") {
			report.Subjects = append(report.Subjects, academics.ReportSubject{
				Name:  db.subjectNameLocked(m.SubjectID),
				Score: m.Score,
				Grade: grade(m.Score),
			})
		}
	}
	return ctx.JSON(http.StatusOK, report)
}

func grade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "E"
	}
}

func (s *server) getStudentsAnalytics(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.marks)
}

func (s *server) createAssignment(ctx echo.Context) error {
	var na academics.NewAssignment
	if err := ctx.Bind(&na); err != nil {
		return errors.Wrap(err, "binding assignment")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.assignments = append(db.assignments, academics.Assignment{
		ID: db.nextID("a"), Title: na.Title, Description: na.Description,
		Content: na.Content, DueDate: na.DueDate, MaxPoints: na.MaxPoints, ClassID: na.ClassID,
	})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Assignment created"})
}

// Timetable

func (s *server) getTimetable(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.entries)
}

func (s *server) createTimetableEntry(ctx echo.Context) error {
	var ne timetable.NewEntry
	if err := ctx.Bind(&ne); err != nil {
		return errors.Wrap(err, "binding timetable entry")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()

	entry := timetable.Entry{
		ID: db.nextID("tt"), Term: ne.Term, Week: ne.Week, Day: ne.Day,
		ActivityType: ne.ActivityType, TimeSlot: ne.TimeSlot, Subject: ne.Subject, Room: ne.Room,
	}
	if ne.ClassID != "" {
		for _, c := range db.classes {
			if c.ID == ne.ClassID {
				entry.Class = &timetable.EntryClass{ID: c.ID, ClassName: c.ClassName}
			}
		}
	}
	if ne.TeacherID != "" {
		for _, t := range db.teachers {
			if t.ID == ne.TeacherID {
				entry.Teacher = &timetable.EntryTeacher{ID: t.ID, CommonDetails: t.CommonDetails}
			}
		}
	}
	db.entries = append(db.entries, entry)
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Timetable entry created"})
}

// Activities

func (s *server) getActivities(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.activities)
}

func (s *server) createActivity(ctx echo.Context) error {
	var na activity.NewActivity
	if err := ctx.Bind(&na); err != nil {
		return errors.Wrap(err, "binding activity")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.activities = append(db.activities, activity.Activity{
		ID: db.nextID("act"), Name: na.Name, Description: na.Description,
		Category: na.Category, Schedule: na.Schedule,
	})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Activity created"})
}

func (db *DB) studentInClassLocked(studentID, classID string) bool {
	for _, st := range db.students {
		if st.ID == studentID {
			return st.CurrentClass == classID
		}
	}
	return false
}

func (db *DB) subjectNameLocked(id string) string {
	for _, sub := range db.subjects {
		if sub.ID == id {
			return sub.Name
		}
	}
	return school.UnknownClassLabel
}
