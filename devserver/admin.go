package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/school"
)

func (s *server) registerAdminAPI(g *echo.Group) {
	g.GET("/get-students", s.getStudents)
	g.POST("/register-student", s.registerStudent)
	g.DELETE("/delete-student/:id", s.deleteStudent)

	g.GET("/get-teachers", s.getTeachers)
	g.POST("/register-teacher", s.registerTeacher)
	g.DELETE("/delete-teacher/:id", s.deleteTeacher)

	g.GET("/get-parents", s.getParents)
	g.POST("/register-parent", s.registerParent)
	g.DELETE("/delete-parent/:id", s.deleteParent)

	g.GET("/get-classes", s.getClasses)
	g.POST("/add-class", s.addClass)
	g.DELETE("/delete-class/:id", s.deleteClass)

	g.GET("/get-subjects", s.getSubjects)
	g.POST("/add-subject", s.addSubject)
	g.DELETE("/delete-subject/:id", s.deleteSubject)

	g.POST("/generate-invoice", s.generateInvoice)
	g.POST("/generate-class-invoice", s.generateClassInvoice)
	g.GET("/invoices/:id", s.getInvoice)
	g.DELETE("/invoices/:id", s.deleteInvoice)

	g.POST("/payments", s.recordPayment)
	g.GET("/payments/:id", s.getPayment)
	g.DELETE("/payments/:id", s.deletePayment)
	g.GET("/transactions/:studentId", s.getTransactions)
	g.GET("/customer-balances", s.getCustomerBalances)

	g.GET("/student-stats", s.getStudentStats)
	g.GET("/teacher-stats", s.getTeacherStats)
	g.GET("/total-users", s.getTotalUsers)
	g.GET("/class-distribution", s.getClassDistribution)
}

// Students

// getStudents answers with 201 like the real backend does.
func (s *server) getStudents(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	byClass := make(map[string][]school.Student)
	for _, st := range db.students {
		name := db.classNameLocked(st.CurrentClass)
		byClass[name] = append(byClass[name], st)
	}
	groups := make([]school.ClassGroup, 0, len(byClass))
	for _, c := range db.classes {
		if students, ok := byClass[c.ClassName]; ok {
			groups = append(groups, school.ClassGroup{ClassName: c.ClassName, Students: students})
		}
	}
	return ctx.JSON(http.StatusCreated, groups)
}

func (s *server) registerStudent(ctx echo.Context) error {
	age, _ := strconv.Atoi(ctx.FormValue("age"))
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.students = append(db.students, school.Student{
		ID:           db.nextID("s"),
		FirstName:    ctx.FormValue("firstName"),
		MiddleName:   ctx.FormValue("middleName"),
		LastName:     ctx.FormValue("lastName"),
		Gender:       ctx.FormValue("gender"),
		Age:          age,
		RegNo:        "REG" + db.nextID(""),
		CurrentClass: ctx.FormValue("currentClass"),
	})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Student registered successfully"})
}

func (s *server) deleteStudent(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, st := range db.students {
		if st.ID == ctx.Param("id") {
			db.students = append(db.students[:i], db.students[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Student deleted"})
		}
	}
	return errHTTPNotFound
}

// Teachers

func (s *server) getTeachers(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusOK, db.teachers)
}

func (s *server) registerTeacher(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.nextID("t")
	db.teachers = append(db.teachers, school.Teacher{
		ID: id,
		CommonDetails: school.CommonDetails{
			FirstName: ctx.FormValue("firstName"),
			LastName:  ctx.FormValue("lastName"),
			Email:     ctx.FormValue("email"),
			Phone:     ctx.FormValue("phone"),
		},
		Position: ctx.FormValue("position"),
	})
	db.accounts = append(db.accounts, account{
		ID: id, FirstName: ctx.FormValue("firstName"), LastName: ctx.FormValue("lastName"),
		Email: ctx.FormValue("email"), Role: "teacher", PasswordHash: hash(ctx.FormValue("password")),
	})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Teacher registered successfully"})
}

func (s *server) deleteTeacher(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, t := range db.teachers {
		if t.ID == ctx.Param("id") {
			db.teachers = append(db.teachers[:i], db.teachers[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Teacher deleted"})
		}
	}
	return errHTTPNotFound
}

// Parents

func (s *server) getParents(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusOK, db.parents)
}

func (s *server) registerParent(ctx echo.Context) error {
	var np school.NewParent
	if err := ctx.Bind(&np); err != nil {
		return errors.Wrap(err, "binding parent")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()

	var childID string
	for _, st := range db.students {
		if st.RegNo == np.RegNo {
			childID = st.ID
			break
		}
	}
	id := db.nextID("u")
	db.parents = append(db.parents, school.Parent{
		ID: id,
		CommonDetails: school.CommonDetails{
			FirstName: np.FirstName, LastName: np.LastName, Email: np.Email, Phone: np.Phone,
		},
		RegNo:   np.RegNo,
		ChildID: childID,
	})
	db.accounts = append(db.accounts, account{
		ID: id, FirstName: np.FirstName, LastName: np.LastName,
		Email: np.Email, Role: "parent", PasswordHash: hash(np.Password),
	})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Parent registered successfully"})
}

func (s *server) deleteParent(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.parents {
		if p.ID == ctx.Param("id") {
			db.parents = append(db.parents[:i], db.parents[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Parent deleted"})
		}
	}
	return errHTTPNotFound
}

// Classes and subjects

// getClasses answers with 201 like the real backend does.
func (s *server) getClasses(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.classes)
}

func (s *server) addClass(ctx echo.Context) error {
	var nc school.NewClass
	if err := ctx.Bind(&nc); err != nil {
		return errors.Wrap(err, "binding class")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.classes = append(db.classes, school.Class{ID: db.nextID("c"), ClassName: nc.ClassName, Subjects: nc.Subjects})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Class added"})
}

func (s *server) deleteClass(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, c := range db.classes {
		if c.ID == ctx.Param("id") {
			db.classes = append(db.classes[:i], db.classes[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Class deleted"})
		}
	}
	return errHTTPNotFound
}

func (s *server) getSubjects(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusOK, db.subjects)
}

func (s *server) addSubject(ctx echo.Context) error {
	var ns school.NewSubject
	if err := ctx.Bind(&ns); err != nil {
		return errors.Wrap(err, "binding subject")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.subjects = append(db.subjects, school.Subject{ID: db.nextID("sub"), Name: ns.Name, Code: ns.Code})
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Subject added"})
}

func (s *server) deleteSubject(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, sub := range db.subjects {
		if sub.ID == ctx.Param("id") {
			db.subjects = append(db.subjects[:i], db.subjects[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Subject deleted"})
		}
	}
	return errHTTPNotFound
}

// Invoices and payments

func (s *server) generateInvoice(ctx echo.Context) error {
	var ni finance.NewInvoice
	if err := ctx.Bind(&ni); err != nil {
		return errors.Wrap(err, "binding invoice")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	db.issueInvoiceLocked(ni, ni.StudentID)
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Invoice generated"})
}

func (s *server) generateClassInvoice(ctx echo.Context) error {
	var ni finance.NewInvoice
	if err := ctx.Bind(&ni); err != nil {
		return errors.Wrap(err, "binding invoice")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, st := range db.students {
		if st.CurrentClass == ni.ClassID {
			db.issueInvoiceLocked(ni, st.ID)
		}
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Invoices generated"})
}

func (db *DB) issueInvoiceLocked(ni finance.NewInvoice, studentID string) {
	var total float64
	for _, item := range ni.Items {
		total += item.Amount
	}
	db.invoices = append(db.invoices, finance.Invoice{
		ID: db.nextID("inv"), StudentID: studentID, Term: ni.Term, Year: ni.Year,
		IssuedDate: ni.IssuedDate, Items: ni.Items, TotalFees: total,
		OutstandingBalance: total, Status: finance.StatusIssued,
	})
	for i := range db.students {
		if db.students[i].ID == studentID {
			db.students[i].Balance += total
		}
	}
}

func (s *server) getInvoice(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, inv := range db.invoices {
		if inv.ID == ctx.Param("id") {
			return ctx.JSON(http.StatusOK, inv)
		}
	}
	return errHTTPNotFound
}

func (s *server) deleteInvoice(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, inv := range db.invoices {
		if inv.ID == ctx.Param("id") {
			db.invoices = append(db.invoices[:i], db.invoices[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Invoice deleted"})
		}
	}
	return errHTTPNotFound
}

func (s *server) recordPayment(ctx echo.Context) error {
	var np finance.NewPayment
	if err := ctx.Bind(&np); err != nil {
		return errors.Wrap(err, "binding payment")
	}
	db := s.opts.DB
	db.mu.Lock()
	p := db.applyPaymentLocked(np)
	db.mu.Unlock()

	s.hub.broadcastPayment(p)
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Payment recorded"})
}

// applyPaymentLocked settles the payment against the student's oldest open
// invoice and recomputes balances, the way the real backend does.
func (db *DB) applyPaymentLocked(np finance.NewPayment) finance.Payment {
	p := finance.Payment{
		ID: db.nextID("p"), StudentID: np.StudentID, Amount: np.Amount,
		Method: np.Method, Reference: np.Reference, Date: time.Now(),
	}
	db.payments = append(db.payments, p)

	for i := range db.invoices {
		inv := &db.invoices[i]
		if inv.StudentID != np.StudentID || inv.Status == finance.StatusPaid {
			continue
		}
		inv.Payments = append(inv.Payments, p)
		inv.OutstandingBalance -= p.Amount
		if inv.OutstandingBalance <= 0 {
			inv.OutstandingBalance = 0
			inv.Status = finance.StatusPaid
		}
		break
	}
	for i := range db.students {
		if db.students[i].ID == np.StudentID {
			db.students[i].Balance -= p.Amount
			if db.students[i].Balance < 0 {
				db.students[i].Balance = 0
			}
		}
	}
	return p
}

func (s *server) getPayment(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, p := range db.payments {
		if p.ID == ctx.Param("id") {
			return ctx.JSON(http.StatusOK, p)
		}
	}
	return errHTTPNotFound
}

func (s *server) deletePayment(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.payments {
		if p.ID == ctx.Param("id") {
			db.payments = append(db.payments[:i], db.payments[i+1:]...)
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Payment deleted"})
		}
	}
	return errHTTPNotFound
}

func (s *server) getTransactions(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	payments := make([]finance.Payment, 0)
	for _, p := range db.payments {
		if p.StudentID == ctx.Param("studentId") {
			payments = append(payments, p)
		}
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (s *server) getCustomerBalances(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	balances := make([]finance.CustomerBalance, 0, len(db.students))
	for _, st := range db.students {
		balances = append(balances, finance.CustomerBalance{
			StudentID: st.ID, Name: st.FullName(), Balance: st.Balance,
		})
	}
	return ctx.JSON(http.StatusOK, balances)
}

// Dashboard stats. The 201s are the backend's, not ours.

func (s *server) getStudentStats(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, academics.StudentStats{
		TotalStudents: len(db.students),
		Trend:         academics.Trend{TrendDirection: "up", TrendPercentage: 5},
	})
}

func (s *server) getTeacherStats(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, academics.TeacherStats{
		TotalTeachers: len(db.teachers),
		Trend:         academics.Trend{TrendDirection: "flat", TrendPercentage: 0},
	})
}

func (s *server) getTotalUsers(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, academics.UserStats{
		TotalUsers: len(db.accounts),
		Trend:      academics.Trend{TrendDirection: "up", TrendPercentage: 2},
	})
}

func (s *server) getClassDistribution(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	dist := make([]academics.ClassDistribution, 0, len(db.classes))
	for _, c := range db.classes {
		var d academics.ClassDistribution
		d.ClassName = c.ClassName
		for _, st := range db.students {
			if st.CurrentClass != c.ID {
				continue
			}
			d.TotalStudents++
			if st.Gender == "Male" {
				d.MaleCount++
			} else {
				d.FemaleCount++
			}
			d.Ages = append(d.Ages, st.Age)
		}
		dist = append(dist, d)
	}
	return ctx.JSON(http.StatusCreated, dist)
}

func (db *DB) classNameLocked(id string) string {
	for _, c := range db.classes {
		if c.ID == id {
			return c.ClassName
		}
	}
	return school.UnknownClassLabel
}
