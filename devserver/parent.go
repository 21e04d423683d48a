package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/school"
)

func (s *server) registerParentAPI(g *echo.Group) {
	g.GET("/parent/:id", s.getParent)
	g.GET("/balance/:id", s.getBalance)
	g.GET("/activities/:id", s.getChildActivities)
	g.GET("/assignments/:id", s.getChildAssignments)
	g.PUT("/activity/:id/enroll", s.enrollActivity)
	g.POST("/paystack/verify", s.verifyPaystack)
	g.GET("/:studentId", s.getStatements)
}

// getParent answers with 201 like the real backend does.
func (s *server) getParent(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.parentByIDLocked(ctx.Param("id"))
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (s *server) getBalance(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.parentByIDLocked(ctx.Param("id"))
	if !ok {
		return errHTTPNotFound
	}
	var balance float64
	for _, st := range db.students {
		if st.ID == p.ChildID {
			balance = st.Balance
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"balance": balance})
}

func (s *server) getStatements(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	invoices := make([]finance.Invoice, 0)
	for _, inv := range db.invoices {
		if inv.StudentID == ctx.Param("studentId") {
			invoices = append(invoices, inv)
		}
	}
	return ctx.JSON(http.StatusCreated, invoices)
}

func (s *server) getChildActivities(ctx echo.Context) error { // 201
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	return ctx.JSON(http.StatusCreated, db.activities)
}

func (s *server) getChildAssignments(ctx echo.Context) error {
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.parentByIDLocked(ctx.Param("id"))
	if !ok {
		return errHTTPNotFound
	}
	var classID string
	for _, st := range db.students {
		if st.ID == p.ChildID {
			classID = st.CurrentClass
		}
	}
	assignments := make([]academics.Assignment, 0)
	for _, a := range db.assignments {
		if a.ClassID == classID {
			assignments = append(assignments, a)
		}
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (s *server) enrollActivity(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()

	var act *activity.Activity
	for i := range db.activities {
		if db.activities[i].ID == ctx.Param("id") {
			act = &db.activities[i]
			break
		}
	}
	if act == nil {
		return errHTTPNotFound
	}
	db.enrolled[claims.UserID] = append(db.enrolled[claims.UserID], act.ID)
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Enrolled in " + act.Name})
}

// verifyPaystack confirms a checkout reference and records the resulting
// payment against the parent's child, then pushes a paymentReceived event.
func (s *server) verifyPaystack(ctx echo.Context) error {
	var payload struct {
		Reference string `json:"reference"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return errors.Wrap(err, "binding verification")
	}
	if payload.Reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing reference")
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	db := s.opts.DB
	db.mu.Lock()
	p, ok := db.parentByIDLocked(claims.UserID)
	if !ok {
		db.mu.Unlock()
		return errHTTPNotFound
	}
	var balance float64
	for _, st := range db.students {
		if st.ID == p.ChildID {
			balance = st.Balance
		}
	}
	paid := db.applyPaymentLocked(finance.NewPayment{
		StudentID: p.ChildID,
		Amount:    balance,
		Method:    finance.MethodMobileMoney,
		Reference: payload.Reference,
	})
	db.mu.Unlock()

	s.hub.broadcastPayment(paid)
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Payment verified"})
}

func (db *DB) parentByIDLocked(id string) (school.Parent, bool) {
	for _, p := range db.parents {
		if p.ID == id {
			return p, true
		}
	}
	return school.Parent{}, false
}
