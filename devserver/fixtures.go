package devserver

import (
	"log"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/messaging"
	"github.com/edumanage/portal/core/school"
	"github.com/edumanage/portal/core/timetable"
)

// Fixture credentials, one account per portal.
const (
	AdminEmail   = "admin@school.test"
	TeacherEmail = "jane@school.test"
	ParentEmail  = "paul@school.test"
	DemoPassword = "Password1!"
)

type (
	account struct {
		ID           string
		FirstName    string
		LastName     string
		Email        string
		Role         string
		PasswordHash []byte
	}

	// DB is the stub's in-memory dataset. It only exists so the client has a
	// faithful contract to talk to; nothing here survives a restart.
	DB struct {
		mu sync.RWMutex

		accounts []account
		students []school.Student
		teachers []school.Teacher
		parents  []school.Parent
		classes  []school.Class
		subjects []school.Subject

		invoices []finance.Invoice
		payments []finance.Payment

		marks       []academics.Mark
		assignments []academics.Assignment

		entries    []timetable.Entry
		activities []activity.Activity
		enrolled   map[string][]string // parent id -> activity ids

		messages []messaging.Message

		seq int
	}
)

func (db *DB) nextID(prefix string) string {
	db.seq++
	return prefix + strconv.Itoa(db.seq)
}

func hash(pwd string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("devserver: hashing fixture password: %v", err)
	}
	return h
}

// Seed populates the dataset every portal screen can be demoed against.
func Seed() *DB {
	db := &DB{enrolled: make(map[string][]string)}
	pwd := hash(DemoPassword)

	db.accounts = []account{
		{ID: "u-admin", FirstName: "Alice", LastName: "Admin", Email: AdminEmail, Role: "admin", PasswordHash: pwd},
		{ID: "u-teacher", FirstName: "Jane", LastName: "Mwangi", Email: TeacherEmail, Role: "teacher", PasswordHash: pwd},
		{ID: "u-parent", FirstName: "Paul", LastName: "Otieno", Email: ParentEmail, Role: "parent", PasswordHash: pwd},
	}

	db.subjects = []school.Subject{
		{ID: "sub1", Name: "Mathematics", Code: "mat"},
		{ID: "sub2", Name: "English", Code: "eng"},
		{ID: "sub3", Name: "Science", Code: "sci"},
	}
	db.classes = []school.Class{
		{ID: "c1", ClassName: "Class 1", Subjects: []string{"sub1", "sub2"}},
		{ID: "c2", ClassName: "Class 2", Subjects: []string{"sub1", "sub2", "sub3"}},
	}
	db.students = []school.Student{
		{ID: "s1", FirstName: "Brian", LastName: "Otieno", Gender: "Male", Age: 10, RegNo: "REG001", CurrentClass: "c1", Balance: 150},
		{ID: "s2", FirstName: "Mary", LastName: "Wanjiku", Gender: "Female", Age: 11, RegNo: "REG002", CurrentClass: "c1"},
		{ID: "s3", FirstName: "Kevin", LastName: "Kiprop", Gender: "Male", Age: 12, RegNo: "REG003", CurrentClass: "c2"},
	}
	db.teachers = []school.Teacher{
		{ID: "t1", CommonDetails: school.CommonDetails{FirstName: "Jane", LastName: "Mwangi", Email: TeacherEmail, Phone: "0700000001"}, Position: "Teacher"},
	}
	db.parents = []school.Parent{
		{ID: "u-parent", CommonDetails: school.CommonDetails{FirstName: "Paul", LastName: "Otieno", Email: ParentEmail, Phone: "0700000002"}, RegNo: "REG001", ChildID: "s1"},
	}

	db.invoices = []finance.Invoice{
		{
			ID: "inv1", StudentID: "s1", Term: "1", Year: time.Now().Year(), IssuedDate: "2026-01-10",
			Items:     []finance.InvoiceItem{{Description: "Tuition", Amount: 200}, {Description: "Transport", Amount: 50}},
			TotalFees: 250, OutstandingBalance: 150, Status: finance.StatusIssued,
			Payments: []finance.Payment{{ID: "p1", StudentID: "s1", Amount: 100, Method: finance.MethodCash, Reference: "ref-001"}},
		},
	}
	db.payments = []finance.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, Method: finance.MethodCash, Reference: "ref-001"},
	}

	db.marks = []academics.Mark{
		{ID: "m1", StudentID: "s1", SubjectID: "sub1", Term: "1", Year: time.Now().Year(), ExamType: academics.ExamMidterm, Score: 72},
	}

	db.entries = []timetable.Entry{
		{
			ID: "tt1", Term: "1", Week: "1", Day: "Monday", ActivityType: timetable.ActivityLesson,
			TimeSlot: [2]string{"08:00", "09:00"}, Subject: "Mathematics", Room: "R1",
			Class:   &timetable.EntryClass{ID: "c1", ClassName: "Class 1"},
			Teacher: &timetable.EntryTeacher{ID: "t1", CommonDetails: school.CommonDetails{FirstName: "Jane", LastName: "Mwangi"}},
		},
		{ID: "tt2", Term: "1", Week: "1", Day: "Monday", ActivityType: timetable.ActivityBreak, TimeSlot: [2]string{"09:00", "09:30"}},
	}

	db.activities = []activity.Activity{
		{ID: "act1", Name: "Chess Club", Description: "Weekly chess", Category: "Clubs", Schedule: activity.Schedule{Day: "Friday", Time: "04:00 PM"}},
	}

	db.messages = []messaging.Message{
		{ID: "msg1", SenderID: "u-parent", ReceiverID: "u-teacher", Body: "How is Brian doing?", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "msg2", SenderID: "u-teacher", ReceiverID: "u-parent", Body: "Very well, see the midterm marks.", CreatedAt: time.Now().Add(-50 * time.Minute)},
	}

	db.seq = 100
	return db
}
