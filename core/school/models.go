package school

import "strings"

// Join fallbacks: a foreign key that cannot be resolved against the loaded
// collection renders these instead of failing.
const (
	UnknownClassLabel   = "N/A"
	UnknownSubjectLabel = "N/A"
	UnknownStudentLabel = "Unknown"
)

type (
	// Student as served by the backend. Balance is server-computed.
	Student struct {
		ID           string  `json:"_id"`
		FirstName    string  `json:"firstName"`
		MiddleName   string  `json:"middleName"`
		LastName     string  `json:"lastName"`
		Gender       string  `json:"gender"`
		Age          int     `json:"age"`
		RegNo        string  `json:"registrationNumber"`
		CurrentClass string  `json:"currentClass"` // Class id
		Balance      float64 `json:"balance"`
	}

	// ClassGroup is the shape of the student listing endpoint: students come
	// grouped by class and are flattened client-side.
	ClassGroup struct {
		ClassName string    `json:"className"`
		Students  []Student `json:"students"`
	}

	// CommonDetails is the nested identity block shared by teachers and parents.
	CommonDetails struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}

	Teacher struct {
		ID            string        `json:"_id"`
		CommonDetails CommonDetails `json:"commonDetails"`
		Position      string        `json:"position"`
	}

	Parent struct {
		ID            string        `json:"_id"`
		CommonDetails CommonDetails `json:"commonDetails"`
		RegNo         string        `json:"regNo"`    // linked student registration number
		ChildID       string        `json:"childId"`  // linked student id
	}

	Class struct {
		ID        string   `json:"_id"`
		ClassName string   `json:"className"`
		Subjects  []string `json:"subjects"` // ordered Subject ids
	}

	Subject struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
		Code string `json:"code"`
	}
)

func (s Student) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.FirstName, s.MiddleName, s.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (d CommonDetails) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Registration payloads. Students and teachers register via multipart forms,
// parents via JSON; that split mirrors the backend's expectations.

type NewStudent struct {
	FirstName    string `json:"firstName" validate:"required"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName" validate:"required"`
	CurrentClass string `json:"currentClass" validate:"required"`
	Gender       string `json:"gender" validate:"required"`
	Age          int    `json:"age" validate:"required,gt=0"`
}

type NewTeacher struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Position  string `json:"position" validate:"required"`
}

type NewParent struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	RegNo           string `json:"regNo" validate:"required"`
	Role            string `json:"role"`
}

type NewClass struct {
	ClassName string   `json:"className" validate:"required"`
	Subjects  []string `json:"subjects" validate:"required,min=1"`
}

type NewSubject struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}
