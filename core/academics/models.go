package academics

// Exam types accepted by the backend. At most one mark exists per
// (student, subject, term, year, examType); the backend enforces it.
const (
	ExamFinal      = "Final"
	ExamMidterm    = "Midterm"
	ExamQuiz       = "Quiz"
	ExamAssignment = "Assignment"
)

var ExamTypes = []string{ExamFinal, ExamMidterm, ExamQuiz, ExamAssignment}

type (
	Mark struct {
		ID        string  `json:"_id"`
		StudentID string  `json:"student"`
		SubjectID string  `json:"subject"`
		Term      string  `json:"term"`
		Year      int     `json:"year"`
		ExamType  string  `json:"examType"`
		Score     float64 `json:"marks"`
	}

	// StudentMark is one row of a mark submission: the student and the score
	// entered for the scope selected on the page.
	StudentMark struct {
		StudentID string  `json:"studentId" validate:"required"`
		Score     float64 `json:"marks" validate:"gte=0,lte=100"`
	}

	MarkSheet struct {
		ClassID   string        `json:"classId" validate:"required"`
		SubjectID string        `json:"subjectId" validate:"required"`
		Term      string        `json:"term" validate:"required,oneof=1 2 3"`
		Year      int           `json:"year" validate:"required"`
		ExamType  string        `json:"examType" validate:"required,oneof=Final Midterm Quiz Assignment"`
		Marks     []StudentMark `json:"marksData" validate:"required,min=1,dive"`
	}

	// MarkQuery scopes a mark retrieval.
	MarkQuery struct {
		SubjectID string
		Term      string
		Year      int
		ExamType  string
	}

	NewAssignment struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		Content     string `json:"content" validate:"required"`
		DueDate     string `json:"dueDate" validate:"required"`
		MaxPoints   int    `json:"maxPoints" validate:"required,gt=0"`
		ClassID     string `json:"classId" validate:"required"`
	}

	Assignment struct {
		ID          string `json:"_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		DueDate     string `json:"dueDate"`
		MaxPoints   int    `json:"maxPoints"`
		ClassID     string `json:"classId"`
	}

	// ReportCard is the generated report payload rendered by the report page.
	ReportCard struct {
		Details  ReportDetails   `json:"details"`
		Subjects []ReportSubject `json:"subjects"`
	}

	ReportDetails struct {
		StudentID string `json:"studentId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Gender    string `json:"gender"`
		ClassName string `json:"className"`
	}

	ReportSubject struct {
		Name  string  `json:"name"`
		Score float64 `json:"marks"`
		Grade string  `json:"grade"`
	}
)
