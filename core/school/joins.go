package school

// Derived joins: resolve a foreign key against an already-fetched collection.
// Linear scans are fine at classroom scale. Both helpers tolerate nil or
// not-yet-fetched collections and fall back to a label instead of failing.

// ClassNameByID resolves a student's currentClass id to a display name.
func ClassNameByID(classes []Class, id string) string {
	for _, c := range classes {
		if c.ID == id {
			return c.ClassName
		}
	}
	return UnknownClassLabel
}

// StudentNameByID resolves a payment's or mark's student id to a display name.
func StudentNameByID(students []Student, id string) string {
	for _, s := range students {
		if s.ID == id {
			return s.FullName()
		}
	}
	return UnknownStudentLabel
}

// SubjectNameByID resolves a subject id to a display name.
func SubjectNameByID(subjects []Subject, id string) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return UnknownSubjectLabel
}
