package timetable

import "github.com/edumanage/portal/core/school"

// Activity types of a timetable entry. Only lessons carry teacher, class,
// subject and room.
const (
	ActivityLesson = "Lesson"
	ActivityBreak  = "Break"
	ActivityLunch  = "Lunch"
	ActivityGames  = "Games"
)

var (
	ActivityTypes = []string{ActivityLesson, ActivityBreak, ActivityLunch, ActivityGames}

	// Weekdays is the school week in display order.
	Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

type (
	// EntryClass and EntryTeacher are the populated references the listing
	// endpoint embeds in lesson entries.
	EntryClass struct {
		ID        string `json:"_id"`
		ClassName string `json:"className"`
	}

	EntryTeacher struct {
		ID            string               `json:"_id"`
		CommonDetails school.CommonDetails `json:"commonDetails"`
	}

	// Entry is one slot of the fetched timetable. TimeSlot holds the
	// half-open [start, end) range as "HH:MM" strings.
	Entry struct {
		ID           string        `json:"_id"`
		Term         string        `json:"term"`
		Week         string        `json:"week"`
		Day          string        `json:"day"`
		ActivityType string        `json:"activityType"`
		TimeSlot     [2]string     `json:"timeSlot"`
		Subject      string        `json:"subject,omitempty"`
		Class        *EntryClass   `json:"classId,omitempty"`
		Teacher      *EntryTeacher `json:"teacherId,omitempty"`
		Room         string        `json:"room,omitempty"`
	}

	// NewEntry is the creation payload. The class reference goes out under
	// "classes"; the backend names it differently on read and write.
	NewEntry struct {
		Term         string    `json:"term" validate:"required,oneof=1 2 3"`
		Week         string    `json:"week" validate:"required"`
		Day          string    `json:"day" validate:"required"`
		ActivityType string    `json:"activityType" validate:"required,oneof=Lesson Break Lunch Games"`
		TimeSlot     [2]string `json:"timeSlot"`
		TeacherID    string    `json:"teacherId,omitempty"`
		ClassID      string    `json:"classes,omitempty"`
		Subject      string    `json:"subject,omitempty"`
		Room         string    `json:"room,omitempty"`
	}
)

func (e Entry) Start() string { return e.TimeSlot[0] }
func (e Entry) End() string   { return e.TimeSlot[1] }

func (e Entry) IsLesson() bool { return e.ActivityType == ActivityLesson }
