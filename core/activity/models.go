package activity

type (
	// Schedule is an activity's weekly slot.
	Schedule struct {
		Day  string `json:"day" validate:"required"`
		Time string `json:"time" validate:"required"`
	}

	// Activity is an extracurricular offering parents enroll students into.
	Activity struct {
		ID          string   `json:"_id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Schedule    Schedule `json:"schedule"`
	}

	NewActivity struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		Category    string   `json:"category" validate:"required"`
		Schedule    Schedule `json:"schedule" validate:"required"`
	}
)
