package model

// Activity is an extracurricular offering as exposed to clients.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Activities maps activity name to its record.
type Activities map[string]*Activity

type Enrollment struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}
