package repository

// SeedActivities returns a fresh copy of the startup dataset.
func SeedActivities() []*Activity {
	return []*Activity{
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team for practice and inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "james@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Develop basketball skills and participate in local tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"sarah@mergington.edu", "david@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Explore theater arts, acting, and stage production",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emily@mergington.edu", "alex@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Express creativity through painting, drawing, and sculpture",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"grace@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"william@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts beyond the classroom",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"liam@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
