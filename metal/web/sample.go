package web

// SampleStats are the placeholder learning statistics shown on the dashboard
// until the backend reports real ones.
func SampleStats() []Stat {
	return []Stat{
		{Label: "Learning Streaks", Value: "12 days", Icon: "activity", Colour: "neon-cyan"},
		{Label: "XP Gained", Value: "4,780", Icon: "bar-chart", Colour: "neon-magenta"},
		{Label: "Time Invested", Value: "27 hours", Icon: "bar-chart", Colour: "neon-green"},
	}
}

func SampleAchievements() []Achievement {
	return []Achievement{
		{Name: "First Step", Description: "Complete your first mission", Unlocked: true},
		{Name: "Consistency", Description: "Maintain a 7-day streak", Unlocked: true},
		{Name: "Quick Learner", Description: "Complete 10 missions", Unlocked: true},
		{Name: "Expert", Description: "Reach Level 10", Unlocked: false},
		{Name: "Mastery", Description: "Complete your dream roadmap", Unlocked: false},
	}
}
