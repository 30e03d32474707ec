package domain

import "time"

// UserStats are the running counters kept on a user document. They are
// updated by store-level atomic increments alongside task lifecycle
// transitions.
type UserStats struct {
	TasksCreated        int
	TasksCompleted      int
	TotalTimeTrackedSec int64
}

// TimeAllocation is the user's preferred daily split across life areas,
// in hours.
type TimeAllocation struct {
	WorkStudy     float64
	SocialFriends float64
	SocialPartner float64
	Entertainment float64
	Sleep         float64
}

// DefaultTimeAllocation is seeded for newly registered users.
var DefaultTimeAllocation = TimeAllocation{
	WorkStudy:     6,
	SocialFriends: 1.5,
	SocialPartner: 2,
	Entertainment: 8,
	Sleep:         8,
}

type User struct {
	ID          string
	Email       string
	DisplayName string
	Language    string
	Allocation  TimeAllocation
	Stats       UserStats
	CreatedAt   time.Time
}
