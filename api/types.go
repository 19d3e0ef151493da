package api

// User is the authenticated account returned by the backend.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CompanyID   string `json:"companyId"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"`
}

// Company is the tenant a user belongs to.
type Company struct {
	CompanyID          string `json:"companyId"`
	Name               string `json:"name"`
	SubscriptionStatus string `json:"subscriptionStatus"`
	CreatedAt          string `json:"createdAt"`
}

// LoginResponse is the payload of a successful authentication.
type LoginResponse struct {
	Token   string   `json:"token"`
	User    User     `json:"user"`
	Company *Company `json:"company"`
}

// Project is a company project that time entries are attributed to.
type Project struct {
	ProjectID string `json:"projectId"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// TimeRecord is a stored time entry as returned by the backend.
type TimeRecord struct {
	RecordID        string `json:"recordId"`
	CompanyID       string `json:"companyId"`
	UserID          string `json:"userId"`
	ProjectID       string `json:"projectId"`
	ActivityID      string `json:"activityId"`
	DurationMinutes int    `json:"durationMinutes"`
	Pomodoros       int    `json:"pomodoros"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// TodayStats aggregates the current day's completed work.
type TodayStats struct {
	Date               string `json:"date"`
	PomodorosCompleted int    `json:"pomodorosCompleted"`
	TotalWorkTime      int    `json:"totalWorkTime"`
	TotalMinutes       int    `json:"totalMinutes"`
	RecordsCount       int    `json:"recordsCount"`
}

// DayStats is one day's slice of the weekly aggregate.
type DayStats struct {
	Pomodoros int `json:"pomodoros"`
	TotalTime int `json:"totalTime"`
}

// WeekStats aggregates the current week, keyed by ISO date.
type WeekStats struct {
	WeekStart      string              `json:"weekStart"`
	WeekEnd        string              `json:"weekEnd"`
	DailyStats     map[string]DayStats `json:"dailyStats"`
	TotalPomodoros int                 `json:"totalPomodoros"`
	TotalTime      int                 `json:"totalTime"`
}

// ProjectStats aggregates completed work per project.
type ProjectStats struct {
	ProjectID    string `json:"projectId"`
	ProjectName  string `json:"projectName"`
	Color        string `json:"color"`
	TotalTime    int    `json:"totalTime"`
	TotalMinutes int    `json:"totalMinutes"`
	Pomodoros    int    `json:"pomodoros"`
}
