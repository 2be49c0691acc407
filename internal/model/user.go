package model

// UserRole distinguishes the two account types
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

// User is the backend account behind a session. Section, course and
// year level are only populated for students.
type User struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role"`
	Section   string   `json:"section,omitempty"`
	Course    string   `json:"course,omitempty"`
	YearLevel int      `json:"year_level,omitempty"`
}
