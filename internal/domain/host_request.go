package domain

import "time"

const (
	HostRequestPending  = "pending"
	HostRequestApproved = "approved"
	HostRequestRejected = "rejected"
)

// HostCourseRequest is submitted by instructors on the public site. The
// dashboard only reviews it.
type HostCourseRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	CourseTitle string    `json:"course_title"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type HostRequestStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ActiveInput is the body of a status toggle on every other resource.
type ActiveInput struct {
	Active *bool `json:"active" validate:"required"`
}
