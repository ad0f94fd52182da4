package domain

// Entity is anything the dashboard edits through a generic resource screen.
type Entity interface {
	EntityID() string
}

func (c Course) EntityID() string            { return c.ID }
func (l Lecture) EntityID() string           { return l.ID }
func (n Note) EntityID() string              { return n.ID }
func (f FlashCard) EntityID() string         { return f.ID }
func (q Question) EntityID() string          { return q.ID }
func (u User) EntityID() string              { return u.ID }
func (c Country) EntityID() string           { return c.ID }
func (o Offer) EntityID() string             { return o.ID }
func (e Event) EntityID() string             { return e.ID }
func (c Category) EntityID() string          { return c.ID }
func (s SubCategory) EntityID() string       { return s.ID }
func (s Specialty) EntityID() string         { return s.ID }
func (h HostCourseRequest) EntityID() string { return h.ID }
