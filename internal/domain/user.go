package domain

// DefaultAvatar is the placeholder avatar reference assigned at login.
const DefaultAvatar = "person.crop.circle.fill"

// User is the single mock-auth session record. Absence means logged out.
type User struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Avatar  string `json:"avatar"`
}

func (u User) FullName() string { return u.Name + " " + u.Surname }
