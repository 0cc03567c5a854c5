package model

// Actor is a scripted persona appearing in the shared feed content. Actors
// are seeded reference data: read-only from the feed engine's perspective.
type Actor struct {
	Id       string   `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Role     string   `db:"role" json:"-"`
	Profile  *Profile `json:"profile"`
}

type Profile struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Picture  string `json:"picture"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

const DeletedUsername = "[deleted]"

// DeletedActor returns the sentinel actor shown in place of the author of a
// removed comment. A fresh value is returned every call so callers can't
// accidentally share mutations through it.
func DeletedActor() *Actor {
	return &Actor{
		Id:       "deleted",
		Username: DeletedUsername,
		Profile: &Profile{
			Name:    DeletedUsername,
			Color:   "#777777",
			Picture: "deleted.png",
			Bio:     "",
		},
	}
}

func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	cloned := *a
	if a.Profile != nil {
		profile := *a.Profile
		cloned.Profile = &profile
	}
	return &cloned
}

// ToRecord converts the actor into a plain record for the response layer.
// The profile is flattened into an ordinary map so the template layer never
// sees a typed sub-object.
func (a *Actor) ToRecord() map[string]interface{} {
	if a == nil {
		return nil
	}
	record := map[string]interface{}{
		"id":       a.Id,
		"username": a.Username,
	}
	if a.Profile != nil {
		record["profile"] = map[string]interface{}{
			"name":     a.Profile.Name,
			"color":    a.Profile.Color,
			"picture":  a.Profile.Picture,
			"location": a.Profile.Location,
			"bio":      a.Profile.Bio,
		}
	}
	return record
}
