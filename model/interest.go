package model

// Interest is a seeded content category. Each participant picks one at
// signup and their scripted 3-video set is drawn from it.
type Interest struct {
	Id   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
