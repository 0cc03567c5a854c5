package model

import "time"

// Condition is one of the nine experimental arms a participant is assigned
// to at signup. The tag strings are part of the exported dataset and must
// not change between waves.
type Condition string

const (
	ConditionControl   Condition = "Control"
	ConditionRemAI     Condition = "Rem:AI:NoRef"
	ConditionRemAIRef  Condition = "Rem:AI:Ref"
	ConditionRemCom    Condition = "Rem:Com:NoRef"
	ConditionRemComRef Condition = "Rem:Com:Ref"
	ConditionObjAI     Condition = "Obj:AI:NoRef"
	ConditionObjAIRef  Condition = "Obj:AI:Ref"
	ConditionObjCom    Condition = "Obj:Com:NoRef"
	ConditionObjComRef Condition = "Obj:Com:Ref"
)

// Conditions lists all arms in assignment order.
var Conditions = []Condition{
	ConditionControl,
	ConditionRemAI,
	ConditionRemAIRef,
	ConditionRemCom,
	ConditionRemComRef,
	ConditionObjAI,
	ConditionObjAIRef,
	ConditionObjCom,
	ConditionObjComRef,
}

func (c Condition) IsRemoval() bool {
	switch c {
	case ConditionRemAI, ConditionRemAIRef, ConditionRemCom, ConditionRemComRef:
		return true
	}
	return false
}

func (c Condition) IsObjection() bool {
	switch c {
	case ConditionObjAI, ConditionObjAIRef, ConditionObjCom, ConditionObjComRef:
		return true
	}
	return false
}

func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// Participant is a survey respondent. Token is the bearer credential handed
// out at signup; there is no account system behind it.
type Participant struct {
	Id        string    `db:"id" json:"id"`
	Token     string    `db:"token" json:"-"`
	Alias     string    `db:"alias" json:"alias"`
	Avatar    string    `db:"avatar" json:"avatar"`
	Interest  string    `db:"interest" json:"interest"`
	Condition Condition `db:"cond" json:"condition"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// DisplayActor is how the participant appears on their own comments and
// replies in the rendered feed.
func (p *Participant) DisplayActor() *Actor {
	return &Actor{
		Id:       p.Id,
		Username: p.Alias,
		Profile: &Profile{
			Name:    p.Alias,
			Picture: p.Avatar,
		},
	}
}
