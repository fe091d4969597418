package domain

type City struct {
	Base
	StateID string `json:"state_id" gorm:"column:state_id;size:60;not null;index"`
	Name    string `json:"name" gorm:"column:name;size:128;not null"`
}

func (City) TableName() string { return "cities" }

func NewCity() *City {
	return &City{Base: newBase()}
}

func (*City) Kind() Kind { return KindCity }

func (c *City) Clone() Entity {
	cp := *c
	return &cp
}
