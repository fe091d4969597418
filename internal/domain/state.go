package domain

type State struct {
	Base
	Name string `json:"name" gorm:"column:name;size:128;not null"`
}

func (State) TableName() string { return "states" }

func NewState() *State {
	return &State{Base: newBase()}
}

func (*State) Kind() Kind { return KindState }

func (s *State) Clone() Entity {
	c := *s
	return &c
}
