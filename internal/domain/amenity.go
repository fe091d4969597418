package domain

type Amenity struct {
	Base
	Name string `json:"name" gorm:"column:name;size:128;not null"`
}

func (Amenity) TableName() string { return "amenities" }

func NewAmenity() *Amenity {
	return &Amenity{Base: newBase()}
}

func (*Amenity) Kind() Kind { return KindAmenity }

func (a *Amenity) Clone() Entity {
	c := *a
	return &c
}
