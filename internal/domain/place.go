package domain

type Place struct {
	Base
	CityID          string  `json:"city_id" gorm:"column:city_id;size:60;not null;index"`
	UserID          string  `json:"user_id" gorm:"column:user_id;size:60;not null;index"`
	Name            string  `json:"name" gorm:"column:name;size:128;not null"`
	Description     string  `json:"description" gorm:"column:description;size:1024"`
	NumberRooms     int     `json:"number_rooms" gorm:"column:number_rooms;not null"`
	NumberBathrooms int     `json:"number_bathrooms" gorm:"column:number_bathrooms;not null"`
	MaxGuest        int     `json:"max_guest" gorm:"column:max_guest;not null"`
	PriceByNight    int     `json:"price_by_night" gorm:"column:price_by_night;not null"`
	Latitude        float64 `json:"latitude" gorm:"column:latitude"`
	Longitude       float64 `json:"longitude" gorm:"column:longitude"`

	// Relational backend only; the file backend keeps links beside the place.
	Amenities []*Amenity `json:"-" gorm:"many2many:place_amenity"`
}

func (Place) TableName() string { return "places" }

func NewPlace() *Place {
	return &Place{Base: newBase()}
}

func (*Place) Kind() Kind { return KindPlace }

func (p *Place) Clone() Entity {
	c := *p
	c.Amenities = nil
	return &c
}
