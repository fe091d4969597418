package domain

type Review struct {
	Base
	PlaceID string `json:"place_id" gorm:"column:place_id;size:60;not null;index"`
	UserID  string `json:"user_id" gorm:"column:user_id;size:60;not null;index"`
	Text    string `json:"text" gorm:"column:text;size:1024;not null"`
}

func (Review) TableName() string { return "reviews" }

func NewReview() *Review {
	return &Review{Base: newBase()}
}

func (*Review) Kind() Kind { return KindReview }

func (r *Review) Clone() Entity {
	c := *r
	return &c
}
