package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds at most one document per user; the unique index on "user" enforces it.
type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user" json:"-"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Website    string             `bson:"website,omitempty" json:"website,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio        string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	Skills     []string           `bson:"skills,omitempty" json:"skills"`
	Social     *Social            `bson:"social,omitempty" json:"social,omitempty"`
	Experience []Experience       `bson:"experience" json:"experience"`
	Hobbies    []Hobby            `bson:"hobbies" json:"hobbies"`
	Date       time.Time          `bson:"date" json:"date"`
}

type Social struct {
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Experience entries are kept most-recent-first.
type Experience struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        time.Time          `bson:"from" json:"from"`
	To          *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Hobby entries are kept most-recent-first.
type Hobby struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}

// ProfileUpdate is a partial profile: nil fields are left untouched.
type ProfileUpdate struct {
	Company  *string
	Website  *string
	Location *string
	Bio      *string
	Status   *string
	Skills   []string
	Social   SocialUpdate
}

type SocialUpdate struct {
	YouTube   *string
	Twitter   *string
	Facebook  *string
	LinkedIn  *string
	Instagram *string
}

// Apply copies every supplied field of u onto p.
func (u *ProfileUpdate) Apply(p *Profile) {
	setIf(&p.Company, u.Company)
	setIf(&p.Website, u.Website)
	setIf(&p.Location, u.Location)
	setIf(&p.Bio, u.Bio)
	setIf(&p.Status, u.Status)
	if u.Skills != nil {
		p.Skills = append([]string(nil), u.Skills...)
	}
	if u.Social.IsEmpty() {
		return
	}
	if p.Social == nil {
		p.Social = &Social{}
	}
	setIf(&p.Social.YouTube, u.Social.YouTube)
	setIf(&p.Social.Twitter, u.Social.Twitter)
	setIf(&p.Social.Facebook, u.Social.Facebook)
	setIf(&p.Social.LinkedIn, u.Social.LinkedIn)
	setIf(&p.Social.Instagram, u.Social.Instagram)
}

func (s SocialUpdate) IsEmpty() bool {
	return s.YouTube == nil && s.Twitter == nil && s.Facebook == nil && s.LinkedIn == nil && s.Instagram == nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
