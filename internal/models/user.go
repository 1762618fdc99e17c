package models

type GlobalRole string

const (
	RoleUser  GlobalRole = "user"
	RoleAdmin GlobalRole = "admin"
)

type UserProfile struct {
	Bio      *string `bson:"bio" json:"bio"`
	Location *string `bson:"location" json:"location"`
	Website  *string `bson:"website" json:"website"`

	TwitterHandle   *string `bson:"twitter_handle" json:"twitter_handle"`
	InstagramHandle *string `bson:"instagram_handle" json:"instagram_handle"`
	FacebookHandle  *string `bson:"facebook_handle" json:"facebook_handle"`
	LinkedinHandle  *string `bson:"linkedin_handle" json:"linkedin_handle"`

	Interests []string `bson:"interests" json:"interests"`
}

type User struct {
	ID        int64  `bson:"id" json:"id"`
	Username  string `bson:"username" json:"username" validate:"required"`
	FirstName string `bson:"first_name" json:"first_name" validate:"required"`
	LastName  string `bson:"last_name" json:"last_name" validate:"required"`

	Email       string  `bson:"email" json:"email" validate:"required,email"`
	PhoneNumber *string `bson:"phone_number" json:"phone_number"`

	Roles []GlobalRole `bson:"roles" json:"roles" validate:"dive,oneof=user admin"`

	Profile UserProfile `bson:"profile" json:"profile"`
}
