package schema

import (
	"errors"
	"regexp"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPostLength bounds post content, checked when a post is created or edited.
const MaxPostLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a document in the users collection. Email is the natural key and is
// used as the identity reference everywhere; no two users share an email.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Followers []string           `bson:"followers" json:"followers"`
	Following []string           `bson:"following" json:"following"`
}

// Post is a document in the posts collection. Author is a display-name
// snapshot taken at creation time, not a live reference.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author    string             `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Email     string             `bson:"email" json:"email"`
}

type SignupBody struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordBody struct {
	Email string `json:"email"`
}

type ResetPasswordBody struct {
	ID              string `json:"id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type PostBody struct {
	Content string `json:"content"`
}

func (b SignupBody) Validate() error {
	if b.Name == "" {
		return errors.New("name is required")
	}
	if !emailRegex.MatchString(b.Email) {
		return errors.New("invalid email")
	}
	if len(b.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if b.Password != b.ConfirmPassword {
		return errors.New("passwords must match")
	}
	return nil
}

func (b LoginBody) Validate() error {
	if !emailRegex.MatchString(b.Email) {
		return errors.New("invalid email")
	}
	if b.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func (b ForgotPasswordBody) Validate() error {
	if !emailRegex.MatchString(b.Email) {
		return errors.New("invalid email")
	}
	return nil
}

func (b ResetPasswordBody) Validate() error {
	if b.ID == "" {
		return errors.New("user id is required")
	}
	if len(b.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if b.Password != b.ConfirmPassword {
		return errors.New("passwords must match")
	}
	return nil
}

func (b PostBody) Validate() error {
	if b.Content == "" {
		return errors.New("content is required")
	}
	if utf8.RuneCountInString(b.Content) > MaxPostLength {
		return errors.New("content must be at most 100 characters")
	}
	return nil
}
