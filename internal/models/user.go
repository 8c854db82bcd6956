package models

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed seed/style grids for default avatars. A new account without an
// explicit profile image gets a random combination of the two.
var (
	ProfileImgNames = []string{
		"Garfield", "Tinkerbell", "Annie", "Loki", "Cleo",
		"Angel", "Bob", "Mia", "Coco",
	}
	ProfileImgCollections = []string{
		"notionists-neutral", "adventurer-neutral", "fun-emoji",
		"lorelei-neutral", "bottts-neutral",
	}
)

// SocialLinks holds the six supported platform URLs, all optional.
type SocialLinks struct {
	Youtube   string `bson:"youtube" json:"youtube"`
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Github    string `bson:"github" json:"github"`
	Website   string `bson:"website" json:"website"`
}

// AccountInfo tracks per-user aggregate counters.
type AccountInfo struct {
	TotalPosts int64 `bson:"total_posts" json:"total_posts"`
	TotalReads int64 `bson:"total_reads" json:"total_reads"`
}

// User is a stored user document. Email and username carry unique indexes.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	Fullname    string               `bson:"fullname" json:"fullname"`
	Email       string               `bson:"email" json:"-"`
	Password    string               `bson:"password" json:"-"`
	Username    string               `bson:"username" json:"username"`
	Bio         string               `bson:"bio" json:"bio"`
	ProfileImg  string               `bson:"profile_img" json:"profile_img"`
	SocialLinks SocialLinks          `bson:"social_links" json:"social_links"`
	AccountInfo AccountInfo          `bson:"account_info" json:"account_info"`
	Blogs       []primitive.ObjectID `bson:"blogs" json:"-"`
	JoinedAt    time.Time            `bson:"joinedAt" json:"joinedAt"`
}

// PublicProfile is the subset of a user returned from auth endpoints.
// It never carries the password hash, email, or document ID.
type PublicProfile struct {
	ProfileImg string `bson:"profile_img" json:"profile_img"`
	Username   string `bson:"username" json:"username"`
	Fullname   string `bson:"fullname" json:"fullname"`
}

// Public formats a stored user into its client-facing profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ProfileImg: u.ProfileImg,
		Username:   u.Username,
		Fullname:   u.Fullname,
	}
}

// RandomProfileImg picks a default avatar URL from the fixed grid.
func RandomProfileImg() string {
	name := ProfileImgNames[rand.Intn(len(ProfileImgNames))]
	collection := ProfileImgCollections[rand.Intn(len(ProfileImgCollections))]
	return fmt.Sprintf("https://api.dicebear.com/6.x/%s/svg?seed=%s", collection, name)
}
