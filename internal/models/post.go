package models

import (
	"time"
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Pid     string `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Subject string `gorm:"not null" json:"subject"`
	Content string `gorm:"type:text" json:"content"`
	// Likes holds the ids of users who liked this post, each at most once.
	// CommentIDs holds comment ids in creation order. Both live on the post
	// itself; keeping them in sync with the comment table is the job of the
	// blog service, not the database.
	Likes      []uint    `gorm:"serializer:json;type:jsonb" json:"likes"`
	CommentIDs []uint    `gorm:"serializer:json;type:jsonb" json:"comment_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsAuthor reports whether u is the author of this post. A nil user is
// never the author. Comparison is by id, not by username.
func (p *Post) IsAuthor(u *User) bool {
	return u != nil && p.UserID == u.ID
}

// HasLiked reports whether the given user already liked this post.
func (p *Post) HasLiked(userID uint) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Post) AddLike(userID uint) {
	p.Likes = append(p.Likes, userID)
}

func (p *Post) LikeCount() int {
	return len(p.Likes)
}

func (p *Post) AddCommentID(cid uint) {
	p.CommentIDs = append(p.CommentIDs, cid)
}

func (p *Post) RemoveCommentID(cid uint) {
	for i, id := range p.CommentIDs {
		if id == cid {
			p.CommentIDs = append(p.CommentIDs[:i], p.CommentIDs[i+1:]...)
			return
		}
	}
}

func (p *Post) CommentCount() int {
	return len(p.CommentIDs)
}
