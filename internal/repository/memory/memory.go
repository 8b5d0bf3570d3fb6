// Package memory holds an in-memory implementation of the repository
// interfaces. It backs the service and handler tests and is handy for
// running the app without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type Store struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	posts    map[uint]*models.Post
	comments map[uint]*models.Comment
	nextID   uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]*models.User),
		posts:    make(map[uint]*models.Post),
		comments: make(map[uint]*models.Comment),
	}
}

func (s *Store) Users() repository.UserRepository       { return &userRepo{s} }
func (s *Store) Posts() repository.PostRepository       { return &postRepo{s} }
func (s *Store) Comments() repository.CommentRepository { return &commentRepo{s} }

func (s *Store) allocID() uint {
	s.nextID++
	return s.nextID
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Likes = append([]uint(nil), p.Likes...)
	cp.CommentIDs = append([]uint(nil), p.CommentIDs...)
	return &cp
}

func cloneComment(c *models.Comment) *models.Comment {
	cp := *c
	return &cp
}

type userRepo struct{ s *Store }

func (r *userRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var match *models.User
	for _, user := range r.s.users {
		if user.Username == username && (match == nil || user.ID < match.ID) {
			match = user
		}
	}
	if match == nil {
		return nil, repository.ErrNotFound
	}
	return cloneUser(match), nil
}

func (r *userRepo) Save(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.s.allocID()
		user.CreatedAt = time.Now()
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

type postRepo struct{ s *Store }

func (r *postRepo) find(id uint) (*models.Post, bool) {
	post, ok := r.s.posts[id]
	if !ok {
		return nil, false
	}
	cp := clonePost(post)
	if author, ok := r.s.users[post.UserID]; ok {
		cp.User = *author
	}
	return cp, true
}

func (r *postRepo) FindByID(_ context.Context, id uint) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.find(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return post, nil
}

func (r *postRepo) FindByPid(_ context.Context, pid string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, post := range r.s.posts {
		if post.Pid == pid {
			found, _ := r.find(id)
			return found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *postRepo) sorted(filter func(*models.Post) bool) []models.Post {
	var posts []models.Post
	for id, post := range r.s.posts {
		if filter == nil || filter(post) {
			cp, _ := r.find(id)
			posts = append(posts, *cp)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (r *postRepo) Recent(_ context.Context, limit int) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := r.sorted(nil)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *postRepo) ByUser(_ context.Context, userID uint) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (r *postRepo) Save(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if post.ID == 0 {
		post.ID = r.s.allocID()
		post.CreatedAt = time.Now()
	}
	post.UpdatedAt = time.Now()
	r.s.posts[post.ID] = clonePost(post)
	return nil
}

func (r *postRepo) Delete(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.posts, post.ID)
	return nil
}

type commentRepo struct{ s *Store }

func (r *commentRepo) find(id uint) (*models.Comment, bool) {
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, false
	}
	cp := cloneComment(comment)
	if author, ok := r.s.users[comment.UserID]; ok {
		cp.User = *author
	}
	return cp, true
}

func (r *commentRepo) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment, ok := r.find(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return comment, nil
}

func (r *commentRepo) FindByIDs(_ context.Context, ids []uint) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comments := make([]models.Comment, 0, len(ids))
	for _, id := range ids {
		if comment, ok := r.find(id); ok {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (r *commentRepo) Save(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if comment.ID == 0 {
		comment.ID = r.s.allocID()
		comment.CreatedAt = time.Now()
	}
	r.s.comments[comment.ID] = cloneComment(comment)
	return nil
}

func (r *commentRepo) Delete(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.comments, comment.ID)
	return nil
}
