// Package memory implements the repository contracts with in-process
// maps. It backs local development and the default deployment mode, where
// the review desk runs without external storage.
package memory

import (
	"sync"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

// Store holds all entity tables behind a single lock. Entities are stored
// and returned by value so callers never alias internal state.
type Store struct {
	mu sync.RWMutex

	reviews   map[int64]domain.Review
	responses map[int64]domain.Response
	templates map[int64]domain.Template
	users     map[int64]domain.User
	tokens    map[int64]domain.OAuthTokens
	accounts  map[int64]domain.BusinessAccount

	nextReviewID   int64
	nextResponseID int64
	nextTemplateID int64
	nextUserID     int64
}

// NewStore creates an empty store pre-populated with the default response
// templates.
func NewStore() *Store {
	s := &Store{
		reviews:   make(map[int64]domain.Review),
		responses: make(map[int64]domain.Response),
		templates: make(map[int64]domain.Template),
		users:     make(map[int64]domain.User),
		tokens:    make(map[int64]domain.OAuthTokens),
		accounts:  make(map[int64]domain.BusinessAccount),
	}
	s.seedDefaultTemplates()
	return s
}

// Reviews returns the review table.
func (s *Store) Reviews() repository.ReviewRepository { return &reviewRepo{s} }

// Responses returns the response history table.
func (s *Store) Responses() repository.ResponseRepository { return &responseRepo{s} }

// Templates returns the template table.
func (s *Store) Templates() repository.TemplateRepository { return &templateRepo{s} }

// Users returns the user table.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Credentials returns the per-user platform credential table.
func (s *Store) Credentials() repository.CredentialRepository { return &credentialRepo{s} }
