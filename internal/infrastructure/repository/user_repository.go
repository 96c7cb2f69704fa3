package repository

import (
	"context"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/repository"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
)

const (
	usersDocument      = "users"
	recipientsDocument = "email_recipients"
)

type usersDoc struct {
	Users []entity.User `json:"users"`
}

type userRepository struct {
	store *jsonstore.Store
}

// NewUserRepository creates a user repository backed by the users document
func NewUserRepository(store *jsonstore.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	doc := &usersDoc{}
	if err := r.store.Read(usersDocument, doc); err != nil {
		return nil, err
	}
	if doc.Users == nil {
		doc.Users = []entity.User{}
	}
	return doc.Users, nil
}

func (r *userRepository) Mutate(ctx context.Context, fn func(users *[]entity.User) error) error {
	doc := &usersDoc{}
	return r.store.Update(usersDocument, doc, func() error {
		if doc.Users == nil {
			doc.Users = []entity.User{}
		}
		return fn(&doc.Users)
	})
}

type recipientsDoc struct {
	Recipients []string `json:"recipients"`
}

type recipientRepository struct {
	store *jsonstore.Store
}

// NewRecipientRepository creates the email recipients repository
func NewRecipientRepository(store *jsonstore.Store) repository.RecipientRepository {
	return &recipientRepository{store: store}
}

func (r *recipientRepository) List(ctx context.Context) ([]string, error) {
	doc := &recipientsDoc{}
	if err := r.store.Read(recipientsDocument, doc); err != nil {
		return nil, err
	}
	if doc.Recipients == nil {
		doc.Recipients = []string{}
	}
	return doc.Recipients, nil
}

func (r *recipientRepository) Mutate(ctx context.Context, fn func(recipients *[]string) error) error {
	doc := &recipientsDoc{}
	return r.store.Update(recipientsDocument, doc, func() error {
		if doc.Recipients == nil {
			doc.Recipients = []string{}
		}
		return fn(&doc.Recipients)
	})
}
