package repo

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/rockstar_shop/internal/models"
)

func (r *RecordStore) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	ok, err := r.readJSON(ctx, KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok || users == nil {
		return []models.User{}, nil
	}
	return users, nil
}

// SaveUser replaces the user with the same id in place, or appends.
func (r *RecordStore) SaveUser(ctx context.Context, user models.User) error {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(users, user.ID)
	if idx >= 0 {
		users[idx] = user.Clone()
	} else {
		users = append(users, user.Clone())
	}

	return r.writeJSON(ctx, KeyUsers, users)
}

func (r *RecordStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *RecordStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexByID(users, id); idx >= 0 {
		u := users[idx]
		return &u, nil
	}
	return nil, nil
}

func (r *RecordStore) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := r.readJSON(ctx, KeyCurrentUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// SetCurrentUser stores a snapshot; later directory writes do not touch it.
func (r *RecordStore) SetCurrentUser(ctx context.Context, user models.User) error {
	return r.writeJSON(ctx, KeyCurrentUser, user.Clone())
}

func (r *RecordStore) ClearCurrentUser(ctx context.Context) error {
	if err := r.KV.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("delete %s: %w", KeyCurrentUser, err)
	}
	return nil
}

// AddPurchasedProduct appends to the directory entry and, when the session
// belongs to the same user, to the session pointer. Unknown ids are ignored.
func (r *RecordStore) AddPurchasedProduct(ctx context.Context, userID string, product models.PurchasedProduct) error {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return err
	}
	idx := indexByID(users, userID)
	if idx < 0 {
		return nil
	}

	users[idx].PurchasedProducts = append(users[idx].PurchasedProducts, product.Clone())
	if err := r.writeJSON(ctx, KeyUsers, users); err != nil {
		return err
	}

	current, err := r.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.ID == userID {
		current.PurchasedProducts = append(current.PurchasedProducts, product.Clone())
		return r.SetCurrentUser(ctx, *current)
	}
	return nil
}

func indexByID(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
