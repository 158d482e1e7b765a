package models

import (
	"time"
)

type User struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	Password          string             `json:"password,omitempty"`
	AccessKey         string             `json:"accessKey"`
	IsAdmin           bool               `json:"isAdmin,omitempty"`
	PurchasedProducts []PurchasedProduct `json:"purchasedProducts"`
	CreatedAt         time.Time          `json:"createdAt"`
}

type PurchasedProduct struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Version          string     `json:"version"`
	Duration         string     `json:"duration"`
	RAMSize          string     `json:"ramSize"`
	MinecraftVersion string     `json:"minecraftVersion,omitempty"`
	AccessKey        string     `json:"accessKey,omitempty"`
	PurchaseDate     time.Time  `json:"purchaseDate"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
}

type AccessKey struct {
	Key       string    `json:"key"`
	IsUsed    bool      `json:"isUsed"`
	UsedBy    string    `json:"usedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy; the session pointer must never alias a directory entry.
func (u User) Clone() User {
	out := u
	out.PurchasedProducts = make([]PurchasedProduct, len(u.PurchasedProducts))
	for i, p := range u.PurchasedProducts {
		out.PurchasedProducts[i] = p.Clone()
	}
	return out
}

func (p PurchasedProduct) Clone() PurchasedProduct {
	out := p
	if p.ExpiryDate != nil {
		exp := *p.ExpiryDate
		out.ExpiryDate = &exp
	}
	return out
}

// KVEntry backs the gorm key/value store; one row per namespaced storage key.
type KVEntry struct {
	Namespace string    `gorm:"primaryKey;size:64"  json:"namespace"`
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null"  json:"value"`
	UpdatedAt time.Time `gorm:"not null"            json:"updated_at"`
}
