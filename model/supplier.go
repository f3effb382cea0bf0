package model

import "time"

type SupplierEntity struct {
	ID            uint64     `db:"id" json:"id"`
	Code          string     `db:"code" json:"code"`
	Name          string     `db:"name" json:"name"`
	ContactPerson string     `db:"contact_person" json:"contact_person"`
	Email         string     `db:"email" json:"email"`
	Phone         string     `db:"phone" json:"phone"`
	Address       string     `db:"address" json:"address"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type SupplierRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	Address       string `json:"address"`
}

type SupplierUpdateRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address       *string `json:"address,omitempty"`
}
