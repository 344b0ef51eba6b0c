package models

import (
	"fmt"
	"strings"
)

// Role is the marketplace role attached to a user account.
type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleEmployer  Role = "EMPLOYER"
	RoleAdmin     Role = "ADMIN"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{RoleJobSeeker, RoleEmployer, RoleAdmin}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllRoles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the account record returned by login/register and stored in
// the session.
type User struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Role            Role    `json:"role"`
	Phone           *string `json:"phone,omitempty"`
	CompanyName     *string `json:"companyName,omitempty"`
	CompanyIndustry *string `json:"companyIndustry,omitempty"`
	IsApproved      *bool   `json:"isApproved,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// PendingApproval reports an employer explicitly marked as not approved.
// An absent flag is not treated as pending.
func (u *User) PendingApproval() bool {
	return u != nil && u.Role == RoleEmployer && u.IsApproved != nil && !*u.IsApproved
}

// DisplayName is "First Last", falling back to the email.
func (u *User) DisplayName() string {
	if u == nil {
		return "User"
	}
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// AdminUser is the extended record listed on the admin users page.
type AdminUser struct {
	User
	Address            string `json:"address,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
}

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"min=2"`
	LastName        string `json:"lastName" validate:"min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"min=6"`
	Phone           string `json:"phone,omitempty"`
	Role            Role   `json:"role,omitempty" validate:"omitempty,oneof=JOB_SEEKER EMPLOYER ADMIN"`
	CompanyName     string `json:"companyName,omitempty"`
	CompanyIndustry string `json:"companyIndustry,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtpRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OtpCode string `json:"otpCode" validate:"len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OtpCode     string `json:"otpCode" validate:"len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"min=6"`
}

// MessageResponse is the generic {"message": "..."} body.
type MessageResponse struct {
	Message string `json:"message"`
}
