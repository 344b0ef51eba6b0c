package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/common"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindPhone
	KindURL
	KindLongText
)

// ProfileField is one editable profile attribute.
type ProfileField struct {
	Name  string
	Label string
	Kind  FieldKind
	// Rule is a validator tag applied to non-empty values.
	Rule string
	// Roles limits the field to some roles; nil means everyone.
	Roles    []models.Role
	ReadOnly bool
}

// ProfileFields is the declared, ordered field list of the profile form.
var ProfileFields = []ProfileField{
	{Name: "firstName", Label: "First name", Kind: KindText, Rule: "min=2,max=100"},
	{Name: "lastName", Label: "Last name", Kind: KindText, Rule: "min=2,max=100"},
	{Name: "email", Label: "Email", Kind: KindEmail, Rule: "email"},
	{Name: "phone", Label: "Phone", Kind: KindPhone, Rule: "min=7,max=20"},
	{Name: "address", Label: "Address", Kind: KindText, Rule: "max=255"},
	{Name: "city", Label: "City", Kind: KindText, Rule: "max=100"},
	{Name: "country", Label: "Country", Kind: KindText, Rule: "max=100"},
	{Name: "companyName", Label: "Company name", Kind: KindText, Rule: "max=200", Roles: []models.Role{models.RoleEmployer}},
	{Name: "companyIndustry", Label: "Company industry", Kind: KindText, Rule: "max=100", Roles: []models.Role{models.RoleEmployer}},
	{Name: "companyWebsite", Label: "Company website", Kind: KindURL, Rule: "url", Roles: []models.Role{models.RoleEmployer}},
	{Name: "companyDescription", Label: "Company description", Kind: KindLongText, Rule: "max=2000", Roles: []models.Role{models.RoleEmployer}},
	{Name: "role", Label: "Role", Kind: KindText, ReadOnly: true},
	{Name: "isApproved", Label: "Approved", Kind: KindText, ReadOnly: true, Roles: []models.Role{models.RoleEmployer}},
	{Name: "createdAt", Label: "Member since", Kind: KindText, ReadOnly: true},
}

// Applies reports whether f is shown to role.
func (f ProfileField) Applies(role models.Role) bool {
	return f.Roles == nil || slices.Contains(f.Roles, role)
}

// LookupField finds a declared field by name.
func LookupField(name string) (ProfileField, bool) {
	for _, f := range ProfileFields {
		if f.Name == name {
			return f, true
		}
	}
	return ProfileField{}, false
}

// Profile is the server's profile record. Declared fields are edited
// through Set; everything else is carried back to the server untouched.
type Profile struct {
	raw map[string]any
}

func NewProfile(raw map[string]any) Profile {
	cp := make(map[string]any, len(raw))
	for k, v := range raw {
		cp[k] = v
	}
	return Profile{raw: cp}
}

// Get returns the value of name as text; missing and null are "".
func (p Profile) Get(name string) string {
	v, ok := p.raw[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Set validates and assigns a declared field. An empty value clears it.
func (p Profile) Set(name, value string) error {
	f, ok := LookupField(name)
	if !ok || f.ReadOnly {
		return FieldErrors{name: "is not an editable field"}
	}
	value = strings.TrimSpace(value)
	if value != "" && f.Rule != "" {
		if err := checkVar(name, value, f.Rule); err != nil {
			return err
		}
	}
	if value == "" {
		p.raw[name] = nil
		return nil
	}
	p.raw[name] = value
	return nil
}

// Extra lists the names of undeclared fields, sorted.
func (p Profile) Extra() []string {
	var out []string
	for k := range p.raw {
		if _, ok := LookupField(k); !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Map returns a copy of the full record.
func (p Profile) Map() map[string]any {
	return NewProfile(p.raw).raw
}

type ProfileAPI interface {
	Profile(ctx context.Context) (map[string]any, error)
	UpdateProfile(ctx context.Context, updates map[string]any) (map[string]any, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	DeactivateAccount(ctx context.Context) error
}

type UserStateWriter interface {
	Snapshot() session.Session
	SetUserState(ctx context.Context, user *models.User) error
}

type ProfileService interface {
	Load(ctx context.Context) (Profile, error)
	// Save sends the whole record and refreshes the session user.
	Save(ctx context.Context, p Profile) (Profile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	Deactivate(ctx context.Context) error
}

type profileService struct {
	api     ProfileAPI
	session UserStateWriter
}

func NewProfileService(api ProfileAPI, session UserStateWriter) ProfileService {
	return &profileService{api: api, session: session}
}

func (s *profileService) Load(ctx context.Context) (Profile, error) {
	raw, err := s.api.Profile(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return NewProfile(raw), nil
}

func (s *profileService) Save(ctx context.Context, p Profile) (Profile, error) {
	sent := p.Map()
	got, err := s.api.UpdateProfile(ctx, sent)
	if err != nil {
		return Profile{}, fmt.Errorf("update profile: %w", err)
	}
	if len(got) == 0 {
		got = sent
	}
	updated := NewProfile(got)

	if user := s.session.Snapshot().User; user != nil {
		applyProfile(user, updated)
		if err := s.session.SetUserState(ctx, user); err != nil {
			return updated, fmt.Errorf("refresh session user: %w", err)
		}
	}
	return updated, nil
}

func (s *profileService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return FieldErrors{"oldPassword": "is required"}
	}
	if err := checkVar("newPassword", newPassword, "min=6"); err != nil {
		return err
	}
	if err := s.api.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (s *profileService) Deactivate(ctx context.Context) error {
	if s.session.Snapshot().User == nil {
		return common.ErrNotAuthenticated
	}
	if err := s.api.DeactivateAccount(ctx); err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}
	return nil
}

// applyProfile copies the session-relevant fields of p onto u.
func applyProfile(u *models.User, p Profile) {
	if v := p.Get("firstName"); v != "" {
		u.FirstName = v
	}
	if v := p.Get("lastName"); v != "" {
		u.LastName = v
	}
	if v := p.Get("email"); v != "" {
		u.Email = v
	}
	u.Phone = optional(p.Get("phone"))
	if u.Role == models.RoleEmployer {
		u.CompanyName = optional(p.Get("companyName"))
		u.CompanyIndustry = optional(p.Get("companyIndustry"))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
