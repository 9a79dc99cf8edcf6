package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileView is a profile joined with the public part of its owner.
type ProfileView struct {
	*models.Profile
	User models.UserSummary `json:"user"`
}

// ProfileInput is the create-or-update body. Empty strings count as not supplied.
type ProfileInput struct {
	Company   string `json:"company"`
	Website   string `json:"website"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	Status    string `json:"status"`
	Skills    string `json:"skills"` // comma-separated
	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

func (in *ProfileInput) field(name string) (string, bool) {
	switch name {
	case "company":
		return in.Company, true
	case "website":
		return in.Website, true
	case "location":
		return in.Location, true
	case "bio":
		return in.Bio, true
	case "status":
		return in.Status, true
	case "skills":
		return in.Skills, true
	case "youtube":
		return in.YouTube, true
	case "twitter":
		return in.Twitter, true
	case "facebook":
		return in.Facebook, true
	case "linkedin":
		return in.LinkedIn, true
	case "instagram":
		return in.Instagram, true
	}
	return "", false
}

func (in *ProfileInput) update() *models.ProfileUpdate {
	u := &models.ProfileUpdate{
		Company:  supplied(in.Company),
		Website:  supplied(in.Website),
		Location: supplied(in.Location),
		Bio:      supplied(in.Bio),
		Status:   supplied(in.Status),
		Social: models.SocialUpdate{
			YouTube:   supplied(in.YouTube),
			Twitter:   supplied(in.Twitter),
			Facebook:  supplied(in.Facebook),
			LinkedIn:  supplied(in.LinkedIn),
			Instagram: supplied(in.Instagram),
		},
	}
	if in.Skills != "" {
		u.Skills = utils.ParseSkills(in.Skills)
	}
	return u
}

func supplied(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required" msg:"From date is required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type HobbyInput struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Description string `json:"description" validate:"required" msg:"Description is required"`
}

// ProfileService owns the profile lifecycle of authenticated users.
type ProfileService struct {
	profiles store.ProfileStore
	users    store.UserStore
	cache    ProfileCache
	required []string
}

// NewProfileService builds the service. A nil cache disables caching; required
// names the ProfileInput fields that must be non-empty on upsert.
func NewProfileService(profiles store.ProfileStore, users store.UserStore, cache ProfileCache, required []string) *ProfileService {
	if cache == nil {
		cache = noCache{}
	}
	var probe ProfileInput
	fields := make([]string, 0, len(required))
	for _, name := range required {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := probe.field(name); !ok {
			log.Printf("WARN [profile]: ignoring unknown required field %q", name)
			continue
		}
		fields = append(fields, name)
	}
	return &ProfileService{profiles: profiles, users: users, cache: cache, required: fields}
}

// GetMine returns the caller's profile.
func (s *ProfileService) GetMine(ctx context.Context, userID primitive.ObjectID) (*ProfileView, error) {
	p, err := s.profiles.GetByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, internal("profile.GetMine", err)
	}
	return s.view(ctx, p)
}

// Upsert creates the caller's profile or partially updates it in place.
func (s *ProfileService) Upsert(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*ProfileView, error) {
	var fields []utils.FieldError
	for _, name := range s.required {
		v, _ := in.field(name)
		if utils.IsBlank(strings.TrimSpace(v)) {
			fields = append(fields, utils.FieldError{Msg: capitalize(name) + " is required", Param: name})
		}
	}
	if len(fields) > 0 {
		return nil, invalid(&utils.ValidationError{Fields: fields})
	}

	p, err := s.profiles.Upsert(ctx, userID, in.update())
	if err != nil {
		return nil, internal("profile.Upsert", err)
	}
	s.cache.Invalidate(ctx)
	return s.view(ctx, p)
}

// List returns every profile joined with its owner.
func (s *ProfileService) List(ctx context.Context) ([]ProfileView, error) {
	cached, version, ok := s.cache.GetProfiles(ctx)
	if ok {
		return cached, nil
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, internal("profile.List", err)
	}

	ids := make([]primitive.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, internal("profile.List users", err)
	}
	byID := make(map[primitive.ObjectID]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	views := make([]ProfileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, ProfileView{Profile: &profiles[i], User: summaryOf(profiles[i].UserID, byID[profiles[i].UserID])})
	}
	s.cache.SetProfiles(ctx, version, views)
	return views, nil
}

// GetByUserID looks up a profile by its owner's id as given in a URL. A
// malformed id is reported the same way as a missing profile.
func (s *ProfileService) GetByUserID(ctx context.Context, rawID string) (*ProfileView, error) {
	userID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	p, err := s.profiles.GetByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internal("profile.GetByUserID", err)
	}
	return s.view(ctx, p)
}

// Delete removes the caller's profile and then the user record. Either may
// already be gone.
func (s *ProfileService) Delete(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.profiles.DeleteByUser(ctx, userID); err != nil {
		return internal("profile.Delete profile", err)
	}
	s.cache.Invalidate(ctx)
	if err := s.users.Delete(ctx, userID); err != nil {
		return internal("profile.Delete user", err)
	}
	return nil
}

// AddExperience inserts an entry at the head of the caller's experience list.
func (s *ProfileService) AddExperience(ctx context.Context, userID primitive.ObjectID, in ExperienceInput) (*ProfileView, error) {
	if verr := utils.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}
	from, err := parseDate(in.From)
	if err != nil {
		return nil, invalidField("from", "From date must be a valid date")
	}
	entry := models.Experience{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		Current:     in.Current,
		Description: in.Description,
	}
	if in.To != "" {
		to, err := parseDate(in.To)
		if err != nil {
			return nil, invalidField("to", "To date must be a valid date")
		}
		entry.To = &to
	}

	p, err := s.profiles.PushExperience(ctx, userID, entry)
	return s.mutated(ctx, "profile.AddExperience", p, err)
}

// RemoveExperience drops the entry with the given id. An unknown or malformed
// id leaves the list unchanged.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID primitive.ObjectID, rawID string) (*ProfileView, error) {
	p, err := s.profiles.PullExperience(ctx, userID, entryID(rawID))
	return s.mutated(ctx, "profile.RemoveExperience", p, err)
}

// AddHobby inserts an entry at the head of the caller's hobby list.
func (s *ProfileService) AddHobby(ctx context.Context, userID primitive.ObjectID, in HobbyInput) (*ProfileView, error) {
	if verr := utils.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}
	entry := models.Hobby{ID: primitive.NewObjectID(), Title: in.Title, Description: in.Description}
	p, err := s.profiles.PushHobby(ctx, userID, entry)
	return s.mutated(ctx, "profile.AddHobby", p, err)
}

// RemoveHobby drops the entry with the given id. An unknown or malformed id
// leaves the list unchanged.
func (s *ProfileService) RemoveHobby(ctx context.Context, userID primitive.ObjectID, rawID string) (*ProfileView, error) {
	p, err := s.profiles.PullHobby(ctx, userID, entryID(rawID))
	return s.mutated(ctx, "profile.RemoveHobby", p, err)
}

func (s *ProfileService) mutated(ctx context.Context, op string, p *models.Profile, err error) (*ProfileView, error) {
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, internal(op, err)
	}
	s.cache.Invalidate(ctx)
	return s.view(ctx, p)
}

func (s *ProfileService) view(ctx context.Context, p *models.Profile) (*ProfileView, error) {
	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, internal("profile.view", err)
	}
	return &ProfileView{Profile: p, User: summaryOf(p.UserID, user)}, nil
}

func summaryOf(id primitive.ObjectID, u *models.User) models.UserSummary {
	if u == nil {
		return models.UserSummary{ID: id}
	}
	return u.Summary()
}

// entryID maps a malformed id to the nil id, which matches no entry.
func entryID(raw string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
