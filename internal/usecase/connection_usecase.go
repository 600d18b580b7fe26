package usecase

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
	"github.com/fadilmartias/compatibility-matrix/internal/scoring"
)

type ConnectionUsecase struct {
	connectionRepo *repository.ConnectionRepository
	profileRepo    *repository.ProfileRepository
	compatRepo     *repository.CompatibilityRepository
	assessmentRepo *repository.AssessmentRepository
}

func NewConnectionUsecase(connectionRepo *repository.ConnectionRepository, profileRepo *repository.ProfileRepository, compatRepo *repository.CompatibilityRepository, assessmentRepo *repository.AssessmentRepository) *ConnectionUsecase {
	return &ConnectionUsecase{
		connectionRepo: connectionRepo,
		profileRepo:    profileRepo,
		compatRepo:     compatRepo,
		assessmentRepo: assessmentRepo,
	}
}

type ConnectionView struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	AvatarURL     string          `json:"avatar_url"`
	Status        string          `json:"status"`
	Direction     string          `json:"direction"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Compatibility json.RawMessage `json:"compatibility,omitempty"`
}

// List returns the user's connections with the other party's profile and,
// for accepted connections, the stored compatibility summary.
func (uc *ConnectionUsecase) List(userID, status string) ([]ConnectionView, error) {
	connections, err := uc.connectionRepo.ListForUser(userID, status)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]string, 0, len(connections))
	for _, c := range connections {
		otherIDs = append(otherIDs, otherParty(c, userID))
	}
	profiles, err := uc.profileRepo.FindByIDs(otherIDs)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		profileMap[p.ID] = p
	}

	views := make([]ConnectionView, 0, len(connections))
	for _, c := range connections {
		otherID := otherParty(c, userID)
		view := ConnectionView{
			ID:        c.ID.String(),
			UserID:    otherID,
			Name:      "Unknown User",
			Status:    c.Status,
			Direction: "incoming",
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if c.UserIDSender == userID {
			view.Direction = "outgoing"
		}
		if p, ok := profileMap[otherID]; ok {
			view.Name = p.Name
			view.AvatarURL = p.AvatarURL
		}
		if c.Status == model.ConnectionStatusAccepted {
			keyA, keyB := scoring.CanonicalPair(userID, otherID)
			if compat, err := uc.compatRepo.FindByPair(keyA, keyB); err == nil && compat != nil {
				view.Compatibility = compatibilitySummary(compat)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Request sends a connection request; at most one connection may exist
// per unordered user pair, whatever its direction.
func (uc *ConnectionUsecase) Request(userID, receiverID string) (*model.Connection, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if receiverID == userID {
		return nil, fmt.Errorf("%w: cannot connect to yourself", ErrValidation)
	}

	receiver, err := uc.profileRepo.FindByID(receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	existing, err := uc.connectionRepo.FindBetween(userID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		state := "established"
		if existing.Status == model.ConnectionStatusPending {
			state = "pending"
		}
		return existing, fmt.Errorf("%w: a connection is already %s between these users", ErrValidation, state)
	}

	now := time.Now()
	connection := &model.Connection{
		UserIDSender:   userID,
		UserIDReceiver: receiverID,
		Status:         model.ConnectionStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.connectionRepo.Create(connection); err != nil {
		return nil, err
	}
	return connection, nil
}

// Respond accepts or declines a pending request; only the receiver may
// respond.
func (uc *ConnectionUsecase) Respond(userID, connectionID, action string) (*model.Connection, error) {
	if action != "accept" && action != "decline" {
		return nil, fmt.Errorf("%w: action must be either 'accept' or 'decline'", ErrValidation)
	}

	connection, err := uc.connectionRepo.FindByID(connectionID)
	if err != nil {
		return nil, err
	}
	if connection == nil || connection.UserIDReceiver != userID || connection.Status != model.ConnectionStatusPending {
		return nil, fmt.Errorf("%w: connection request not found or not pending", ErrNotFound)
	}

	connection.Status = model.ConnectionStatusDeclined
	if action == "accept" {
		connection.Status = model.ConnectionStatusAccepted
	}
	connection.UpdatedAt = time.Now()
	if err := uc.connectionRepo.Update(connection); err != nil {
		return nil, err
	}
	return connection, nil
}

func (uc *ConnectionUsecase) Remove(userID, connectionID string) error {
	connection, err := uc.connectionRepo.FindByID(connectionID)
	if err != nil {
		return err
	}
	if connection == nil || (connection.UserIDSender != userID && connection.UserIDReceiver != userID) {
		return fmt.Errorf("%w: connection", ErrNotFound)
	}
	return uc.connectionRepo.Delete(connectionID)
}

type SuggestionView struct {
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	AvatarURL     string          `json:"avatar_url"`
	Compatibility json.RawMessage `json:"compatibility"`
	overallScore  int
}

// Suggested lists users with completed assessments who are not yet
// connected to the caller, filtered by minimum compatibility score and
// sorted best-first.
func (uc *ConnectionUsecase) Suggested(userID string, limit, minScore int) ([]SuggestionView, error) {
	if limit <= 0 {
		limit = 10
	}

	candidates, err := uc.assessmentRepo.ListUsersWithCompletedAssessments(userID)
	if err != nil {
		return nil, err
	}
	candidateIDs := make(map[string]bool)
	for _, id := range candidates {
		candidateIDs[id] = true
	}

	connections, err := uc.connectionRepo.ListForUser(userID, "")
	if err != nil {
		return nil, err
	}
	for _, c := range connections {
		delete(candidateIDs, otherParty(c, userID))
	}
	if len(candidateIDs) == 0 {
		return []SuggestionView{}, nil
	}

	ids := make([]string, 0, len(candidateIDs))
	for id := range candidateIDs {
		ids = append(ids, id)
	}
	profiles, err := uc.profileRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		profileMap[p.ID] = p
	}

	suggestions := make([]SuggestionView, 0, len(ids))
	for _, otherID := range ids {
		keyA, keyB := scoring.CanonicalPair(userID, otherID)
		compat, err := uc.compatRepo.FindByPair(keyA, keyB)
		if err != nil {
			return nil, err
		}
		if compat == nil || compat.OverallScore < minScore {
			continue
		}
		view := SuggestionView{
			UserID:        otherID,
			Name:          "Unknown User",
			Compatibility: compatibilitySummary(compat),
			overallScore:  compat.OverallScore,
		}
		if p, ok := profileMap[otherID]; ok {
			view.Name = p.Name
			view.AvatarURL = p.AvatarURL
		}
		suggestions = append(suggestions, view)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].overallScore > suggestions[j].overallScore
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func otherParty(c model.Connection, userID string) string {
	if c.UserIDSender == userID {
		return c.UserIDReceiver
	}
	return c.UserIDSender
}

func compatibilitySummary(c *model.CompatibilityScore) json.RawMessage {
	summary := map[string]any{
		"overall_score":    c.OverallScore,
		"dimension_scores": json.RawMessage(c.DimensionScores),
		"strengths":        json.RawMessage(c.Strengths),
		"challenges":       json.RawMessage(c.Challenges),
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil
	}
	return raw
}
