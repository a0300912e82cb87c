package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"gorm.io/gorm"
)

// RosterRepository defines the interface for team and player data operations
type RosterRepository interface {
	CreateTeam(ctx context.Context, team *Team) error
	GetTeamByID(ctx context.Context, id string) (*Team, error)
	ListTeams(ctx context.Context) ([]Team, error)

	CreatePlayer(ctx context.Context, player *Player) error
	GetPlayerByID(ctx context.Context, id string) (*Player, error)
	ListTeamPlayers(ctx context.Context, teamID string) ([]Player, error)

	// GetPlayer and GetTeam return scoring values and a NOT_FOUND error for unknown ids.
	GetPlayer(ctx context.Context, id string) (scoring.Player, error)
	GetTeam(ctx context.Context, id string) (scoring.Team, error)

	WithTransaction(ctx context.Context, txFunc func(RosterRepository) error) error
}

// GormRosterRepository implements RosterRepository using GORM
type GormRosterRepository struct {
	db *gorm.DB
}

// NewGormRosterRepository creates a new GormRosterRepository
func NewGormRosterRepository(db *gorm.DB) *GormRosterRepository {
	return &GormRosterRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
func (r *GormRosterRepository) WithTransaction(ctx context.Context, txFunc func(RosterRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormRosterRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *GormRosterRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetTeamByID returns nil, nil when the team does not exist.
func (r *GormRosterRepository) GetTeamByID(ctx context.Context, id string) (*Team, error) {
	var team Team
	result := r.db.WithContext(ctx).First(&team, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &team, nil
}

// ListTeams returns all teams ordered by name.
func (r *GormRosterRepository) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := r.db.WithContext(ctx).Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *GormRosterRepository) CreatePlayer(ctx context.Context, player *Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// GetPlayerByID returns nil, nil when the player does not exist.
func (r *GormRosterRepository) GetPlayerByID(ctx context.Context, id string) (*Player, error) {
	var player Player
	result := r.db.WithContext(ctx).First(&player, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

func (r *GormRosterRepository) ListTeamPlayers(ctx context.Context, teamID string) ([]Player, error) {
	var players []Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("jersey_number asc, name asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormRosterRepository) GetPlayer(ctx context.Context, id string) (scoring.Player, error) {
	player, err := r.GetPlayerByID(ctx, id)
	if err != nil {
		return scoring.Player{}, fmt.Errorf("get player %s: %w", id, err)
	}
	if player == nil {
		return scoring.Player{}, scoring.NotFound("player", id)
	}
	return player.ToScoring(), nil
}

func (r *GormRosterRepository) GetTeam(ctx context.Context, id string) (scoring.Team, error) {
	team, err := r.GetTeamByID(ctx, id)
	if err != nil {
		return scoring.Team{}, fmt.Errorf("get team %s: %w", id, err)
	}
	if team == nil {
		return scoring.Team{}, scoring.NotFound("team", id)
	}
	return team.ToScoring(), nil
}
