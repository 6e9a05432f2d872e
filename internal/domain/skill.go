package domain

import "context"

type Skill struct {
	ID          int64  `json:"id"`
	ProfileID   int64  `json:"profile"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, username string, id int64) (*Skill, error)
	FetchByUsername(ctx context.Context, username string) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, username string, id int64) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, username string) ([]Skill, error)
	GetSkill(ctx context.Context, username string, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, username string, skill *Skill) error
	UpdateSkill(ctx context.Context, username string, skill *Skill) error
	DeleteSkill(ctx context.Context, username string, id int64) error
}
