package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/infra"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

type ProjectService interface {
	// Create registers the project and materializes its document folder tree
	// (one subfolder per document type) under the resolved root.
	Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
}

type projectService struct {
	repo     repository.ProjectRepository
	store    *infra.DocStore
	settings *config.SettingsStore
}

func NewProjectService(repo repository.ProjectRepository, store *infra.DocStore, settings *config.SettingsStore) ProjectService {
	return &projectService{repo: repo, store: store, settings: settings}
}

func mapProject(p model.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Location:     p.Location,
		CapexCode:    p.CapexCode,
		CostCategory: p.CostCategory,
		RootFolder:   p.RootFolder,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func (s *projectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, errors.New("a project with that name already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	base := s.settings.Load().StorageRoot
	if req.RootFolder != nil && strings.TrimSpace(*req.RootFolder) != "" {
		base = strings.TrimSpace(*req.RootFolder)
	}
	root := filepath.Join(base, name)

	if err := s.store.EnsureProjectFolders(root); err != nil {
		return nil, err
	}

	category := req.CostCategory
	if category == "" {
		category = "Goods"
	}

	p := &model.Project{
		Name:         name,
		Location:     req.Location,
		CapexCode:    req.CapexCode,
		CostCategory: category,
		RootFolder:   root,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProject(*p)
	return &resp, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("project not found")
	}
	resp := mapProject(*p)
	return &resp, nil
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, mapProject(p))
	}
	return out, nil
}
