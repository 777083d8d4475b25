package service

import (
	"context"
	"fmt"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/infra"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

// BackupService takes synchronous full-copy snapshots of the data dir and
// every project's document tree. The triggering request blocks until the
// archive is written; a failure leaves a partial file the caller discards.
type BackupService interface {
	Run(ctx context.Context) (*dto.BackupResponse, error)
}

type backupService struct {
	archiver    *infra.Archiver
	projectRepo repository.ProjectRepository
	dataRoot    string
}

func NewBackupService(archiver *infra.Archiver, projectRepo repository.ProjectRepository, dataRoot string) BackupService {
	return &backupService{archiver: archiver, projectRepo: projectRepo, dataRoot: dataRoot}
}

func (s *backupService) Run(ctx context.Context) (*dto.BackupResponse, error) {
	paths := []string{s.dataRoot}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		paths = append(paths, p.RootFolder)
	}

	archivePath, err := s.archiver.Snapshot(paths)
	if err != nil {
		// A partial archive may be left behind; it is discardable.
		return nil, fmt.Errorf("backup failed: %w", err)
	}
	return &dto.BackupResponse{ArchivePath: archivePath}, nil
}
